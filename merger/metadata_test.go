package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoxy/spec-mesh/document"
)

func TestUpdateMetadataOverwritesInfo(t *testing.T) {
	doc := mustDecode(t, `{
		"openapi": "3.0.0",
		"info": {"title": "Old", "version": "0.1", "contact": {"name": "ops"}},
		"paths": {}
	}`)

	require.NoError(t, UpdateMetadata(doc, "Gateway API", "aggregated surface", "2.0.0"))

	info := doc.Get("info")
	title, _ := info.Get("title").AsString()
	assert.Equal(t, "Gateway API", title)
	desc, _ := info.Get("description").AsString()
	assert.Equal(t, "aggregated surface", desc)
	version, _ := info.Get("version").AsString()
	assert.Equal(t, "2.0.0", version)

	// other info fields survive
	contact, _ := info.Get("contact").Get("name").AsString()
	assert.Equal(t, "ops", contact)

	marker, _ := doc.Get("openapi").AsString()
	assert.Equal(t, TargetOASVersion, marker)
}

// The updater is total over the empty sentinel: it creates the info
// mapping and version marker from nothing.
func TestUpdateMetadataOnEmptySentinel(t *testing.T) {
	result, err := Merge(nil, true)
	require.NoError(t, err)
	require.True(t, result.Empty())

	require.NoError(t, UpdateMetadata(result.Document, "T", "D", "1"))

	title, _ := result.Document.Get("info").Get("title").AsString()
	assert.Equal(t, "T", title)
	marker, _ := result.Document.Get("openapi").AsString()
	assert.Equal(t, TargetOASVersion, marker)
}

func TestUpdateMetadataReplacesNonMappingInfo(t *testing.T) {
	doc := mustDecode(t, `{"info": "bogus", "paths": {}}`)

	require.NoError(t, UpdateMetadata(doc, "T", "", "1"))

	version, _ := doc.Get("info").Get("version").AsString()
	assert.Equal(t, "1", version)
}

func TestUpdateMetadataRejectsNonMappingDocument(t *testing.T) {
	assert.Error(t, UpdateMetadata(document.String("nope"), "T", "", "1"))
	assert.Error(t, UpdateMetadata(document.Value{}, "T", "", "1"))
	assert.Error(t, UpdateMetadata(document.Null(), "T", "", "1"))
}
