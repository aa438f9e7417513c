package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	data := []byte(`{"openapi":"3.0.0","info":{"title":"X","version":"1"},"paths":{}}`)

	doc, err := DecodeJSON(data)
	require.NoError(t, err)
	require.Equal(t, KindObject, doc.Kind())

	assert.Equal(t, []string{"openapi", "info", "paths"}, doc.Keys())

	title, ok := doc.Get("info").Get("title").AsString()
	require.True(t, ok)
	assert.Equal(t, "X", title)
}

func TestDecodeJSONScalars(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"s":"x","i":3,"f":1.5,"b":false,"n":null,"a":[1,2]}`))
	require.NoError(t, err)

	i, _ := doc.Get("i").AsNumber()
	assert.Equal(t, 3.0, i)
	f, _ := doc.Get("f").AsNumber()
	assert.Equal(t, 1.5, f)
	b, _ := doc.Get("b").AsBool()
	assert.False(t, b)
	assert.True(t, doc.Get("n").IsNull())
	assert.Equal(t, 2, doc.Get("a").Len())
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"a":`},
		{"trailing data", `{} {}`},
		{"bare garbage", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAMLPreservesKeyOrder(t *testing.T) {
	data := []byte(`
openapi: 3.0.0
info:
  title: Pets
  version: "2.1"
paths:
  /pets:
    get:
      tags: [pets]
`)

	doc, err := DecodeYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"openapi", "info", "paths"}, doc.Keys())

	version, ok := doc.Get("info").Get("version").AsString()
	require.True(t, ok)
	assert.Equal(t, "2.1", version)

	tags := doc.Get("paths").Get("/pets").Get("get").Get("tags")
	require.Equal(t, KindArray, tags.Kind())
	tag, _ := tags.At(0).AsString()
	assert.Equal(t, "pets", tag)
}

func TestDecodeYAMLEmptyInput(t *testing.T) {
	doc, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.True(t, doc.IsNull())
}

func TestDecodeYAMLAnchorsAndAliases(t *testing.T) {
	data := []byte(`
base: &srv
  url: http://localhost
copy: *srv
`)

	doc, err := DecodeYAML(data)
	require.NoError(t, err)

	url, ok := doc.Get("copy").Get("url").AsString()
	require.True(t, ok)
	assert.Equal(t, "http://localhost", url)
}

func TestDecodeYAMLError(t *testing.T) {
	_, err := DecodeYAML([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestMarshalJSONRoundTrip(t *testing.T) {
	src := `{"openapi":"3.0.0","info":{"title":"X","version":"1"},"paths":{"/b":{},"/a":{}},"count":12}`

	doc, err := DecodeJSON([]byte(src))
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, src, string(out), "ordered marshal should reproduce the source byte-for-byte")
}

func TestMarshalJSONIntegralNumbers(t *testing.T) {
	obj := NewObject()
	obj.Set("i", Number(3))
	obj.Set("f", Number(2.5))

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"i":3,"f":2.5}`, string(out))
}

func TestMarshalJSONInvalidValue(t *testing.T) {
	_, err := json.Marshal(Value{})
	assert.Error(t, err)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	doc, err := DecodeJSON([]byte(`{"info":{"title":"Merged API","version":"1.0.0"},"paths":{}}`))
	require.NoError(t, err)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	back, err := DecodeYAML(out)
	require.NoError(t, err)

	title, _ := back.Get("info").Get("title").AsString()
	assert.Equal(t, "Merged API", title)
	assert.Equal(t, []string{"info", "paths"}, back.Keys())
}

func TestMarshalYAMLQuotesAmbiguousStrings(t *testing.T) {
	obj := NewObject()
	obj.Set("version", String("1.0"))

	out, err := yaml.Marshal(obj)
	require.NoError(t, err)

	back, err := DecodeYAML(out)
	require.NoError(t, err)

	v, ok := back.Get("version").AsString()
	require.True(t, ok, "string that looks like a number must stay a string")
	assert.Equal(t, "1.0", v)
}
