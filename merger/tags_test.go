package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceTagsDocumentLevel(t *testing.T) {
	doc := mustDecode(t, `{
		"tags": [
			{"name": "Users", "description": "kept"},
			{"description": "no name field"},
			"not an object"
		],
		"paths": {}
	}`)

	renamed := NamespaceTags(doc, "svc1")
	assert.Equal(t, 1, renamed)

	name, _ := doc.Get("tags").At(0).Get("name").AsString()
	assert.Equal(t, "svc1 | Users", name)

	// description is untouched
	desc, _ := doc.Get("tags").At(0).Get("description").AsString()
	assert.Equal(t, "kept", desc)

	// entries without a usable name are left alone
	assert.False(t, doc.Get("tags").At(1).Has("name"))
	s, _ := doc.Get("tags").At(2).AsString()
	assert.Equal(t, "not an object", s)
}

func TestNamespaceTagsOperations(t *testing.T) {
	doc := mustDecode(t, `{
		"paths": {
			"/admin": {
				"get": {"tags": ["admin", "internal"]},
				"post": {"tags": ["admin", 42]}
			}
		}
	}`)

	renamed := NamespaceTags(doc, "svc1")
	assert.Equal(t, 3, renamed)

	get := doc.Get("paths").Get("/admin").Get("get").Get("tags")
	first, _ := get.At(0).AsString()
	second, _ := get.At(1).AsString()
	assert.Equal(t, "svc1 | admin", first)
	assert.Equal(t, "svc1 | internal", second)

	post := doc.Get("paths").Get("/admin").Get("post").Get("tags")
	prefixed, _ := post.At(0).AsString()
	assert.Equal(t, "svc1 | admin", prefixed)

	// non-string entries are left untouched
	n, ok := post.At(1).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 42.0, n)
}

func TestNamespaceTagsTolerantWalk(t *testing.T) {
	doc := mustDecode(t, `{
		"tags": "not a sequence",
		"paths": {
			"/a": "not an object",
			"/b": {"get": "not an object", "put": {"tags": "not a sequence"}}
		}
	}`)

	assert.Equal(t, 0, NamespaceTags(doc, "svc1"))
}

func TestNamespaceTagsNoTags(t *testing.T) {
	doc := mustDecode(t, `{"paths": {"/a": {"get": {}}}}`)
	assert.Equal(t, 0, NamespaceTags(doc, "svc1"))
	assert.False(t, doc.Get("paths").Get("/a").Get("get").Has("tags"))
}
