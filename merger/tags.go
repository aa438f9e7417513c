package merger

import (
	"github.com/invoxy/spec-mesh/document"
)

// tagSeparator joins the owning service name and the original tag name.
const tagSeparator = " | "

// NamespaceTags prefixes every tag name in the document with the owning
// service's name: document-level tag objects get their name field rewritten
// to "<service> | <original>", and every string entry of each operation's
// tags sequence is rewritten the same way. Tag objects without a name field
// and non-string operation tag entries are left untouched.
//
// The document is modified in place. This must run before document-level
// tags are collected into a merged tag list, so collected tags already
// carry the namespace prefix.
//
// Returns the number of tags rewritten.
func NamespaceTags(doc document.Value, serviceName string) int {
	renamed := 0

	tags := doc.Get("tags")
	if tags.Kind() == document.KindArray {
		for i := 0; i < tags.Len(); i++ {
			tag := tags.At(i)
			if tag.Kind() != document.KindObject {
				continue
			}
			name, ok := tag.Get("name").AsString()
			if !ok {
				continue
			}
			tag.Set("name", document.String(serviceName+tagSeparator+name))
			renamed++
		}
	}

	paths := doc.Get("paths")
	if paths.Kind() != document.KindObject {
		return renamed
	}

	for _, path := range paths.Keys() {
		item := paths.Get(path)
		if item.Kind() != document.KindObject {
			continue
		}
		for _, method := range item.Keys() {
			op := item.Get(method)
			if op.Kind() != document.KindObject {
				continue
			}
			opTags := op.Get("tags")
			if opTags.Kind() != document.KindArray {
				continue
			}
			for i := 0; i < opTags.Len(); i++ {
				name, ok := opTags.At(i).AsString()
				if !ok {
					continue
				}
				opTags.SetAt(i, document.String(serviceName+tagSeparator+name))
				renamed++
			}
		}
	}

	return renamed
}
