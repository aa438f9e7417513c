package merger

import (
	"fmt"

	"github.com/invoxy/spec-mesh/document"
)

const (
	// TargetOASVersion is the format-version marker stamped on merged
	// documents by UpdateMetadata.
	TargetOASVersion = "3.1.0"
	// DefaultTitle is the synthesized info.title of a merged document.
	DefaultTitle = "Merged API"
	// DefaultVersion is the synthesized info.version of a merged document.
	DefaultVersion = "1.0.0"
)

// UpdateMetadata overwrites (or creates) the document's info mapping with
// the supplied title, description, and version, and sets the top-level
// openapi marker to TargetOASVersion. The document is modified in place.
//
// UpdateMetadata is total over any mapping, including the empty sentinel
// returned by a merge of zero sources; it only fails when the input is not
// a mapping at all.
func UpdateMetadata(doc document.Value, title, description, version string) error {
	if doc.Kind() != document.KindObject {
		return fmt.Errorf("merger: cannot update metadata on %s document", doc.Kind())
	}

	info := doc.Get("info")
	if info.Kind() != document.KindObject {
		info = document.NewObject()
		doc.Set("info", info)
	}
	info.Set("title", document.String(title))
	info.Set("description", document.String(description))
	info.Set("version", document.String(version))

	doc.Set("openapi", document.String(TargetOASVersion))
	return nil
}
