// Package validator provides structural validation of candidate OpenAPI
// and Swagger documents before they participate in a merge.
//
// Validation here is deliberately minimal: it is an ingestion gate, not a
// full semantic check. A document is well-formed when it is a mapping at the
// top level, declares an openapi or swagger version, carries an info mapping
// with title and version, and carries a paths mapping (which may be empty).
// Reference resolution and deeper schema validation are out of scope.
//
// # Quick Start
//
//	result := validator.Validate(doc)
//	if !result.Valid {
//		for _, issue := range result.Issues {
//			log.Printf("%s: %s (%s)", issue.Path, issue.Message, issue.Severity)
//		}
//	}
package validator
