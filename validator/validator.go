package validator

import (
	"fmt"

	"github.com/invoxy/spec-mesh/document"
	"github.com/invoxy/spec-mesh/internal/severity"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a structural violation that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates critical issues
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single validation finding.
type Issue struct {
	// Path is the JSON path to the offending element (e.g., "info.title").
	Path string
	// Message is a human-readable description.
	Message string
	// Severity indicates how serious the issue is.
	Severity Severity
}

// String returns an IDE-friendly one-line rendering of the issue.
func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("[%s] %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Path, i.Message)
}

// Result contains the outcome of validating one candidate document.
type Result struct {
	// Valid is true when no error-level issues were found.
	Valid bool
	// Version is the declared openapi/swagger version string, when present.
	Version string
	// Issues contains every finding, errors first in document order.
	Issues []Issue
}

func (r *Result) addError(path, msg string) {
	r.Issues = append(r.Issues, Issue{Path: path, Message: msg, Severity: SeverityError})
}

// ErrorStrings returns the error-level issues as plain strings, for callers
// that report exclusions without structured diagnostics.
func (r *Result) ErrorStrings() []string {
	var out []string
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue.String())
		}
	}
	return out
}

// Validate checks the minimal structural validity of a candidate document.
// Documents failing validation must be excluded from a merge run and the
// exclusion reported to the caller.
func Validate(doc document.Value) Result {
	var result Result

	if doc.Kind() != document.KindObject {
		result.addError("", fmt.Sprintf("document must be a mapping, got %s", doc.Kind()))
		return result
	}

	version, hasOpenAPI := doc.Get("openapi").AsString()
	if !hasOpenAPI {
		version, hasOpenAPI = doc.Get("swagger").AsString()
	}
	if hasOpenAPI {
		result.Version = version
	} else if doc.Has("openapi") || doc.Has("swagger") {
		result.addError("openapi", "version marker must be a string")
	} else {
		result.addError("", "document declares neither 'openapi' nor 'swagger'")
	}

	validateInfo(doc, &result)

	if !doc.Has("paths") {
		result.addError("paths", "document has no 'paths' mapping")
	} else if doc.Get("paths").Kind() != document.KindObject {
		result.addError("paths", fmt.Sprintf("'paths' must be a mapping, got %s", doc.Get("paths").Kind()))
	}

	result.Valid = len(result.Issues) == 0
	return result
}

func validateInfo(doc document.Value, result *Result) {
	info := doc.Get("info")
	if info.IsZero() {
		result.addError("info", "document has no 'info' mapping")
		return
	}
	if info.Kind() != document.KindObject {
		result.addError("info", fmt.Sprintf("'info' must be a mapping, got %s", info.Kind()))
		return
	}
	if _, ok := info.Get("title").AsString(); !ok {
		result.addError("info.title", "missing or non-string 'title'")
	}
	if _, ok := info.Get("version").AsString(); !ok {
		result.addError("info.version", "missing or non-string 'version'")
	}
}

// IsWellFormed is a convenience wrapper over Validate for callers that only
// need the boolean gate.
func IsWellFormed(doc document.Value) bool {
	return Validate(doc).Valid
}
