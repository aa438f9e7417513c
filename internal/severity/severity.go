// Package severity provides severity level constants and utilities for
// diagnostics reported by the validator and merger packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a diagnostic raised during
// document validation or merging.
type Severity int

const (
	// SeverityError indicates a structural violation that makes a document
	// invalid. Used primarily by the validator package.
	SeverityError Severity = iota

	// SeverityWarning indicates a resolved anomaly such as a key collision
	// that was disambiguated, or a best-practice violation. Warnings never
	// prevent processing.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates an anomaly that may have lost data, such as
	// a disambiguated key that itself collided and was overwritten.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
