package merger

import (
	"fmt"
	"strings"

	"github.com/invoxy/spec-mesh/internal/severity"
)

// Severity indicates the severity level of a merge diagnostic
type Severity = severity.Severity

const (
	// SeverityError indicates a fatal problem (only returned as errors)
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a resolved, non-fatal anomaly
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational diagnostics
	SeverityInfo = severity.SeverityInfo
	// SeverityCritical indicates an anomaly that may have lost data
	SeverityCritical = severity.SeverityCritical
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnSkippedSource indicates a source was skipped because its document
	// was null or absent.
	WarnSkippedSource WarningCategory = "skipped_source"
	// WarnExcludedInvalid indicates a source was excluded by the structural
	// validation gate.
	WarnExcludedInvalid WarningCategory = "excluded_invalid"
	// WarnKeyCollision indicates a path/schema/component key collided and
	// was disambiguated with a source suffix.
	WarnKeyCollision WarningCategory = "key_collision"
	// WarnSuffixCollision indicates the disambiguated key itself was already
	// claimed and the later write overwrote it. This is a latent data-loss
	// edge case and is reported at critical severity.
	WarnSuffixCollision WarningCategory = "suffix_collision"
	// WarnUnnamedSource indicates a source had no name and a generated
	// identifier was used as its disambiguation key.
	WarnUnnamedSource WarningCategory = "unnamed_source"
)

// MergeWarning represents a structured warning from a merge run. It provides
// detailed context about non-fatal anomalies encountered while folding
// documents.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path is the JSON path to the affected element (e.g., "paths./users").
	Path string
	// Message is a human-readable description.
	Message string
	// Source is the service name that triggered the warning.
	Source string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *MergeWarning) String() string {
	return w.Message
}

// MergeWarnings is an ordered collection of structured warnings.
type MergeWarnings []*MergeWarning

// Strings returns all warning messages in order.
func (ws MergeWarnings) Strings() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// ByCategory returns the warnings matching a category.
func (ws MergeWarnings) ByCategory(category WarningCategory) MergeWarnings {
	var out MergeWarnings
	for _, w := range ws {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// NewSkippedSourceWarning creates a warning for a source whose document was
// null or absent.
func NewSkippedSourceWarning(source string) *MergeWarning {
	return &MergeWarning{
		Category: WarnSkippedSource,
		Message:  fmt.Sprintf("skipping source '%s': document is null or absent", source),
		Source:   source,
		Severity: severity.SeverityWarning,
	}
}

// NewExcludedInvalidWarning creates a warning for a source excluded by the
// validation gate. errors lists the structural violations found.
func NewExcludedInvalidWarning(source string, errors []string) *MergeWarning {
	return &MergeWarning{
		Category: WarnExcludedInvalid,
		Message:  fmt.Sprintf("excluding source '%s': document failed validation: %s", source, strings.Join(errors, "; ")),
		Source:   source,
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"errors": errors,
		},
	}
}

// NewKeyCollisionWarning creates a warning for a key that collided and was
// renamed with the source suffix.
func NewKeyCollisionWarning(section, key, newKey, source string) *MergeWarning {
	return &MergeWarning{
		Category: WarnKeyCollision,
		Path:     fmt.Sprintf("%s.%s", section, key),
		Message:  fmt.Sprintf("%s '%s' conflicts, renaming to '%s' (source %s)", section, key, newKey, source),
		Source:   source,
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"section": section,
			"key":     key,
			"new_key": newKey,
		},
	}
}

// NewSuffixCollisionWarning creates a warning for a disambiguated key that
// was itself already claimed. The later write overwrites the earlier one.
func NewSuffixCollisionWarning(section, key, source string) *MergeWarning {
	return &MergeWarning{
		Category: WarnSuffixCollision,
		Path:     fmt.Sprintf("%s.%s", section, key),
		Message:  fmt.Sprintf("%s '%s' already claimed, overwriting earlier entry (source %s)", section, key, source),
		Source:   source,
		Severity: severity.SeverityCritical,
		Context: map[string]any{
			"section": section,
			"key":     key,
		},
	}
}

// NewUnnamedSourceWarning creates a warning for a source that had no name
// and got a generated identifier instead.
func NewUnnamedSourceWarning(generated string, index int) *MergeWarning {
	return &MergeWarning{
		Category: WarnUnnamedSource,
		Message:  fmt.Sprintf("source at index %d has no name, using generated identifier '%s'", index, generated),
		Source:   generated,
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"index": index,
		},
	}
}
