package merger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/invoxy/spec-mesh/document"
	"github.com/invoxy/spec-mesh/internal/naming"
	"github.com/invoxy/spec-mesh/validator"
)

// mergerLogger is used for collision and skip diagnostics during merging.
// Tests can replace this with a discard logger to suppress expected warnings.
var mergerLogger = slog.Default()

// Config configures how documents are merged
type Config struct {
	// Grouping namespaces every tag by its owning service and collects
	// document-level tags into the merged document.
	Grouping bool
	// ProxyMode rewrites injected server URLs to reverse-proxy paths
	// instead of direct origin URLs. The caller decides this (proxying
	// enabled AND the proxy frontend reachable); the merger performs no
	// liveness checks of its own.
	ProxyMode bool
	// ProxyPathPrefix is the path prefix for proxy-mode server entries.
	// Defaults to DefaultProxyPathPrefix when empty.
	ProxyPathPrefix string
	// ValidateSources runs the structural validation gate on every source
	// document and excludes failures from the fold, reporting each
	// exclusion as a warning.
	ValidateSources bool
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		ProxyPathPrefix: DefaultProxyPathPrefix,
	}
}

// Source identifies one contributing service and its retrieved document.
type Source struct {
	// Name disambiguates merge conflicts and prefixes tags in grouping
	// mode. When empty, a generated identifier is used.
	Name string
	// URL is the service's origin base URL, injected into operation
	// server lists.
	URL string
	// Document is the already-decoded OpenAPI document. The merger never
	// mutates it; each source document is copied before transformation.
	Document document.Value
	// Payload optionally carries the raw document bytes instead of
	// Document. It is decoded at the merge boundary; a decode failure is
	// fatal to the whole merge call.
	Payload []byte
	// Enabled gates the source's participation in the run.
	Enabled bool
}

// Merger folds documents from multiple sources into one.
//
// Concurrency: Merger instances are not safe for concurrent use.
// Create separate Merger instances for concurrent operations.
type Merger struct {
	config Config
}

// New creates a new Merger instance with the provided configuration
func New(config Config) *Merger {
	if config.ProxyPathPrefix == "" {
		config.ProxyPathPrefix = DefaultProxyPathPrefix
	}
	return &Merger{config: config}
}

// MergeResult contains the merged document and merge diagnostics.
type MergeResult struct {
	// Document is the merged document. When no enabled sources were
	// supplied it is the empty sentinel: an empty mapping with no info,
	// paths, or components. Check with Empty before use.
	Document document.Value
	// Warnings contains non-fatal issues as plain strings (for backward
	// compatibility with log-style consumers).
	Warnings []string
	// StructuredWarnings contains detailed warning information with context.
	StructuredWarnings MergeWarnings
	// CollisionCount tracks the number of key collisions resolved.
	CollisionCount int
	// Report contains detailed collision analysis.
	Report *CollisionReport
	// SourceCount is the number of sources that contributed to the fold.
	SourceCount int
}

// AddWarning adds a structured warning and populates the legacy Warnings slice.
func (r *MergeResult) AddWarning(w *MergeWarning) {
	r.StructuredWarnings = append(r.StructuredWarnings, w)
	r.Warnings = append(r.Warnings, w.String())
}

// Empty reports whether the result is the empty sentinel produced by a
// merge with no participating sources.
func (r *MergeResult) Empty() bool {
	return r.Document.Len() == 0
}

// Merge folds the sources, in order, into a single merged document. The
// input order is significant: the first source to claim a path, schema, or
// component key keeps the bare key; later claimants get a source-suffixed
// key.
//
// Sources with Enabled false are ignored. Sources whose document is null
// or absent are skipped with a warning. A Payload that fails to decode
// aborts the whole merge. With no participating sources the result is the
// empty sentinel, not an error.
func (m *Merger) Merge(sources []Source) (*MergeResult, error) {
	result := &MergeResult{Report: NewCollisionReport()}

	enabled := make([]Source, 0, len(sources))
	for _, src := range sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}
	if len(enabled) == 0 {
		result.Document = document.NewObject()
		return result, nil
	}

	paths := document.NewObject()
	schemas := document.NewObject()
	otherComponents := document.NewObject()
	allTags := document.NewArray()

	for i, src := range enabled {
		name := src.Name
		if name == "" {
			name = naming.FallbackName()
			result.AddWarning(NewUnnamedSourceWarning(name, i))
		}

		doc, err := m.sourceDocument(src, name)
		if err != nil {
			return nil, err
		}
		if doc.IsZero() || doc.IsNull() {
			result.AddWarning(NewSkippedSourceWarning(name))
			mergerLogger.Warn("skipping source: document is null", "source", name)
			continue
		}

		if m.config.ValidateSources {
			if vr := validator.Validate(doc); !vr.Valid {
				result.AddWarning(NewExcludedInvalidWarning(name, vr.ErrorStrings()))
				mergerLogger.Warn("excluding source: failed validation", "source", name, "errors", len(vr.Issues))
				continue
			}
		}

		// Never mutate the caller's document.
		doc = doc.Clone()

		injectServers(doc, src.URL, name, m.config.ProxyMode, m.config.ProxyPathPrefix)

		if m.config.Grouping {
			NamespaceTags(doc, name)
			docTags := doc.Get("tags")
			for ti := 0; ti < docTags.Len(); ti++ {
				allTags.Append(docTags.At(ti))
			}
		}

		m.foldSection(result, paths, doc.Get("paths"), "paths", name)

		components := doc.Get("components")
		m.foldSection(result, schemas, components.Get("schemas"), "components.schemas", name)
		for _, kind := range components.Keys() {
			if kind == "schemas" {
				continue
			}
			kindValue := components.Get(kind)
			if kindValue.Kind() != document.KindObject {
				continue
			}
			acc := otherComponents.Get(kind)
			if acc.IsZero() {
				acc = document.NewObject()
				otherComponents.Set(kind, acc)
			}
			m.foldSection(result, acc, kindValue, "components."+kind, name)
		}

		result.SourceCount++
	}

	merged := document.NewObject()

	info := document.NewObject()
	info.Set("title", document.String(DefaultTitle))
	info.Set("description", document.String(""))
	info.Set("version", document.String(DefaultVersion))
	merged.Set("info", info)

	merged.Set("paths", paths)

	mergedComponents := document.NewObject()
	mergedComponents.Set("schemas", schemas)
	for _, kind := range otherComponents.Keys() {
		mergedComponents.Set(kind, otherComponents.Get(kind))
	}
	merged.Set("components", mergedComponents)

	if m.config.Grouping {
		merged.Set("tags", allTags)
	}

	result.Document = merged
	return result, nil
}

// sourceDocument returns the source's decoded document, decoding Payload at
// the merge boundary when no Document was supplied.
func (m *Merger) sourceDocument(src Source, name string) (document.Value, error) {
	if !src.Document.IsZero() || len(src.Payload) == 0 {
		return src.Document, nil
	}
	doc, err := decodePayload(src.Payload)
	if err != nil {
		return document.Value{}, fmt.Errorf("merger: failed to decode document for source '%s': %w", name, err)
	}
	return doc, nil
}

// decodePayload decodes raw document bytes, trying JSON first for
// brace-delimited content and falling back to YAML.
func decodePayload(data []byte) (document.Value, error) {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if doc, err := document.DecodeJSON(data); err == nil {
			return doc, nil
		}
	}
	return document.DecodeYAML(data)
}

// foldSection merges one source's section entries into an accumulator,
// applying the two-level key disambiguation rule.
func (m *Merger) foldSection(result *MergeResult, acc, section document.Value, sectionName, sourceName string) {
	if section.Kind() != document.KindObject {
		return
	}

	for _, key := range section.Keys() {
		target := key
		if acc.Has(key) {
			target = key + "_" + sourceName
			result.CollisionCount++
			result.AddWarning(NewKeyCollisionWarning(sectionName, key, target, sourceName))
			mergerLogger.Warn("key collision", "section", sectionName, "key", key, "renamed_to", target, "source", sourceName)

			event := CollisionEvent{
				Section:    sectionName,
				Key:        key,
				NewKey:     target,
				Source:     sourceName,
				Resolution: "renamed",
				Severity:   SeverityWarning,
			}
			if acc.Has(target) {
				// Second-order collision: the suffixed key is taken too.
				// Last writer wins; reported, never fatal.
				result.AddWarning(NewSuffixCollisionWarning(sectionName, target, sourceName))
				mergerLogger.Warn("suffix collision, overwriting", "section", sectionName, "key", target, "source", sourceName)
				event.Resolution = "overwritten"
				event.Severity = SeverityCritical
			}
			result.Report.AddEvent(event)
		}
		acc.Set(target, section.Get(key))
	}
}

// Merge folds the given sources with default settings and the supplied
// grouping mode. It is the package-level convenience for one-shot merges.
func Merge(sources []Source, grouping bool) (*MergeResult, error) {
	cfg := DefaultConfig()
	cfg.Grouping = grouping
	return New(cfg).Merge(sources)
}

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// WriteResult writes a merged document to a file in YAML or JSON format.
//
// The output file is written with restrictive permissions (0600 - owner
// read/write only) to protect potentially sensitive API specifications.
func WriteResult(result *MergeResult, outputPath string, asJSON bool) error {
	var data []byte
	var err error

	if asJSON {
		data, err = json.MarshalIndent(result.Document, "", "  ")
	} else {
		data, err = yaml.Marshal(result.Document)
	}
	if err != nil {
		return fmt.Errorf("merger: failed to marshal merged document: %w", err)
	}

	if err := os.WriteFile(outputPath, data, outputFileMode); err != nil {
		return fmt.Errorf("merger: failed to write output file: %w", err)
	}
	return nil
}
