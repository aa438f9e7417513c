// Package commands provides CLI command handlers for specmesh.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/invoxy/spec-mesh/document"
	"github.com/invoxy/spec-mesh/fetcher"
	"github.com/invoxy/spec-mesh/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(out))
	return nil
}

// isHTTPSource reports whether the document source is a URL rather than a
// local file path.
func isHTTPSource(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// LoadDocument reads and decodes a document from a URL, a local file path,
// or stdin when path is "-". Local content is decoded as JSON first, then
// YAML.
func LoadDocument(ctx context.Context, path string) (document.Value, error) {
	if isHTTPSource(path) {
		result, err := fetcher.New().Fetch(ctx, path)
		if err != nil {
			return document.Value{}, err
		}
		return result.Document, nil
	}

	data, err := cliutil.ReadSource(path)
	if err != nil {
		return document.Value{}, err
	}
	return decodeDocument(data, path)
}

func decodeDocument(data []byte, path string) (document.Value, error) {
	if doc, err := document.DecodeJSON(data); err == nil {
		return doc, nil
	}
	doc, err := document.DecodeYAML(data)
	if err != nil {
		return document.Value{}, fmt.Errorf("decoding %s: content is neither valid JSON nor YAML: %w", cliutil.FormatSourcePath(path), err)
	}
	return doc, nil
}
