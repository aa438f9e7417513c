package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/invoxy/spec-mesh/document"
	"github.com/invoxy/spec-mesh/fetcher"
)

// specInput represents the three ways an OpenAPI document can be provided to
// a tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads and decodes the document from whichever input was provided.
func (s specInput) resolve(ctx context.Context) (document.Value, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return document.Value{}, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	switch {
	case s.URL != "":
		f := fetcher.New()
		if !cfg.AllowPrivateIPs {
			f.HTTPClient = newSafeHTTPClient()
		}
		fetchCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
		result, err := f.Fetch(fetchCtx, s.URL)
		if err != nil {
			return document.Value{}, err
		}
		return result.Document, nil
	case s.File != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return document.Value{}, fmt.Errorf("reading %s: %w", s.File, err)
		}
		return decodeContent(data)
	default:
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return document.Value{}, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SPECMESH_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return decodeContent([]byte(s.Content))
	}
}

// decodeContent decodes document bytes as JSON first, then YAML.
func decodeContent(data []byte) (document.Value, error) {
	if doc, err := document.DecodeJSON(data); err == nil {
		return doc, nil
	}
	doc, err := document.DecodeYAML(data)
	if err != nil {
		return document.Value{}, fmt.Errorf("content is neither valid JSON nor YAML: %w", err)
	}
	return doc, nil
}
