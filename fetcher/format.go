package fetcher

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceFormat represents the detected format of a fetched document
type SourceFormat string

const (
	// SourceFormatYAML indicates the document was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the document was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined;
	// decoding tries JSON first and falls back to YAML
	SourceFormatUnknown SourceFormat = "unknown"
)

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// detectFormat picks a decode format from the Content-Type header, the URL
// path extension, and finally the content itself.
func detectFormat(urlStr, contentType string, data []byte) SourceFormat {
	if contentType != "" {
		ct := strings.ToLower(contentType)
		// Strip charset and other parameters
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		ct = strings.TrimSpace(ct)

		// OpenAPI media types carry no format hint in the base type;
		// the optional format can be either, so let decoding try both.
		if strings.Contains(ct, "vnd.oai.openapi") {
			switch {
			case strings.HasSuffix(ct, "+json"):
				return SourceFormatJSON
			case strings.HasSuffix(ct, "+yaml"):
				return SourceFormatYAML
			default:
				return SourceFormatUnknown
			}
		}
		if strings.Contains(ct, "json") {
			return SourceFormatJSON
		}
		if strings.Contains(ct, "yaml") || strings.Contains(ct, "yml") {
			return SourceFormatYAML
		}
	}

	if parsed, err := url.Parse(urlStr); err == nil && parsed.Path != "" {
		switch filepath.Ext(parsed.Path) {
		case ".json":
			return SourceFormatJSON
		case ".yaml", ".yml":
			return SourceFormatYAML
		}
	}

	return detectFormatFromContent(data)
}

// detectFormatFromContent attempts to detect the format from the content
// bytes. JSON typically starts with '{' or '[', while YAML does not.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
