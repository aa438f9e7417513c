package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	specmesh "github.com/invoxy/spec-mesh"
	"github.com/invoxy/spec-mesh/document"
)

const (
	// defaultTimeout bounds a whole fetch when the caller's context has no
	// deadline and no custom client is configured.
	defaultTimeout = 30 * time.Second
	// defaultMaxBodySize is the maximum accepted document size (10 MiB).
	defaultMaxBodySize = 10 << 20
)

// Fetcher retrieves and decodes OpenAPI documents from URLs.
type Fetcher struct {
	// HTTPClient is the HTTP client used for fetching. If nil, a default
	// client with a 30-second timeout is created. When set,
	// InsecureSkipVerify is ignored (configure TLS on your client's
	// transport).
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS certificate verification.
	// Use with caution - only enable for testing or internal servers with
	// self-signed certs.
	InsecureSkipVerify bool
	// UserAgent is the User-Agent string used for requests.
	// Defaults to the spec-mesh build user agent if not set.
	UserAgent string
	// MaxBodySize is the maximum document size in bytes. Default: 10MB.
	MaxBodySize int64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger

	// Concurrency bounds the FetchAll worker pool. Default: 4.
	Concurrency int
	// PerSourceTimeout bounds each individual fetch in FetchAll.
	// Default: 15s.
	PerSourceTimeout time.Duration
}

// New creates a new Fetcher instance with default settings
func New() *Fetcher {
	return &Fetcher{
		UserAgent: specmesh.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (f *Fetcher) log() Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return NopLogger{}
}

// FetchResult contains one fetched, decoded document and its metadata.
type FetchResult struct {
	// URL is the location the document was fetched from.
	URL string
	// Format is the format the document decoded as.
	Format SourceFormat
	// ContentType is the Content-Type header of the response.
	ContentType string
	// Document is the decoded document tree.
	Document document.Value
	// LoadTime is the time taken to fetch and decode.
	LoadTime time.Duration
}

// Fetch retrieves the document at urlStr and decodes it according to the
// response content type, with a JSON-then-YAML fallback when the type is
// ambiguous.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*FetchResult, error) {
	start := time.Now()

	if !isURL(urlStr) {
		return nil, fmt.Errorf("fetcher: unsupported URL (want http:// or https://): %q", urlStr)
	}

	data, contentType, err := f.fetchURL(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	format := detectFormat(urlStr, contentType, data)
	doc, format, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("fetcher: failed to decode document from %s: %w", urlStr, err)
	}

	f.log().Debug("fetched document", "url", urlStr, "format", format, "bytes", len(data))

	return &FetchResult{
		URL:         urlStr,
		Format:      format,
		ContentType: contentType,
		Document:    doc,
		LoadTime:    time.Since(start),
	}, nil
}

// fetchURL fetches content from a URL and returns the bytes and the
// Content-Type header.
func (f *Fetcher) fetchURL(ctx context.Context, urlStr string) ([]byte, string, error) {
	client := f.client()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("fetcher: failed to create request: %w", err)
	}

	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = specmesh.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetcher: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetcher: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	maxSize := f.MaxBodySize
	if maxSize <= 0 {
		maxSize = defaultMaxBodySize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("fetcher: failed to read response body: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", fmt.Errorf("fetcher: document exceeds maximum size of %d bytes", maxSize)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (f *Fetcher) client() *http.Client {
	if f.HTTPClient != nil {
		if f.InsecureSkipVerify {
			f.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}
		return f.HTTPClient
	}
	if f.InsecureSkipVerify {
		transport := &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
				MinVersion:         tls.VersionTLS12,
			},
		}
		return &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		}
	}
	return &http.Client{
		Timeout: defaultTimeout,
	}
}

// decode parses document bytes according to the detected format. Unknown
// formats try JSON first, then YAML.
func decode(data []byte, format SourceFormat) (document.Value, SourceFormat, error) {
	switch format {
	case SourceFormatJSON:
		doc, err := document.DecodeJSON(data)
		return doc, SourceFormatJSON, err
	case SourceFormatYAML:
		doc, err := document.DecodeYAML(data)
		return doc, SourceFormatYAML, err
	default:
		if doc, err := document.DecodeJSON(data); err == nil {
			return doc, SourceFormatJSON, nil
		}
		doc, err := document.DecodeYAML(data)
		if err != nil {
			return document.Value{}, SourceFormatUnknown, fmt.Errorf("content is neither valid JSON nor YAML: %w", err)
		}
		return doc, SourceFormatYAML, nil
	}
}
