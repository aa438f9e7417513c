package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalJSON = `{"openapi":"3.1.0","info":{"title":"Users","version":"1.0.0"},"paths":{}}`

const minimalYAML = `openapi: 3.1.0
info:
  title: Users
  version: 1.0.0
paths: {}
`

func specHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		data        string
		want        SourceFormat
	}{
		{"json content type", "http://x/spec", "application/json", "", SourceFormatJSON},
		{"json with charset", "http://x/spec", "application/json; charset=utf-8", "", SourceFormatJSON},
		{"yaml content type", "http://x/spec", "application/yaml", "", SourceFormatYAML},
		{"text yaml", "http://x/spec", "text/x-yaml", "", SourceFormatYAML},
		{"openapi json suffix", "http://x/spec", "application/vnd.oai.openapi+json", "", SourceFormatJSON},
		{"openapi yaml suffix", "http://x/spec", "application/vnd.oai.openapi+yaml", "", SourceFormatYAML},
		{"openapi bare", "http://x/spec", "application/vnd.oai.openapi", "", SourceFormatUnknown},
		{"openapi bare with version param", "http://x/spec", "application/vnd.oai.openapi; version=3.1", "", SourceFormatUnknown},
		{"json extension", "http://x/openapi.json", "", "", SourceFormatJSON},
		{"yaml extension", "http://x/openapi.yaml", "", "", SourceFormatYAML},
		{"yml extension", "http://x/openapi.yml", "", "", SourceFormatYAML},
		{"content brace", "http://x/spec", "", `{"a":1}`, SourceFormatJSON},
		{"content bracket", "http://x/spec", "", `[1]`, SourceFormatJSON},
		{"content yaml", "http://x/spec", "", "a: 1\n", SourceFormatYAML},
		{"empty everything", "http://x/spec", "", "", SourceFormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFormat(tt.url, tt.contentType, []byte(tt.data))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(specHandler("application/json", minimalJSON))
	defer srv.Close()

	result, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatJSON, result.Format)
	assert.Equal(t, srv.URL, result.URL)
	title, ok := result.Document.Get("info").Get("title").AsString()
	require.True(t, ok)
	assert.Equal(t, "Users", title)
}

func TestFetchYAML(t *testing.T) {
	srv := httptest.NewServer(specHandler("application/yaml", minimalYAML))
	defer srv.Close()

	result, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.Format)
	version, ok := result.Document.Get("info").Get("version").AsString()
	require.True(t, ok)
	assert.Equal(t, "1.0.0", version)
}

func TestFetchOpenAPIMediaTypeFallsBackToYAML(t *testing.T) {
	// Bare vnd.oai.openapi carries no format suffix: decoding must try
	// JSON first and fall back to YAML.
	srv := httptest.NewServer(specHandler("application/vnd.oai.openapi", minimalYAML))
	defer srv.Close()

	result, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.Format)
}

func TestFetchSetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		specHandler("application/json", minimalJSON)(w, r)
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotUA, "spec-mesh/"), "got user agent %q", gotUA)
}

func TestFetchErrors(t *testing.T) {
	t.Run("non-URL input", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), "/etc/passwd")
		assert.ErrorContains(t, err, "unsupported URL")
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := New().Fetch(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "HTTP 404")
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := httptest.NewServer(specHandler("application/json", "{not json"))
		defer srv.Close()

		_, err := New().Fetch(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "failed to decode document")
	})

	t.Run("body over size limit", func(t *testing.T) {
		srv := httptest.NewServer(specHandler("application/json", minimalJSON))
		defer srv.Close()

		f := New()
		f.MaxBodySize = 8
		_, err := f.Fetch(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "maximum size")
	})

	t.Run("context cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := New().Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
