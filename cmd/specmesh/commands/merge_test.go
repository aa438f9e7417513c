package commands

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSetupMergeFlags(t *testing.T) {
	fs, flags := SetupMergeFlags()
	require.NoError(t, fs.Parse([]string{"-c", "mesh.yaml", "-o", "out.yaml", "--json", "-q", "--no-validate"}))

	assert.Equal(t, "mesh.yaml", flags.Config)
	assert.Equal(t, "out.yaml", flags.Output)
	assert.True(t, flags.JSON)
	assert.True(t, flags.Quiet)
	assert.True(t, flags.NoValidate)
	assert.False(t, flags.NoProbe)
}

func TestHandleMergeRequiresConfig(t *testing.T) {
	err := HandleMerge([]string{"-q"})
	assert.ErrorContains(t, err, "configuration file is required")
}

func TestHandleMergeRejectsPositionalArgs(t *testing.T) {
	err := HandleMerge([]string{"-c", "mesh.yaml", "extra.yaml"})
	assert.ErrorContains(t, err, "no positional arguments")
}

func TestHandleMergeEndToEnd(t *testing.T) {
	users := specServer(t, `{"openapi":"3.1.0","info":{"title":"Users","version":"1"},"paths":{"/users":{"get":{}}}}`)
	billing := specServer(t, `{"openapi":"3.1.0","info":{"title":"Billing","version":"1"},"paths":{"/invoices":{"get":{}}}}`)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "mesh.yaml")
	outputPath := filepath.Join(dir, "merged.yaml")

	configYAML := strings.Join([]string{
		"settings:",
		"  title: Platform API",
		"sources:",
		"  - name: users",
		"    url: http://users:8000",
		"    schema: " + users.URL,
		"  - name: billing",
		"    url: http://billing:8000",
		"    schema: " + billing.URL,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	err := HandleMerge([]string{"-c", configPath, "-o", outputPath, "-q"})
	require.NoError(t, err)

	merged, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	out := string(merged)
	assert.Contains(t, out, "openapi: 3.1.0")
	assert.Contains(t, out, "title: Platform API")
	assert.Contains(t, out, "/users:")
	assert.Contains(t, out, "/invoices:")
	assert.Contains(t, out, "url: http://users:8000")
}

func TestHandleMergeAllSourcesFail(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mesh.yaml")
	// Port 1 on localhost is near-guaranteed to refuse connections.
	require.NoError(t, os.WriteFile(configPath, []byte(
		"sources:\n  - name: gone\n    url: http://127.0.0.1:1\n"), 0o600))

	err := HandleMerge([]string{"-c", configPath, "-q"})
	assert.ErrorContains(t, err, "no sources could be fetched")
}

func TestHandleMergeBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "mesh.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("sources: [unclosed"), 0o600))

	err := HandleMerge([]string{"-c", configPath})
	assert.Error(t, err)
}
