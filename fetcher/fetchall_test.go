package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoxy/spec-mesh/config"
)

func boolPtr(b bool) *bool { return &b }

func TestFetchAll(t *testing.T) {
	users := httptest.NewServer(specHandler("application/json", minimalJSON))
	defer users.Close()
	billing := httptest.NewServer(specHandler("application/yaml", minimalYAML))
	defer billing.Close()

	sources := []config.Source{
		{Name: "users", URL: "http://users:8000", Schema: users.URL},
		{Name: "billing", URL: "http://billing:8000", Schema: billing.URL},
	}

	fetched, errs := New().FetchAll(context.Background(), sources)
	require.Empty(t, errs)
	require.Len(t, fetched, 2)

	// Results keep configuration order, not completion order.
	assert.Equal(t, "users", fetched[0].Name)
	assert.Equal(t, "http://users:8000", fetched[0].URL)
	assert.Equal(t, "billing", fetched[1].Name)
	assert.True(t, fetched[0].Enabled)
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	good := httptest.NewServer(specHandler("application/json", minimalJSON))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer bad.Close()

	sources := []config.Source{
		{Name: "good", URL: "http://good:8000", Schema: good.URL},
		{Name: "bad", URL: "http://bad:8000", Schema: bad.URL},
	}

	fetched, errs := New().FetchAll(context.Background(), sources)
	require.Len(t, fetched, 1)
	assert.Equal(t, "good", fetched[0].Name)

	require.Len(t, errs, 1)
	assert.Equal(t, "bad", errs[0].Name)
	assert.ErrorContains(t, errs[0], "HTTP 500")
}

func TestFetchAllSkipsDisabled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		specHandler("application/json", minimalJSON)(w, r)
	}))
	defer srv.Close()

	sources := []config.Source{
		{Name: "off", URL: "http://off:8000", Schema: srv.URL, Enabled: boolPtr(false)},
		{Name: "on", URL: "http://on:8000", Schema: srv.URL},
	}

	fetched, errs := New().FetchAll(context.Background(), sources)
	require.Empty(t, errs)
	require.Len(t, fetched, 1)
	assert.Equal(t, "on", fetched[0].Name)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchAllMissingSchema(t *testing.T) {
	sources := []config.Source{
		{Name: "nowhere", URL: ""},
	}
	fetched, errs := New().FetchAll(context.Background(), sources)
	assert.Empty(t, fetched)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "no schema URL")
}

func TestFetchAllGeneratesFallbackName(t *testing.T) {
	srv := httptest.NewServer(specHandler("application/json", minimalJSON))
	defer srv.Close()

	fetched, errs := New().FetchAll(context.Background(), []config.Source{
		{Schema: srv.URL},
	})
	require.Empty(t, errs)
	require.Len(t, fetched, 1)
	assert.Len(t, fetched[0].Name, 10)
}

func TestFetchAllPerSourceTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()
	fast := httptest.NewServer(specHandler("application/json", minimalJSON))
	defer fast.Close()

	f := New()
	f.PerSourceTimeout = 100 * time.Millisecond

	fetched, errs := f.FetchAll(context.Background(), []config.Source{
		{Name: "slow", URL: "http://slow:8000", Schema: slow.URL},
		{Name: "fast", URL: "http://fast:8000", Schema: fast.URL},
	})

	// The slow source times out without dragging the fast one down.
	require.Len(t, fetched, 1)
	assert.Equal(t, "fast", fetched[0].Name)
	require.Len(t, errs, 1)
	assert.Equal(t, "slow", errs[0].Name)
}
