package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := loadConfig()
	assert.Equal(t, int64(4<<20), c.MaxInlineSize)
	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.True(t, c.Grouping)
	assert.True(t, c.ValidateSources)
	assert.Equal(t, "/proxy", c.ProxyPathPrefix)
	assert.False(t, c.AllowPrivateIPs)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SPECMESH_MAX_INLINE_SIZE", "1024")
	t.Setenv("SPECMESH_FETCH_TIMEOUT", "5s")
	t.Setenv("SPECMESH_MERGE_GROUPING", "false")
	t.Setenv("SPECMESH_MERGE_VALIDATE", "0")
	t.Setenv("SPECMESH_PROXY_PATH_PREFIX", "/gw")
	t.Setenv("SPECMESH_ALLOW_PRIVATE_IPS", "true")

	c := loadConfig()
	assert.Equal(t, int64(1024), c.MaxInlineSize)
	assert.Equal(t, 5*time.Second, c.FetchTimeout)
	assert.False(t, c.Grouping)
	assert.False(t, c.ValidateSources)
	assert.Equal(t, "/gw", c.ProxyPathPrefix)
	assert.True(t, c.AllowPrivateIPs)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Setenv("SPECMESH_MAX_INLINE_SIZE", "-1")
	t.Setenv("SPECMESH_FETCH_TIMEOUT", "soon")
	t.Setenv("SPECMESH_MERGE_GROUPING", "maybe")
	t.Setenv("SPECMESH_PROXY_PATH_PREFIX", "no-slash")

	c := loadConfig()
	assert.Equal(t, int64(4<<20), c.MaxInlineSize)
	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.True(t, c.Grouping)
	assert.Equal(t, "/proxy", c.ProxyPathPrefix)
}
