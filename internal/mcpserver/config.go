package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline spec content passed to tools, in bytes.
	MaxInlineSize int64

	// FetchTimeout bounds each URL fetch performed on behalf of a tool.
	FetchTimeout time.Duration

	// Merge tool defaults.
	Grouping        bool
	ValidateSources bool
	ProxyPathPrefix string

	// AllowPrivateIPs disables SSRF protection for URL inputs.
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECMESH_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize:   envInt64("SPECMESH_MAX_INLINE_SIZE", 4<<20),
		FetchTimeout:    envDuration("SPECMESH_FETCH_TIMEOUT", 30*time.Second),
		Grouping:        envBool("SPECMESH_MERGE_GROUPING", true),
		ValidateSources: envBool("SPECMESH_MERGE_VALIDATE", true),
		ProxyPathPrefix: envPrefix("SPECMESH_PROXY_PATH_PREFIX", "/proxy"),
		AllowPrivateIPs: envBool("SPECMESH_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envPrefix(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if v[0] != '/' {
		slog.Warn("invalid path prefix env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return v
}
