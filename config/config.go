// Package config loads and validates the spec-mesh configuration file.
//
// The configuration is a YAML document describing the merged document's
// metadata, the proxy settings, and the list of upstream services whose
// schemas are fetched and merged. Optional booleans default to true so a
// minimal configuration lists only names and URLs.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Settings holds the metadata applied to the merged document.
type Settings struct {
	// Title is the merged document's info.title.
	Title string `yaml:"title"`
	// Description is the merged document's info.description.
	Description string `yaml:"description"`
	// Version is the merged document's info.version.
	Version string `yaml:"version"`
	// Grouping controls service-name tag prefixing. Defaults to true.
	Grouping *bool `yaml:"grouping"`
}

// GroupingEnabled reports whether tag grouping is on, defaulting to true
// when unset.
func (s Settings) GroupingEnabled() bool {
	return s.Grouping == nil || *s.Grouping
}

// Proxy holds the gateway proxy settings. When enabled and the proxy is
// reachable, injected server URLs are rewritten to proxy paths.
type Proxy struct {
	// Enabled turns proxy-mode server injection on.
	Enabled bool `yaml:"enabled"`
	// Address is the proxy probe address, host:port. Defaults to
	// 127.0.0.1:80 when empty.
	Address string `yaml:"address"`
	// PathPrefix is the proxy route prefix. Defaults to /proxy.
	PathPrefix string `yaml:"path_prefix"`
}

// Source describes one upstream service.
type Source struct {
	// Name identifies the service in collision suffixes and tag prefixes.
	// When empty a random name is generated at fetch time.
	Name string `yaml:"name"`
	// URL is the service's base URL, injected as the server for its
	// operations.
	URL string `yaml:"url"`
	// Schema is the URL of the service's OpenAPI document. When empty it
	// defaults to URL + "/openapi.json".
	Schema string `yaml:"schema"`
	// Enabled excludes the source from merging when false. Defaults to
	// true.
	Enabled *bool `yaml:"enabled"`
}

// IsEnabled reports whether the source participates in merging,
// defaulting to true when unset.
func (s Source) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Config is the full configuration document.
type Config struct {
	Settings Settings `yaml:"settings"`
	Proxy    Proxy    `yaml:"proxy"`
	Sources  []Source `yaml:"sources"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Proxy.Address == "" {
		c.Proxy.Address = "127.0.0.1:80"
	}
	if c.Proxy.PathPrefix == "" {
		c.Proxy.PathPrefix = "/proxy"
	}
	for i := range c.Sources {
		src := &c.Sources[i]
		if src.Schema == "" && src.URL != "" {
			src.Schema = strings.TrimRight(src.URL, "/") + "/openapi.json"
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Proxy.PathPrefix, "/") {
		return fmt.Errorf("proxy.path_prefix must start with '/': %q", c.Proxy.PathPrefix)
	}
	for i, src := range c.Sources {
		if src.URL == "" && src.Schema == "" {
			return fmt.Errorf("sources[%d]: url or schema is required", i)
		}
	}
	return nil
}
