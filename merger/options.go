package merger

import (
	"fmt"
	"strings"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation
type mergeConfig struct {
	sources []Source

	// nil means use the default from DefaultConfig
	grouping        *bool
	proxyMode       *bool
	proxyPathPrefix *string
	validateSources *bool
}

// WithSources appends sources to the merge input, in order. Input order is
// significant for collision resolution.
func WithSources(sources ...Source) Option {
	return func(cfg *mergeConfig) error {
		cfg.sources = append(cfg.sources, sources...)
		return nil
	}
}

// WithGrouping enables or disables tag namespacing by owning service.
func WithGrouping(grouping bool) Option {
	return func(cfg *mergeConfig) error {
		cfg.grouping = &grouping
		return nil
	}
}

// WithProxyMode enables or disables proxy-path server injection. The caller
// is responsible for deciding reachability (see the probe package).
func WithProxyMode(proxyMode bool) Option {
	return func(cfg *mergeConfig) error {
		cfg.proxyMode = &proxyMode
		return nil
	}
}

// WithProxyPathPrefix overrides the proxy path prefix. The prefix must
// begin with '/'.
func WithProxyPathPrefix(prefix string) Option {
	return func(cfg *mergeConfig) error {
		if !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("proxy path prefix must begin with '/', got %q", prefix)
		}
		cfg.proxyPathPrefix = &prefix
		return nil
	}
}

// WithValidation enables the structural validation gate: invalid source
// documents are excluded from the fold and reported as warnings.
func WithValidation(validate bool) Option {
	return func(cfg *mergeConfig) error {
		cfg.validateSources = &validate
		return nil
	}
}

// MergeWithOptions merges sources using functional options.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//		merger.WithSources(sources...),
//		merger.WithGrouping(true),
//		merger.WithValidation(true),
//	)
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}

	defaults := DefaultConfig()
	mergerCfg := Config{
		Grouping:        boolValueOrDefault(cfg.grouping, defaults.Grouping),
		ProxyMode:       boolValueOrDefault(cfg.proxyMode, defaults.ProxyMode),
		ProxyPathPrefix: stringValueOrDefault(cfg.proxyPathPrefix, defaults.ProxyPathPrefix),
		ValidateSources: boolValueOrDefault(cfg.validateSources, defaults.ValidateSources),
	}

	return New(mergerCfg).Merge(cfg.sources)
}

func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("nil option")
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func boolValueOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func stringValueOrDefault(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}
