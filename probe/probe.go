// Package probe decides whether the gateway proxy in front of the merged
// services is reachable. The answer selects between direct and proxy-mode
// server injection.
//
// The check is a plain TCP dial: the proxy is considered available when a
// connection to its address succeeds within the timeout. The
// SPECMESH_PROXY_AVAILABLE environment variable short-circuits the dial for
// tests and deployments where probing is undesirable.
package probe

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultAddress is the address probed when none is configured.
	DefaultAddress = "127.0.0.1:80"
	// DefaultTimeout bounds the dial attempt.
	DefaultTimeout = 2 * time.Second

	// EnvOverride is the environment variable that forces the probe
	// result. Accepts strconv.ParseBool values ("1", "true", "0", ...).
	EnvOverride = "SPECMESH_PROXY_AVAILABLE"
)

// Prober checks whether a proxy endpoint accepts TCP connections.
type Prober struct {
	// Address is the host:port to dial. Defaults to DefaultAddress.
	Address string
	// Timeout bounds the dial. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Override forces the result without dialing. Takes precedence over
	// the environment override.
	Override *bool
}

// New creates a Prober for the given address, falling back to
// DefaultAddress when empty.
func New(address string) *Prober {
	if address == "" {
		address = DefaultAddress
	}
	return &Prober{Address: address}
}

// Available reports whether the proxy accepts connections. The order of
// precedence is: the Override field, the SPECMESH_PROXY_AVAILABLE
// environment variable, then a TCP dial.
func (p *Prober) Available(ctx context.Context) bool {
	if p.Override != nil {
		return *p.Override
	}
	if raw, ok := os.LookupEnv(EnvOverride); ok {
		if forced, err := strconv.ParseBool(raw); err == nil {
			return forced
		}
	}

	address := p.Address
	if address == "" {
		address = DefaultAddress
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
