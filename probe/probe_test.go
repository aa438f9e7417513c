package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestAvailableListening(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = ln.Close()
	}()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	p := New(ln.Addr().String())
	assert.True(t, p.Available(context.Background()))
}

func TestAvailableRefused(t *testing.T) {
	// Bind then close to get a port that refuses connections.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := New(addr)
	p.Timeout = 500 * time.Millisecond
	assert.False(t, p.Available(context.Background()))
}

func TestAvailableOverrideField(t *testing.T) {
	p := New("256.0.0.1:1") // never dialed
	p.Override = boolPtr(true)
	assert.True(t, p.Available(context.Background()))

	p.Override = boolPtr(false)
	assert.False(t, p.Available(context.Background()))
}

func TestAvailableEnvOverride(t *testing.T) {
	p := New("256.0.0.1:1") // never dialed

	t.Setenv(EnvOverride, "true")
	assert.True(t, p.Available(context.Background()))

	t.Setenv(EnvOverride, "0")
	assert.False(t, p.Available(context.Background()))
}

func TestAvailableFieldBeatsEnv(t *testing.T) {
	t.Setenv(EnvOverride, "false")
	p := New("256.0.0.1:1")
	p.Override = boolPtr(true)
	assert.True(t, p.Available(context.Background()))
}

func TestNewDefaultAddress(t *testing.T) {
	assert.Equal(t, DefaultAddress, New("").Address)
}
