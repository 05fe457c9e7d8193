// Package tun carries encrypted byte streams between relay endpoints.
// Transports live in subpackages; websocket is the one provided.
package tun

import (
	"context"
	"io"
)

// Addr is a tunnel address.
type Addr interface {
	String() string
}

// Handler serves one tunnel connection.
type Handler interface {
	ServeTun(ctx context.Context, r io.Reader, w io.Writer)
}

// TunIDContextKey is the context key of the tunnel connection id.
type TunIDContextKey struct{}
