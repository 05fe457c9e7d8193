// Package crypt defines the cipher-agnostic seam for wrapping byte
// streams: a Crypt produces XOR-keystream encoders over writers and
// decoders over readers. Implementations live in subpackages.
package crypt

import (
	"io"
)

// EncoderOptions is an implementation-defined option bag.
type EncoderOptions interface{}

// DecoderOptions is an implementation-defined option bag.
type DecoderOptions interface{}

// EncoderOption is an option setter for encoders.
type EncoderOption func(EncoderOptions)

// DecoderOption is an option setter for decoders.
type DecoderOption func(DecoderOptions)

// Crypt wraps a reader and a writer with a symmetric keystream.
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}
