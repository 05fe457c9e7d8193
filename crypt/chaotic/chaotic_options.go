package chaotic

import (
	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/crypt"
)

type options struct {
	m chaos.Map
}

// Option is an option setter for NewCrypt.
type Option func(*options)

// default crypt options
var (
	DefaultMap = chaos.IntTent
)

func newOptions(opts ...Option) *options {
	opt := &options{m: DefaultMap}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithMap sets the integer map driving the keystream.
func WithMap(m chaos.Map) Option {
	return func(opts *options) {
		opts.m = m
	}
}

type encoderOptions struct {
	offset uint64
}

func newEncoderOptions(opts ...crypt.EncoderOption) *encoderOptions {
	var opt encoderOptions
	for _, o := range opts {
		o(&opt)
	}
	return &opt
}

// WithEncoderOffset sets the absolute keystream position the encoder
// starts at. Useful when resuming a partially written stream.
func WithEncoderOffset(off uint64) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*encoderOptions); ok {
			o.offset = off
		}
	}
}

type decoderOptions struct {
	offset uint64
}

func newDecoderOptions(opts ...crypt.DecoderOption) *decoderOptions {
	var opt decoderOptions
	for _, o := range opts {
		o(&opt)
	}
	return &opt
}

// WithDecoderOffset sets the absolute keystream position the decoder
// starts at.
func WithDecoderOffset(off uint64) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*decoderOptions); ok {
			o.offset = off
		}
	}
}
