package rng

import (
	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/cipher"
)

type options struct {
	m    chaos.Map
	size int
}

// Option is an option setter for New and NewSeeded.
type Option func(*options)

// default rng options
var (
	DefaultMap        = chaos.IntTent
	DefaultBufferSize = 4096
)

func newOptions(opts ...Option) (*options, error) {
	opt := &options{m: DefaultMap, size: DefaultBufferSize}
	for _, o := range opts {
		o(opt)
	}
	if !opt.m.Integer() {
		return nil, cipher.ErrFloatMap
	}
	if opt.size <= 0 || opt.size%8 != 0 {
		return nil, ErrInvalidArgument
	}
	return opt, nil
}

// WithMap sets the integer map driving the pool.
func WithMap(m chaos.Map) Option {
	return func(opts *options) {
		opts.m = m
	}
}

// WithBufferSize sets the pool size in bytes (positive multiple of 8).
func WithBufferSize(n int) Option {
	return func(opts *options) {
		opts.size = n
	}
}
