package relay

import (
	"github.com/umitkrkmz/ChaoticEngine/counter"
	"github.com/umitkrkmz/ChaoticEngine/crypt"
)

// Options is relay options
type Options struct {
	listenAddr  string
	connectAddr string
	tunListen   string
	tunConnect  string
	crypt       crypt.Crypt
	up          counter.Counter
	down        counter.Counter
}

// Option is option setter for relay
type Option func(*Options)

// default relay options
var (
	DefaultListenAddress  = "127.0.0.1:5600"
	DefaultConnectAddress = "127.0.0.1:5601"
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.listenAddr == "" {
		opt.listenAddr = DefaultListenAddress
	}
	if opt.connectAddr == "" {
		opt.connectAddr = DefaultConnectAddress
	}

	return opt
}

// WithListenAddress sets the local TCP listen address (entry side).
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.listenAddr = addr
	}
}

// WithConnectAddress sets the target TCP address (exit side).
func WithConnectAddress(addr string) Option {
	return func(opts *Options) {
		opts.connectAddr = addr
	}
}

// WithTunListenAddress makes this relay the exit side, serving the tunnel.
func WithTunListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.tunListen = addr
	}
}

// WithTunConnectAddress makes this relay the entry side, dialing the tunnel.
func WithTunConnectAddress(addr string) Option {
	return func(opts *Options) {
		opts.tunConnect = addr
	}
}

// WithCrypt sets the tunnel crypt.
func WithCrypt(c crypt.Crypt) Option {
	return func(opts *Options) {
		opts.crypt = c
	}
}

// WithUploadCounter counts bytes sent into the tunnel.
func WithUploadCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.up = c
	}
}

// WithDownloadCounter counts bytes received from the tunnel.
func WithDownloadCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.down = c
	}
}
