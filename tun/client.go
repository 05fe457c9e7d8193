package tun

// Client dials a tunnel server and serves the connection with its handler.
type Client interface {
	Handler() Handler
	DialAndServe() error
}
