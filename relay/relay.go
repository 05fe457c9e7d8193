// Package relay bridges a local TCP connection and a tun connection,
// encrypting the tunnel side with a crypt.Crypt. An entry relay accepts
// local connections and dials the tunnel; an exit relay serves the tunnel
// and dials the target address.
package relay

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/google/uuid"

	engine "github.com/umitkrkmz/ChaoticEngine"
	"github.com/umitkrkmz/ChaoticEngine/counter"
	"github.com/umitkrkmz/ChaoticEngine/tun"
	"github.com/umitkrkmz/ChaoticEngine/tun/websocket"
)

// Relay is one endpoint of an encrypted byte relay.
type Relay struct {
	opts Options
}

// New creates a new Relay.
func New(opts ...Option) *Relay {
	opt := newOptions(opts...)
	return &Relay{
		opts: *opt,
	}
}

// Serve runs the relay until its transport fails. The mode follows the
// options: a tunnel listen address makes this the exit side, a tunnel
// connect address the entry side.
func (r *Relay) Serve() error {
	if r.opts.tunListen != "" {
		log.Println("start relay exit, tun", r.opts.tunListen, "->", r.opts.connectAddr)
		defer log.Println("relay exit stopped")
		s := websocket.NewServer(
			tun.WithListenAddress(r.opts.tunListen),
			tun.WithServerHandler(&exitHandler{r: r}),
		)
		return s.ListenAndServe()
	}
	if r.opts.tunConnect != "" {
		return r.serveEntry()
	}
	return fmt.Errorf("relay: neither tunnel listen nor connect address configured")
}

func (r *Relay) serveEntry() error {
	ln, err := net.Listen("tcp", r.opts.listenAddr)
	if err != nil {
		return err
	}
	defer ln.Close()
	log.Println("start relay entry,", r.opts.listenAddr, "-> tun", r.opts.tunConnect)
	defer log.Println("relay entry stopped")

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go func(conn net.Conn) {
			defer conn.Close()
			c := websocket.NewClient(
				tun.WithConnectAddress(r.opts.tunConnect),
				tun.WithClientHandler(&entryHandler{r: r, conn: conn}),
			)
			if err := c.DialAndServe(); err != nil {
				log.Println("relay entry tunnel:", err)
			}
		}(conn)
	}
}

var _ tun.Handler = (*exitHandler)(nil)

type exitHandler struct {
	r *Relay
}

// ServeTun implements tun.Handler.
func (h *exitHandler) ServeTun(ctx context.Context, tr io.Reader, tw io.Writer) {
	id := uuid.New().String()[:8]
	log.Println("relay", id, "tunnel up, dialing", h.r.opts.connectAddr)
	defer log.Println("relay", id, "tunnel closed")

	conn, err := net.Dial("tcp", h.r.opts.connectAddr)
	if err != nil {
		log.Println("relay", id, "dial:", err)
		return
	}
	defer conn.Close()
	h.r.bridge(tr, tw, conn)
}

var _ tun.Handler = (*entryHandler)(nil)

type entryHandler struct {
	r    *Relay
	conn net.Conn
}

// ServeTun implements tun.Handler.
func (h *entryHandler) ServeTun(ctx context.Context, tr io.Reader, tw io.Writer) {
	id := uuid.New().String()[:8]
	log.Println("relay", id, "tunnel up for", h.conn.RemoteAddr())
	defer log.Println("relay", id, "tunnel closed")

	h.r.bridge(tr, tw, h.conn)
}

// bridge pumps bytes both ways until either side closes, wrapping the
// tunnel side with the configured crypt and counting payload bytes.
func (r *Relay) bridge(tr io.Reader, tw io.Writer, conn net.Conn) {
	if c := r.opts.crypt; c != nil {
		tr = c.NewDecoder(tr)
		tw = c.NewEncoder(tw)
	}
	tw = engine.NewSyncWriter(tw)

	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Copy(countingWriter{conn, r.opts.down}, tr)
		conn.Close()
	}()
	io.Copy(countingWriter{tw, r.opts.up}, conn)
	<-done
}

type countingWriter struct {
	w io.Writer
	c counter.Counter
}

func (cw countingWriter) Write(p []byte) (n int, err error) {
	n, err = cw.w.Write(p)
	if cw.c != nil && n > 0 {
		cw.c.Add(int64(n))
	}
	return n, err
}
