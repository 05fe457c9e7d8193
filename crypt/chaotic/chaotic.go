// Package chaotic implements crypt.Crypt with the counter-mode chaotic
// keystream. Encoder and decoder each track their own absolute position
// from a configurable starting offset, so a decoder fed the encoder's
// byte stream from any aligned resume point reproduces the plaintext.
package chaotic

import (
	"io"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/crypt"
	"github.com/umitkrkmz/ChaoticEngine/stream"
)

var _ crypt.Crypt = &chaoticCrypt{}

type chaoticCrypt struct {
	m   chaos.Map
	key []byte
	iv  []byte
}

// NewCrypt creates a Crypt over the chaotic counter-mode keystream.
// The key must be at least 4 bytes.
func NewCrypt(key, iv []byte, opts ...Option) (crypt.Crypt, error) {
	opt := newOptions(opts...)
	c := &chaoticCrypt{
		m:   opt.m,
		key: append([]byte(nil), key...),
		iv:  append([]byte(nil), iv...),
	}
	// Validate key material once, up front.
	if _, err := stream.NewKeystream(c.m, c.key, c.iv); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *chaoticCrypt) NewEncoder(w io.Writer, opts ...crypt.EncoderOption) io.Writer {
	opt := newEncoderOptions(opts...)
	ks, _ := stream.NewKeystream(c.m, c.key, c.iv)
	return &encoder{
		w:   w,
		ks:  ks,
		pos: opt.offset,
	}
}

func (c *chaoticCrypt) NewDecoder(r io.Reader, opts ...crypt.DecoderOption) io.Reader {
	opt := newDecoderOptions(opts...)
	ks, _ := stream.NewKeystream(c.m, c.key, c.iv)
	return &decoder{
		r:   r,
		ks:  ks,
		pos: opt.offset,
	}
}

type encoder struct {
	w   io.Writer
	ks  *stream.Keystream
	pos uint64
	buf []byte
}

func (e *encoder) Write(p []byte) (n int, err error) {
	n = len(p)
	if cap(e.buf) < n {
		e.buf = make([]byte, n)
	} else {
		e.buf = e.buf[:n]
	}
	copy(e.buf, p)
	e.ks.Apply(e.buf, e.pos)
	e.pos += uint64(n)
	return e.w.Write(e.buf)
}

type decoder struct {
	r   io.Reader
	ks  *stream.Keystream
	pos uint64
}

func (d *decoder) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		d.ks.Apply(p[:n], d.pos)
		d.pos += uint64(n)
	}
	return n, err
}
