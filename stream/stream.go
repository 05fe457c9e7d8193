package stream

import (
	"io"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
)

// Stream is a seekable encrypted view over a base stream. Reads decrypt,
// writes encrypt, and Seek moves both the base stream and the keystream
// position together. Decrypting a byte depends only on (key, base IV,
// absolute position), never on stream history.
type Stream struct {
	base    io.ReadWriteSeeker
	ks      *Keystream
	pos     uint64
	scratch []byte
}

var _ io.ReadWriteSeeker = (*Stream)(nil)

// New wraps base with the counter-mode cipher for (m, key, iv).
func New(base io.ReadWriteSeeker, m chaos.Map, key, iv []byte) (*Stream, error) {
	ks, err := NewKeystream(m, key, iv)
	if err != nil {
		return nil, err
	}
	return &Stream{base: base, ks: ks}, nil
}

// Read reads from the base stream and decrypts in place. Base I/O errors
// pass through unchanged; any bytes that were read are still decrypted.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.base.Read(p)
	if n > 0 {
		s.ks.Apply(p[:n], s.pos)
		s.pos += uint64(n)
	}
	return n, err
}

// Write encrypts p into a private scratch buffer and writes that, leaving
// p untouched. The position advances by the bytes the base accepted.
func (s *Stream) Write(p []byte) (int, error) {
	if cap(s.scratch) < len(p) {
		s.scratch = make([]byte, len(p))
	} else {
		s.scratch = s.scratch[:len(p)]
	}
	copy(s.scratch, p)
	s.ks.Apply(s.scratch, s.pos)
	n, err := s.base.Write(s.scratch)
	s.pos += uint64(n)
	return n, err
}

// Seek moves the base stream and adopts the resulting absolute position.
// The cached keystream block is kept; a later Apply reuses it when the
// new position lands in the same block.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.base.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	s.pos = uint64(pos)
	return pos, nil
}
