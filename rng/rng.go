// Package rng exposes the cipher as a seeded random number source: the
// keystream over a zero buffer, drained through a refillable pool. The
// IV doubles as a block counter, so a Rand built from the same key and
// IV always replays the same sequence.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/cipher"
)

var (
	// ErrInvalidRange is returned by IntRange when hi < lo.
	ErrInvalidRange = errors.New("rng: hi must not be less than lo")
	// ErrInvalidArgument is returned for non-positive or misaligned sizes.
	ErrInvalidArgument = errors.New("rng: buffer size must be a positive multiple of 8")
)

// Rand is a deterministic random source over the chaotic keystream.
// Not safe for concurrent use.
type Rand struct {
	m      chaos.Map
	key    [32]byte
	keyLen int
	iv     [16]byte
	buf    []byte
	c      int
}

// New creates a Rand keyed from operating-system entropy: a 32-byte key
// from crypto/rand and a random 16-byte base IV.
func New(opts ...Option) (*Rand, error) {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("rng: entropy source: %w", err)
	}
	iv := uuid.New()
	return NewSeeded(key[:], iv[:], opts...)
}

// NewSeeded creates a reproducible Rand from explicit key and IV bytes.
// The key must be at least 4 bytes; longer than 32 is truncated.
func NewSeeded(key, iv []byte, opts ...Option) (*Rand, error) {
	opt, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	if len(key) < 4 {
		return nil, cipher.ErrInvalidKey
	}
	r := &Rand{
		m:   opt.m,
		buf: make([]byte, opt.size),
	}
	r.keyLen = copy(r.key[:], key)
	copy(r.iv[:], iv)
	r.c = len(r.buf) // force a refill on first use
	return r, nil
}

// refill advances the IV counter and regenerates the pool: the first 8 IV
// bytes are a little-endian u64 incremented by one per refill.
func (r *Rand) refill() {
	ctr := binary.LittleEndian.Uint64(r.iv[0:8])
	binary.LittleEndian.PutUint64(r.iv[0:8], ctr+1)
	clear(r.buf)
	_ = cipher.Process(r.m, r.buf, r.key[:r.keyLen], r.iv[:])
	r.c = 0
}

// Uint32 returns the next 32 uniform bits.
func (r *Rand) Uint32() uint32 {
	if r.c+4 > len(r.buf) {
		r.refill()
	}
	v := binary.LittleEndian.Uint32(r.buf[r.c:])
	r.c += 4
	return v
}

// Uint64 returns the next 64 uniform bits.
func (r *Rand) Uint64() uint64 {
	if r.c+8 > len(r.buf) {
		r.refill()
	}
	v := binary.LittleEndian.Uint64(r.buf[r.c:])
	r.c += 8
	return v
}

// Float64 returns a uniform double in [0,1) with 53-bit precision.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) * 0x1p-53
}

// IntRange returns a uniform-ish integer in [lo, hi) by modulo reduction.
// Callers wanting unbiased sampling must layer rejection on top. hi == lo
// returns lo; hi < lo is ErrInvalidRange.
func (r *Rand) IntRange(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, ErrInvalidRange
	}
	if hi == lo {
		return lo, nil
	}
	span := uint64(hi - lo)
	return lo + int64(r.Uint64()%span), nil
}

// Fill fills p with keystream bytes.
func (r *Rand) Fill(p []byte) {
	for len(p) > 0 {
		if r.c == len(r.buf) {
			r.refill()
		}
		n := copy(p, r.buf[r.c:])
		r.c += n
		p = p[n:]
	}
}

// Read implements io.Reader; it never fails.
func (r *Rand) Read(p []byte) (int, error) {
	r.Fill(p)
	return len(p), nil
}
