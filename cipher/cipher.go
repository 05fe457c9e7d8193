// Package cipher turns the integer chaotic maps into a symmetric XOR
// stream cipher. Process derives a vector of parallel lane seeds from
// (key, IV), iterates the map at the widest available width, scrambles
// each state word with the avalanche mixer and XORs the resulting bytes
// over the caller's buffer in place. Applying Process twice with the same
// key and IV restores the original buffer.
//
// The keystream state always carries the full 16 lanes per dimension;
// the detected SIMD tier only selects the kernel batch width over those
// lanes (16 at once, two 8-lane halves, or lane by lane). Keystream
// bytes are therefore identical on every tier, which is what makes the
// counter-mode wire format in package stream portable.
package cipher

import (
	"encoding/binary"
	"errors"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/simd"
)

var (
	// ErrInvalidKey is returned for keys too short to derive any seed.
	ErrInvalidKey = errors.New("cipher: key shorter than 4 bytes")
	// ErrFloatMap is returned when a float map is asked to produce keystream.
	ErrFloatMap = errors.New("cipher: float map cannot drive the keystream")
)

// Lanes is the number of parallel u32 lanes the keystream state carries
// per dimension, independent of tier.
const Lanes = 16

// stride is the keystream bytes produced per vector iteration.
const stride = 4 * Lanes

type state struct {
	x, y, z [Lanes]uint32
}

func stepWide16(m chaos.Map, s *state) {
	switch m {
	case chaos.IntTent:
		chaos.TentStep16(&s.x)
	case chaos.IntLogistic:
		chaos.LogisticStep16(&s.x)
	case chaos.IntSine:
		chaos.SineStep16(&s.x)
	case chaos.IntHenon:
		chaos.HenonStep16(&s.x, &s.y)
	case chaos.IntLorenz:
		chaos.LorenzStep16(&s.x, &s.y, &s.z)
	case chaos.IntChen:
		chaos.ChenStep16(&s.x, &s.y, &s.z)
	}
}

func stepWide8(m chaos.Map, s *state, half int) {
	o := half * 8
	x := (*[8]uint32)(s.x[o : o+8])
	switch m {
	case chaos.IntTent:
		chaos.TentStep8(x)
	case chaos.IntLogistic:
		chaos.LogisticStep8(x)
	case chaos.IntSine:
		chaos.SineStep8(x)
	case chaos.IntHenon:
		chaos.HenonStep8(x, (*[8]uint32)(s.y[o:o+8]))
	case chaos.IntLorenz:
		chaos.LorenzStep8(x, (*[8]uint32)(s.y[o:o+8]), (*[8]uint32)(s.z[o:o+8]))
	case chaos.IntChen:
		chaos.ChenStep8(x, (*[8]uint32)(s.y[o:o+8]), (*[8]uint32)(s.z[o:o+8]))
	}
}

// advance steps all lanes once at the given tier. Every tier computes the
// same lane values; only the batch width differs.
func advance(m chaos.Map, tier simd.Tier, s *state) {
	switch tier {
	case simd.W512:
		stepWide16(m, s)
	case simd.W256:
		stepWide8(m, s, 0)
		stepWide8(m, s, 1)
	default:
		for k := 0; k < Lanes; k++ {
			s.x[k], s.y[k], s.z[k] = m.StepU32(s.x[k], s.y[k], s.z[k])
		}
	}
}

// combine folds the component vectors into one keystream vector:
// x for 1D maps, x⊕y for 2D, x⊕y⊕z for 3D.
func combine(d int, s *state, ks *[Lanes]uint32) {
	switch d {
	case 1:
		*ks = s.x
	case 2:
		for i := range ks {
			ks[i] = s.x[i] ^ s.y[i]
		}
	default:
		for i := range ks {
			ks[i] = s.x[i] ^ s.y[i] ^ s.z[i]
		}
	}
}

func xorWords(dst []byte, ks *[Lanes]uint32) {
	le := binary.LittleEndian
	for i := range ks {
		o := 4 * i
		le.PutUint32(dst[o:o+4], le.Uint32(dst[o:o+4])^ks[i])
	}
}

// Process XORs the keystream for (m, key, iv) over buf in place.
// Process is an involution: a second call with the same arguments undoes
// the first. It does not allocate; all transient state lives on the stack.
//
// Keys must be at least 4 bytes (ErrInvalidKey otherwise) and are
// truncated at 32. An empty buf is a no-op beyond the key length check.
func Process(m chaos.Map, buf, key, iv []byte) error {
	if !m.Integer() {
		return ErrFloatMap
	}
	if len(key) < 4 {
		return ErrInvalidKey
	}
	if len(buf) == 0 {
		return nil
	}

	tier := simd.Detect()
	d := m.Dim()

	var seeds [3 * Lanes]uint32
	if err := DeriveSeeds(m, key, iv, seeds[:d*Lanes]); err != nil {
		return err
	}
	var s state
	copy(s.x[:], seeds[0:Lanes])
	if d > 1 {
		copy(s.y[:], seeds[Lanes:2*Lanes])
	}
	if d > 2 {
		copy(s.z[:], seeds[2*Lanes:3*Lanes])
	}

	n := len(buf)
	aligned := n &^ (stride - 1)
	var ks [Lanes]uint32
	for o := 0; o < aligned; o += stride {
		advance(m, tier, &s)
		combine(d, &s, &ks)
		mix16(&ks)
		xorWords(buf[o:o+stride], &ks)
	}
	if aligned == n {
		return nil
	}

	// Scalar tail over the residual bytes, continuing from lane 0 of the
	// evolved state, four keystream bytes per step.
	x, y, z := s.x[0], s.y[0], s.z[0]
	for o := aligned; o < n; o += 4 {
		x, y, z = m.StepU32(x, y, z)
		k := x
		if d > 1 {
			k ^= y
		}
		if d > 2 {
			k ^= z
		}
		k = Mix(k)
		end := o + 4
		if end > n {
			end = n
		}
		for j := o; j < end; j++ {
			buf[j] ^= byte(k)
			k >>= 8
		}
	}
	return nil
}
