package cipher

import (
	"github.com/umitkrkmz/ChaoticEngine/chaos"
)

// sentinel replaces any zero lane so maps with a fixed point at zero can
// never trap a lane.
const sentinel = 0xDEADBEEF

const warmupRounds = 16

// le32cyclic reads 4 little-endian bytes from b starting at off, wrapping
// at the end of b.
func le32cyclic(b []byte, off int) uint32 {
	n := len(b)
	return uint32(b[off%n]) |
		uint32(b[(off+1)%n])<<8 |
		uint32(b[(off+2)%n])<<16 |
		uint32(b[(off+3)%n])<<24
}

// DeriveSeeds fills seeds with the initial lane states for key and iv.
// len(seeds) must be D·L for a map of dimensionality D; the x lanes come
// first, then y, then z. Keys shorter than 4 bytes are rejected; longer
// than 32 bytes are truncated.
//
// Lane i starts as the i-th little-endian key word (cycled) XOR the i-th
// IV word when the IV has at least 4 bytes; zero lanes become the
// sentinel. Sixteen warm-up rounds then diffuse key/IV bits: each round
// steps every lane's full map state, then runs a sequential in-place
// cross-lane pass s_i ^= s_{(i+1) mod n} >> 1 over the flattened vector.
// The sequential order matters: the last lane reads the already-updated
// lane 0, which is what breaks symmetry when all lanes start equal (an
// all-zero key/IV puts the sentinel in every lane).
func DeriveSeeds(m chaos.Map, key, iv []byte, seeds []uint32) error {
	if len(key) < 4 {
		return ErrInvalidKey
	}
	if len(key) > 32 {
		key = key[:32]
	}

	n := len(seeds)
	for i := 0; i < n; i++ {
		s := le32cyclic(key, 4*i)
		if len(iv) >= 4 {
			s ^= le32cyclic(iv, 4*i)
		}
		if s == 0 {
			s = sentinel
		}
		seeds[i] = s
	}

	d := m.Dim()
	l := n / d
	for r := 0; r < warmupRounds; r++ {
		for k := 0; k < l; k++ {
			var y, z uint32
			x := seeds[k]
			if d > 1 {
				y = seeds[l+k]
			}
			if d > 2 {
				z = seeds[2*l+k]
			}
			x, y, z = m.StepU32(x, y, z)
			seeds[k] = x
			if d > 1 {
				seeds[l+k] = y
			}
			if d > 2 {
				seeds[2*l+k] = z
			}
		}
		for i := 0; i < n; i++ {
			seeds[i] ^= seeds[(i+1)%n] >> 1
		}
	}

	// Warm-up may legitimately land a lane on zero; restore the sentinel
	// so the no-zero-lane invariant holds at the seam.
	for i := 0; i < n; i++ {
		if seeds[i] == 0 {
			seeds[i] = sentinel
		}
	}
	return nil
}
