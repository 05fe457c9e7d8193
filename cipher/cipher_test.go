package cipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/simd"
)

var intMaps = []chaos.Map{
	chaos.IntTent, chaos.IntLogistic, chaos.IntSine,
	chaos.IntHenon, chaos.IntLorenz, chaos.IntChen,
}

func TestRoundtripTentZeroKey(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 16)
	plain := []byte("Hello Chaos! Secure Message.")
	require.Len(t, plain, 28)

	buf := append([]byte(nil), plain...)
	require.NoError(t, Process(chaos.IntTent, buf, key, iv))
	assert.NotEqual(t, plain, buf, "ciphertext equals plaintext")
	require.NoError(t, Process(chaos.IntTent, buf, key, iv))
	assert.Equal(t, plain, buf)
}

func TestInvolutionAllMapsAllLengths(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	iv := []byte("fedcba9876543210")
	for _, m := range intMaps {
		for _, n := range []int{1, 3, 4, 7, 63, 64, 65, 128, 1000, 4096, 4099} {
			plain := make([]byte, n)
			for i := range plain {
				plain[i] = byte(i * 31)
			}
			buf := append([]byte(nil), plain...)
			require.NoError(t, Process(m, buf, key, iv))
			if n > 8 {
				assert.NotEqual(t, plain, buf, "%s n=%d: keystream is zero", m, n)
			}
			require.NoError(t, Process(m, buf, key, iv))
			require.Equal(t, plain, buf, "%s n=%d", m, n)
		}
	}
}

func TestTierInvariance(t *testing.T) {
	defer simd.Reset()
	key := []byte("a tier-invariance test key......")
	iv := []byte("0123456789abcdef")

	for _, m := range intMaps {
		var want []byte
		for _, tier := range []simd.Tier{simd.Scalar, simd.W256, simd.W512} {
			simd.Force(tier)
			buf := make([]byte, 999)
			require.NoError(t, Process(m, buf, key, iv))
			if want == nil {
				want = append([]byte(nil), buf...)
				continue
			}
			require.True(t, bytes.Equal(want, buf), "%s: keystream differs at tier %v", m, tier)
		}
	}
}

func TestEmptyBuffer(t *testing.T) {
	require.NoError(t, Process(chaos.IntTent, nil, make([]byte, 32), nil))
	// length check still applies
	require.ErrorIs(t, Process(chaos.IntTent, nil, []byte{1, 2}, nil), ErrInvalidKey)
}

func TestExactStrideNoTail(t *testing.T) {
	// 64 bytes is exactly one vector iteration; the tail must not run.
	// Verified indirectly: the first 64 bytes of a 65-byte buffer equal
	// the 64-byte buffer's output.
	key := []byte("exact-stride-key")
	iv := []byte("abcdefgh01234567")
	a := make([]byte, 64)
	b := make([]byte, 65)
	require.NoError(t, Process(chaos.IntLogistic, a, key, iv))
	require.NoError(t, Process(chaos.IntLogistic, b, key, iv))
	assert.Equal(t, a, b[:64])
}

func TestShortBufferScalarOnly(t *testing.T) {
	// shorter than one stride: handled entirely by the scalar tail
	key := []byte("shrt")
	buf := make([]byte, 17)
	require.NoError(t, Process(chaos.IntHenon, buf, key, nil))
	assert.NotEqual(t, make([]byte, 17), buf)
	require.NoError(t, Process(chaos.IntHenon, buf, key, nil))
	assert.Equal(t, make([]byte, 17), buf)
}

func TestInvalidKey(t *testing.T) {
	buf := make([]byte, 8)
	require.ErrorIs(t, Process(chaos.IntTent, buf, []byte("abc"), nil), ErrInvalidKey)
	assert.Equal(t, make([]byte, 8), buf, "buffer mutated on error")
	require.ErrorIs(t, Process(chaos.IntTent, buf, nil, nil), ErrInvalidKey)
}

func TestFloatMapRejected(t *testing.T) {
	require.ErrorIs(t, Process(chaos.Lorenz, make([]byte, 8), make([]byte, 32), nil), ErrFloatMap)
}

func TestKeyTruncatedAt32(t *testing.T) {
	key := make([]byte, 48)
	for i := range key {
		key[i] = byte(i + 1)
	}
	a := make([]byte, 100)
	b := make([]byte, 100)
	require.NoError(t, Process(chaos.IntTent, a, key, nil))
	require.NoError(t, Process(chaos.IntTent, b, key[:32], nil))
	assert.Equal(t, a, b)
}

func TestDeriveSeedsNoZeroLanes(t *testing.T) {
	for _, m := range intMaps {
		seeds := make([]uint32, m.Dim()*Lanes)
		require.NoError(t, DeriveSeeds(m, make([]byte, 32), make([]byte, 16), seeds))
		for i, s := range seeds {
			require.NotZero(t, s, "%s: lane %d is zero", m, i)
		}
	}
}

func TestDeriveSeedsBreaksSymmetry(t *testing.T) {
	// An all-zero key/IV starts every lane at the sentinel; warm-up must
	// still decorrelate the lanes.
	seeds := make([]uint32, Lanes)
	require.NoError(t, DeriveSeeds(chaos.IntTent, make([]byte, 32), make([]byte, 16), seeds))
	distinct := map[uint32]bool{}
	for _, s := range seeds {
		distinct[s] = true
	}
	assert.Greater(t, len(distinct), 1, "warm-up left all lanes identical")
}

func TestDeriveSeedsDeterministic(t *testing.T) {
	key := []byte("determinism key determinism key!")
	iv := []byte("iv for the seeds")
	a := make([]uint32, 3*Lanes)
	b := make([]uint32, 3*Lanes)
	require.NoError(t, DeriveSeeds(chaos.IntLorenz, key, iv, a))
	require.NoError(t, DeriveSeeds(chaos.IntLorenz, key, iv, b))
	assert.Equal(t, a, b)
}

func TestMixAvalanche(t *testing.T) {
	// flipping one input bit should flip many output bits
	a := Mix(0x00000001)
	b := Mix(0x00000000)
	diff := a ^ b
	pop := 0
	for diff != 0 {
		pop += int(diff & 1)
		diff >>= 1
	}
	assert.Greater(t, pop, 8)
}

func TestProcessZeroAlloc(t *testing.T) {
	key := []byte("zero-alloc key bytes 0123456789!")
	iv := []byte("zero-alloc iv 16")
	buf := make([]byte, 1<<20)
	allocs := testing.AllocsPerRun(3, func() {
		if err := Process(chaos.IntChen, buf, key, iv); err != nil {
			t.Fatal(err)
		}
	})
	assert.Zero(t, allocs)
}
