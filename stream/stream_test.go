package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/cipher"
)

// memFile is an in-memory io.ReadWriteSeeker backing the stream tests.
type memFile struct {
	data []byte
	off  int64
}

func (f *memFile) Read(p []byte) (int, error) {
	if f.off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += int64(n)
	return n, nil
}

func (f *memFile) Write(p []byte) (int, error) {
	end := f.off + int64(len(p))
	if end > int64(len(f.data)) {
		grown := make([]byte, end)
		copy(grown, f.data)
		f.data = grown
	}
	n := copy(f.data[f.off:end], p)
	f.off += int64(n)
	return n, nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.off
	case io.SeekEnd:
		base = int64(len(f.data))
	default:
		return 0, errors.New("bad whence")
	}
	pos := base + offset
	if pos < 0 {
		return 0, errors.New("negative position")
	}
	f.off = pos
	return pos, nil
}

var (
	testKey = func() []byte {
		k := make([]byte, 32)
		for i := range k {
			k[i] = 0x11
		}
		return k
	}()
	testIV = func() []byte {
		iv := make([]byte, 16)
		for i := range iv {
			iv[i] = 0x22
		}
		return iv
	}()
)

func TestRandomAccessMatchesSequential(t *testing.T) {
	// Stream A: write 10000 zero bytes from position 0.
	fa := &memFile{}
	a, err := New(fa, chaos.IntLorenz, testKey, testIV)
	require.NoError(t, err)
	zeros := make([]byte, 10000)
	n, err := a.Write(zeros)
	require.NoError(t, err)
	require.Equal(t, 10000, n)

	// Stream B over a zero-filled base with the same key/iv: seek to
	// 5000 and read 1000 bytes. The result must equal bytes [5000,6000)
	// of A's output.
	fb := &memFile{data: make([]byte, 10000)}
	b, err := New(fb, chaos.IntLorenz, testKey, testIV)
	require.NoError(t, err)
	pos, err := b.Seek(5000, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 5000, pos)
	got := make([]byte, 1000)
	_, err = io.ReadFull(b, got)
	require.NoError(t, err)
	assert.Equal(t, fa.data[5000:6000], got)

	// And a stream over A's ciphertext decrypts back to zeros there.
	fc := &memFile{data: append([]byte(nil), fa.data...)}
	c, err := New(fc, chaos.IntLorenz, testKey, testIV)
	require.NoError(t, err)
	_, err = c.Seek(5000, io.SeekStart)
	require.NoError(t, err)
	dec := make([]byte, 1000)
	_, err = io.ReadFull(c, dec)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 1000), dec, "random-access decrypt of zero plaintext")

	// And the ciphertext itself must match the keystream definition.
	ks, err := NewKeystream(chaos.IntLorenz, testKey, testIV)
	require.NoError(t, err)
	want := make([]byte, 1000)
	ks.Apply(want, 5000)
	assert.Equal(t, want, fa.data[5000:6000])
}

func TestPositionIndependence(t *testing.T) {
	// Decrypting byte p needs only (key, iv, p), not stream history.
	f := &memFile{}
	s, err := New(f, chaos.IntTent, testKey, testIV)
	require.NoError(t, err)
	plain := make([]byte, 9000)
	for i := range plain {
		plain[i] = byte(i % 251)
	}
	_, err = s.Write(plain)
	require.NoError(t, err)

	for _, p := range []int64{0, 1, 4095, 4096, 4097, 8191, 8999} {
		f2 := &memFile{data: append([]byte(nil), f.data...)}
		s2, err := New(f2, chaos.IntTent, testKey, testIV)
		require.NoError(t, err)
		_, err = s2.Seek(p, io.SeekStart)
		require.NoError(t, err)
		one := make([]byte, 1)
		_, err = io.ReadFull(s2, one)
		require.NoError(t, err)
		assert.Equal(t, plain[p], one[0], "position %d", p)
	}
}

func TestWriteAdditivity(t *testing.T) {
	// Two contiguous writes produce the same bytes as one write.
	payload := make([]byte, 6000)
	for i := range payload {
		payload[i] = byte(i*7 + 3)
	}

	fa := &memFile{}
	a, err := New(fa, chaos.IntChen, testKey, testIV)
	require.NoError(t, err)
	_, err = a.Write(payload)
	require.NoError(t, err)

	for _, split := range []int{1, 63, 64, 2500, 4096, 5999} {
		fb := &memFile{}
		b, err := New(fb, chaos.IntChen, testKey, testIV)
		require.NoError(t, err)
		_, err = b.Write(payload[:split])
		require.NoError(t, err)
		_, err = b.Write(payload[split:])
		require.NoError(t, err)
		require.Equal(t, fa.data, fb.data, "split at %d", split)
	}
}

func TestBlockBoundaryCrossing(t *testing.T) {
	// A write spanning blocks b and b+1 equals two writes split at the
	// boundary.
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = byte(i)
	}
	start := int64(BlockSize - 100)

	fa := &memFile{}
	a, err := New(fa, chaos.IntHenon, testKey, testIV)
	require.NoError(t, err)
	_, err = a.Seek(start, io.SeekStart)
	require.NoError(t, err)
	_, err = a.Write(payload)
	require.NoError(t, err)

	fb := &memFile{}
	b, err := New(fb, chaos.IntHenon, testKey, testIV)
	require.NoError(t, err)
	_, err = b.Seek(start, io.SeekStart)
	require.NoError(t, err)
	_, err = b.Write(payload[:100])
	require.NoError(t, err)
	_, err = b.Write(payload[100:])
	require.NoError(t, err)

	assert.Equal(t, fa.data, fb.data)
}

func TestRoundtripThroughStream(t *testing.T) {
	f := &memFile{}
	w, err := New(f, chaos.IntLogistic, testKey, testIV)
	require.NoError(t, err)
	msg := []byte("seekable chaotic counter mode")
	_, err = w.Write(msg)
	require.NoError(t, err)
	assert.NotEqual(t, msg, f.data[:len(msg)])

	f.Seek(0, io.SeekStart)
	r, err := New(f, chaos.IntLogistic, testKey, testIV)
	require.NoError(t, err)
	got := make([]byte, len(msg))
	_, err = io.ReadFull(r, got)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestDerivedBlockIVMatchesDefinition(t *testing.T) {
	// Block b's keystream is Process over zeros with LE64(b) XORed into
	// the first 8 IV bytes. Spot-check block 3.
	ks, err := NewKeystream(chaos.IntTent, testKey, testIV)
	require.NoError(t, err)
	got := make([]byte, BlockSize)
	ks.Apply(got, 3*BlockSize)

	iv := append([]byte(nil), testIV...)
	iv[0] ^= 3
	want := make([]byte, BlockSize)
	require.NoError(t, cipher.Process(chaos.IntTent, want, testKey, iv))
	assert.Equal(t, want, got)
}

func TestNewErrors(t *testing.T) {
	_, err := New(&memFile{}, chaos.IntTent, []byte("ab"), nil)
	require.ErrorIs(t, err, cipher.ErrInvalidKey)
	_, err = New(&memFile{}, chaos.Lorenz, testKey, testIV)
	require.ErrorIs(t, err, cipher.ErrFloatMap)
}
