package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/simd"
)

func TestLorenzAttractorStatistics(t *testing.T) {
	const n = 50000
	const warmup = 1000

	g, err := New(chaos.Lorenz, WithLorenzParams(chaos.LorenzParams{
		Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.01,
	}))
	require.NoError(t, err)

	xb := make([]float64, n)
	yb := make([]float64, n)
	zb := make([]float64, n)
	require.NoError(t, g.Generate3D(xb, yb, zb, 0.1, 0.1, 0.1))

	xmin, xmax := math.Inf(1), math.Inf(-1)
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for _, x := range xb[warmup:] {
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
	}
	for _, z := range zb[warmup:] {
		zmin = math.Min(zmin, z)
		zmax = math.Max(zmax, z)
	}

	// the butterfly spans roughly [-20,20] in x and [0,50] in z
	assert.Less(t, xmin, -10.0)
	assert.Greater(t, xmin, -30.0)
	assert.Greater(t, xmax, 10.0)
	assert.Less(t, xmax, 30.0)
	assert.Greater(t, zmin, -5.0)
	assert.Less(t, zmin, 20.0)
	assert.Greater(t, zmax, 35.0)
	assert.Less(t, zmax, 60.0)

	// Shannon entropy of the quantized x-series over 256 bins
	var bins [256]int
	span := xmax - xmin
	require.Greater(t, span, 0.0)
	for _, x := range xb[warmup:] {
		i := int((x - xmin) / span * 256)
		if i > 255 {
			i = 255
		}
		bins[i]++
	}
	total := float64(n - warmup)
	entropy := 0.0
	for _, c := range bins {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	assert.Greater(t, entropy, 5.0)
}

func TestInterleavedLaneOrder(t *testing.T) {
	// With the tier pinned to W256 (4 float lanes), entry j*4+k must be
	// lane k's value after j+1 scalar steps from its staggered seed.
	g, err := New(chaos.Logistic, WithTier(simd.W256))
	require.NoError(t, err)

	const n = 24
	buf := make([]float64, n)
	x0 := 0.3
	require.NoError(t, g.Generate1D(buf, x0))

	for k := 0; k < 4; k++ {
		x := x0 + float64(k)*DefaultEpsilon
		for j := 0; j*4+k < n; j++ {
			x = chaos.LogisticMapStep(x, chaos.DefaultLogisticR)
			require.Equal(t, x, buf[j*4+k], "lane %d step %d", k, j)
		}
	}
}

func TestScalarTailResumesFromLastWritten(t *testing.T) {
	// The tail continues from buf[i-1] (the last lane of the last vector
	// iteration), not from any single lane's trajectory.
	g, err := New(chaos.Logistic, WithTier(simd.W256))
	require.NoError(t, err)

	const n = 11 // 2 vector iterations of 4, then a 3-sample tail
	buf := make([]float64, n)
	require.NoError(t, g.Generate1D(buf, 0.3))

	x := buf[7]
	for i := 8; i < n; i++ {
		x = chaos.LogisticMapStep(x, chaos.DefaultLogisticR)
		require.Equal(t, x, buf[i], "tail index %d", i)
	}
}

func TestScalarTierMatchesPlainIteration(t *testing.T) {
	g, err := New(chaos.Tent, WithTier(simd.Scalar))
	require.NoError(t, err)
	buf := make([]float64, 100)
	require.NoError(t, g.Generate1D(buf, 0.37))

	x := 0.37
	for i := range buf {
		x = chaos.TentMapStep(x, chaos.DefaultTentMu)
		require.Equal(t, x, buf[i], "index %d", i)
	}
}

func TestDomainReduction(t *testing.T) {
	// Tent and Sine seeds reduce modulo 1.
	g, err := New(chaos.Tent, WithTier(simd.Scalar))
	require.NoError(t, err)
	a := make([]float64, 10)
	b := make([]float64, 10)
	require.NoError(t, g.Generate1D(a, 0.25))
	require.NoError(t, g.Generate1D(b, 3.25))
	assert.Equal(t, a, b)
}

func TestHenon2D(t *testing.T) {
	g, err := New(chaos.Henon, WithTier(simd.Scalar))
	require.NoError(t, err)
	xb := make([]float64, 200)
	yb := make([]float64, 200)
	require.NoError(t, g.Generate2D(xb, yb, 0.1, 0.1))

	x, y := 0.1, 0.1
	for i := range xb {
		x, y = chaos.HenonMapStep(x, y, chaos.DefaultHenonA, chaos.DefaultHenonB)
		require.Equal(t, x, xb[i])
		require.Equal(t, y, yb[i])
	}
}

func TestShapeMismatch(t *testing.T) {
	g, err := New(chaos.Henon)
	require.NoError(t, err)
	xb := make([]float64, 10)
	yb := make([]float64, 9)
	err = g.Generate2D(xb, yb, 0.1, 0.1)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, make([]float64, 10), xb, "buffer mutated on error")

	g3, err := New(chaos.Lorenz)
	require.NoError(t, err)
	err = g3.Generate3D(make([]float64, 5), make([]float64, 5), make([]float64, 4), 0.1, 0.1, 0.1)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDimensionErrors(t *testing.T) {
	g, err := New(chaos.Lorenz)
	require.NoError(t, err)
	require.ErrorIs(t, g.Generate1D(make([]float64, 4), 0.1), ErrDimension)

	g1, err := New(chaos.Logistic)
	require.NoError(t, err)
	require.ErrorIs(t, g1.Generate3D(make([]float64, 4), make([]float64, 4), make([]float64, 4), 0.1, 0.2, 0.3), ErrDimension)
}

func TestIntegerMapRejected(t *testing.T) {
	_, err := New(chaos.IntTent)
	require.ErrorIs(t, err, ErrIntegerMap)
}

func TestEmptyBuffersNoOp(t *testing.T) {
	g, err := New(chaos.Logistic)
	require.NoError(t, err)
	require.NoError(t, g.Generate1D(nil, 0.5))
}
