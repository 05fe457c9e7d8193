// Package generator fills caller-supplied buffers with trajectories of
// the float chaotic maps at vector throughput. L independent lanes are
// seeded with epsilon-staggered initial conditions and their outputs
// striped into the buffers in lane order; a scalar loop finishes the
// tail. The tail resumes from the last written value — the last lane of
// the final vector iteration — so a trajectory discontinuity at the tail
// boundary is an observable, and deliberate, property.
package generator

import (
	"errors"
	"math"

	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/simd"
)

var (
	// ErrShapeMismatch is returned when output buffers differ in length.
	ErrShapeMismatch = errors.New("generator: output buffers differ in length")
	// ErrDimension is returned when the call shape does not match the map.
	ErrDimension = errors.New("generator: map dimensionality does not match call")
	// ErrIntegerMap is returned when an integer map is given to New.
	ErrIntegerMap = errors.New("generator: integer maps cannot drive the scientific generator")
)

// Generator produces trajectories for one float map.
type Generator struct {
	m    chaos.Map
	tier simd.Tier // -1 means detect per call
	eps  float64

	lorenz chaos.LorenzParams
	chen   chaos.ChenParams
	r      float64
	mu     float64
	sineR  float64
	henonA float64
	henonB float64
}

// New creates a generator for a float map.
func New(m chaos.Map, opts ...Option) (*Generator, error) {
	if m.Integer() {
		return nil, ErrIntegerMap
	}
	g := &Generator{
		m:      m,
		tier:   -1,
		eps:    DefaultEpsilon,
		lorenz: chaos.DefaultLorenzParams(),
		chen:   chaos.DefaultChenParams(),
		r:      chaos.DefaultLogisticR,
		mu:     chaos.DefaultTentMu,
		sineR:  chaos.DefaultSineR,
		henonA: chaos.DefaultHenonA,
		henonB: chaos.DefaultHenonB,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

func (g *Generator) detect() simd.Tier {
	if g.tier >= 0 {
		return g.tier
	}
	return simd.Detect()
}

func mod1(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

func (g *Generator) seed(x0 float64, k int) float64 {
	x := x0 + float64(k)*g.eps
	if g.m.Domain01() {
		x = mod1(x)
	}
	return x
}

// Generate1D fills buf with a 1D trajectory from x0.
func (g *Generator) Generate1D(buf []float64, x0 float64) error {
	if g.m.Dim() != 1 {
		return ErrDimension
	}
	n := len(buf)
	if n == 0 {
		return nil
	}
	l := g.detect().Lanes64()

	var lx [8]float64
	for k := 0; k < l; k++ {
		lx[k] = g.seed(x0, k)
	}

	i := 0
	if l > 1 {
		for ; i+l <= n; i += l {
			g.stepWide1(&lx, l)
			copy(buf[i:i+l], lx[:l])
		}
	}

	// scalar tail, continuing from the last written value
	x := g.seed(x0, 0)
	if i > 0 {
		x = buf[i-1]
	}
	for ; i < n; i++ {
		x = g.scalar1(x)
		buf[i] = x
	}
	return nil
}

// Generate2D fills xbuf and ybuf with a 2D trajectory from (x0, y0).
func (g *Generator) Generate2D(xbuf, ybuf []float64, x0, y0 float64) error {
	if g.m.Dim() != 2 {
		return ErrDimension
	}
	if len(xbuf) != len(ybuf) {
		return ErrShapeMismatch
	}
	n := len(xbuf)
	if n == 0 {
		return nil
	}
	l := g.detect().Lanes64()

	var lx, ly [8]float64
	for k := 0; k < l; k++ {
		lx[k] = g.seed(x0, k)
		ly[k] = g.seed(y0, k)
	}

	i := 0
	if l > 1 {
		for ; i+l <= n; i += l {
			g.stepWide2(&lx, &ly, l)
			copy(xbuf[i:i+l], lx[:l])
			copy(ybuf[i:i+l], ly[:l])
		}
	}

	x, y := g.seed(x0, 0), g.seed(y0, 0)
	if i > 0 {
		x, y = xbuf[i-1], ybuf[i-1]
	}
	for ; i < n; i++ {
		x, y = g.scalar2(x, y)
		xbuf[i] = x
		ybuf[i] = y
	}
	return nil
}

// Generate3D fills xbuf, ybuf and zbuf with a 3D trajectory from
// (x0, y0, z0).
func (g *Generator) Generate3D(xbuf, ybuf, zbuf []float64, x0, y0, z0 float64) error {
	if g.m.Dim() != 3 {
		return ErrDimension
	}
	if len(xbuf) != len(ybuf) || len(ybuf) != len(zbuf) {
		return ErrShapeMismatch
	}
	n := len(xbuf)
	if n == 0 {
		return nil
	}
	l := g.detect().Lanes64()

	var lx, ly, lz [8]float64
	for k := 0; k < l; k++ {
		lx[k] = g.seed(x0, k)
		ly[k] = g.seed(y0, k)
		lz[k] = g.seed(z0, k)
	}

	i := 0
	if l > 1 {
		for ; i+l <= n; i += l {
			g.stepWide3(&lx, &ly, &lz, l)
			copy(xbuf[i:i+l], lx[:l])
			copy(ybuf[i:i+l], ly[:l])
			copy(zbuf[i:i+l], lz[:l])
		}
	}

	x, y, z := g.seed(x0, 0), g.seed(y0, 0), g.seed(z0, 0)
	if i > 0 {
		x, y, z = xbuf[i-1], ybuf[i-1], zbuf[i-1]
	}
	for ; i < n; i++ {
		x, y, z = g.scalar3(x, y, z)
		xbuf[i] = x
		ybuf[i] = y
		zbuf[i] = z
	}
	return nil
}

func (g *Generator) scalar1(x float64) float64 {
	switch g.m {
	case chaos.Logistic:
		return chaos.LogisticMapStep(x, g.r)
	case chaos.Tent:
		return chaos.TentMapStep(x, g.mu)
	default:
		return chaos.SineMapStep(x, g.sineR)
	}
}

func (g *Generator) scalar2(x, y float64) (float64, float64) {
	return chaos.HenonMapStep(x, y, g.henonA, g.henonB)
}

func (g *Generator) scalar3(x, y, z float64) (float64, float64, float64) {
	if g.m == chaos.Lorenz {
		return chaos.LorenzMapStep(x, y, z, g.lorenz)
	}
	return chaos.ChenMapStep(x, y, z, g.chen)
}

func (g *Generator) stepWide1(v *[8]float64, l int) {
	if l == 4 {
		h := (*[4]float64)(v[0:4])
		switch g.m {
		case chaos.Logistic:
			chaos.LogisticMapStep4(h, g.r)
		case chaos.Tent:
			chaos.TentMapStep4(h, g.mu)
		default:
			chaos.SineMapStep4(h, g.sineR)
		}
		return
	}
	switch g.m {
	case chaos.Logistic:
		chaos.LogisticMapStep8(v, g.r)
	case chaos.Tent:
		chaos.TentMapStep8(v, g.mu)
	default:
		chaos.SineMapStep8(v, g.sineR)
	}
}

func (g *Generator) stepWide2(x, y *[8]float64, l int) {
	if l == 4 {
		chaos.HenonMapStep4((*[4]float64)(x[0:4]), (*[4]float64)(y[0:4]), g.henonA, g.henonB)
		return
	}
	chaos.HenonMapStep8(x, y, g.henonA, g.henonB)
}

func (g *Generator) stepWide3(x, y, z *[8]float64, l int) {
	if l == 4 {
		x4 := (*[4]float64)(x[0:4])
		y4 := (*[4]float64)(y[0:4])
		z4 := (*[4]float64)(z[0:4])
		if g.m == chaos.Lorenz {
			chaos.LorenzMapStep4(x4, y4, z4, g.lorenz)
		} else {
			chaos.ChenMapStep4(x4, y4, z4, g.chen)
		}
		return
	}
	if g.m == chaos.Lorenz {
		chaos.LorenzMapStep8(x, y, z, g.lorenz)
	} else {
		chaos.ChenMapStep8(x, y, z, g.chen)
	}
}
