package generator

import (
	"github.com/umitkrkmz/ChaoticEngine/chaos"
	"github.com/umitkrkmz/ChaoticEngine/simd"
)

// Option is an option setter for New.
type Option func(*Generator)

// DefaultEpsilon is the lane-staggering offset: lane k starts at
// x0 + k·ε so independent trajectories diverge immediately.
const DefaultEpsilon = 1e-10

// WithTier pins the execution tier instead of detecting it per call.
// Pinning is how callers get reproducible Sine trajectories, since the
// scalar and batch sine paths are not bit-equivalent.
func WithTier(t simd.Tier) Option {
	return func(g *Generator) {
		g.tier = t
	}
}

// WithEpsilon sets the lane-staggering offset.
func WithEpsilon(eps float64) Option {
	return func(g *Generator) {
		g.eps = eps
	}
}

// WithLorenzParams sets the Lorenz coefficients and Euler step.
func WithLorenzParams(p chaos.LorenzParams) Option {
	return func(g *Generator) {
		g.lorenz = p
	}
}

// WithChenParams sets the Chen coefficients and Euler step.
func WithChenParams(p chaos.ChenParams) Option {
	return func(g *Generator) {
		g.chen = p
	}
}

// WithLogisticR sets the logistic map growth rate.
func WithLogisticR(r float64) Option {
	return func(g *Generator) {
		g.r = r
	}
}

// WithTentMu sets the tent map slope.
func WithTentMu(mu float64) Option {
	return func(g *Generator) {
		g.mu = mu
	}
}

// WithSineR sets the sine map amplitude.
func WithSineR(r float64) Option {
	return func(g *Generator) {
		g.sineR = r
	}
}

// WithHenonAB sets the Henon map coefficients.
func WithHenonAB(a, b float64) Option {
	return func(g *Generator) {
		g.henonA = a
		g.henonB = b
	}
}
