package chaos

import "math"

// Scalar steps for the float maps, plus the parameter structs the
// continuous systems are integrated with (forward Euler).

// LorenzParams holds the Lorenz system coefficients and the Euler step.
type LorenzParams struct {
	Sigma, Rho, Beta, Dt float64
}

// DefaultLorenzParams returns the classical butterfly parameters.
func DefaultLorenzParams() LorenzParams {
	return LorenzParams{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.01}
}

// ChenParams holds the Chen system coefficients and the Euler step.
type ChenParams struct {
	A, B, C, Dt float64
}

// DefaultChenParams returns the standard chaotic regime.
func DefaultChenParams() ChenParams {
	return ChenParams{A: 35, B: 3, C: 28, Dt: 0.002}
}

// Default 1D/2D map coefficients.
const (
	DefaultLogisticR = 3.99
	DefaultTentMu    = 1.9999
	DefaultSineR     = 0.99
	DefaultHenonA    = 1.4
	DefaultHenonB    = 0.3
)

// LogisticMapStep advances the logistic map x' = r·x·(1−x).
func LogisticMapStep(x, r float64) float64 {
	return r * x * (1 - x)
}

// TentMapStep advances the tent map.
func TentMapStep(x, mu float64) float64 {
	if x < 0.5 {
		return mu * x
	}
	return mu * (1 - x)
}

// SineMapStep advances the sine map x' = r·sin(πx). This is the scalar
// path; the batch kernels substitute the Bhaskara I approximation and are
// not bit-equivalent with it.
func SineMapStep(x, r float64) float64 {
	return r * math.Sin(math.Pi*x)
}

// sineApprox is the Bhaskara I form of sin(πx) for x in [0,1].
func sineApprox(x float64) float64 {
	t := x * (1 - x)
	return (16 * t) / (5 - 4*t)
}

// HenonMapStep advances the Henon map. The y update reads the pre-update x.
func HenonMapStep(x, y, a, b float64) (float64, float64) {
	return 1 - a*x*x + y, b * x
}

// LorenzMapStep advances the Lorenz system by one Euler step.
func LorenzMapStep(x, y, z float64, p LorenzParams) (float64, float64, float64) {
	dx := p.Sigma * (y - x) * p.Dt
	dy := (x*(p.Rho-z) - y) * p.Dt
	dz := (x*y - p.Beta*z) * p.Dt
	return x + dx, y + dy, z + dz
}

// ChenMapStep advances the Chen system by one Euler step.
func ChenMapStep(x, y, z float64, p ChenParams) (float64, float64, float64) {
	dx := p.A * (y - x) * p.Dt
	dy := ((p.C-p.A)*x - x*z + p.C*y) * p.Dt
	dz := (x*y - p.B*z) * p.Dt
	return x + dx, y + dy, z + dz
}
