package chaos

import "math/bits"

// Scalar steps for the integer maps. All arithmetic is wrapping uint32;
// shifts are logical. The batch kernels in int_maps_wide.go apply exactly
// these functions lane by lane, which is what makes the wide paths
// bit-exact with the scalar path.

// TentStep advances the integer tent map.
func TentStep(x uint32) uint32 {
	var y uint32
	if x < 1<<31 {
		y = bits.RotateLeft32(x, 1)
	} else {
		y = bits.RotateLeft32(^x, 1)
	}
	return y + weylTent
}

// LogisticStep advances the integer logistic map.
func LogisticStep(x uint32) uint32 {
	p := uint64(x) * uint64(^x)
	return uint32(p>>30) + weylLogistic
}

// SineStep advances the integer sine map. The sine itself is evaluated
// through the Bhaskara I rational form on v = x/2^32, so scalar and batch
// paths share one formula and stay bit-exact.
func SineStep(x uint32) uint32 {
	const two32 = 4294967296.0
	v := float64(x) / two32
	t := v * (1 - v)
	s := 4 * (16 * t) / (5 - 4*t)
	return uint32(uint64(s*two32)) + weylSine
}

// HenonStep advances the integer Henon map.
func HenonStep(x, y uint32) (uint32, uint32) {
	p := uint64(x) * uint64(x)
	t := uint32(p) ^ uint32(p>>32)
	return y + weylHenon - t, x
}

// LorenzStep advances the integer Lorenz system.
func LorenzStep(x, y, z uint32) (uint32, uint32, uint32) {
	dx := (y - x) >> 2
	dy := (x ^ (y >> 3)) - z
	dz := (x + y) ^ (z << 1)
	return x + dx, y + dy, z + dz
}

// ChenStep advances the integer Chen system.
func ChenStep(x, y, z uint32) (uint32, uint32, uint32) {
	dx := (y - x) + ((y - x) << 1)
	dy := (x ^ (y << 2)) + (z >> 1)
	dz := (x + y) ^ (z + (z << 1))
	return x + dx, y + dy, z + dz
}

// StepU32 advances one lane of an integer map. Unused dimensions are
// passed and returned as zero.
func (m Map) StepU32(x, y, z uint32) (uint32, uint32, uint32) {
	switch m {
	case IntTent:
		return TentStep(x), y, z
	case IntLogistic:
		return LogisticStep(x), y, z
	case IntSine:
		return SineStep(x), y, z
	case IntHenon:
		nx, ny := HenonStep(x, y)
		return nx, ny, z
	case IntLorenz:
		return LorenzStep(x, y, z)
	case IntChen:
		return ChenStep(x, y, z)
	}
	return x, y, z
}
