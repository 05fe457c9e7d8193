// Package simd models the execution tiers of the engine and probes the
// host CPU for the widest one available. A tier is sampled exactly once
// per Generate/Process call, so a single operation never mixes widths.
package simd

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Tier is an execution width.
type Tier int

const (
	// Scalar processes one lane at a time.
	Scalar Tier = iota
	// W256 processes 8 u32 lanes or 4 f64 lanes per step.
	W256
	// W512 processes 16 u32 lanes or 8 f64 lanes per step.
	W512
)

func (t Tier) String() string {
	switch t {
	case Scalar:
		return "scalar"
	case W256:
		return "w256"
	case W512:
		return "w512"
	}
	return "unknown"
}

// Lanes32 returns the number of uint32 lanes at this tier.
func (t Tier) Lanes32() int {
	switch t {
	case W512:
		return 16
	case W256:
		return 8
	}
	return 1
}

// Lanes64 returns the number of float64 lanes at this tier.
func (t Tier) Lanes64() int {
	switch t {
	case W512:
		return 8
	case W256:
		return 4
	}
	return 1
}

// Stride returns the keystream bytes produced per iteration at this tier.
func (t Tier) Stride() int {
	return 4 * t.Lanes32()
}

var (
	mu     sync.Mutex
	once   sync.Once
	probed Tier
	forced Tier = -1
)

func probe() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		probed = W512
	case cpu.X86.HasAVX2:
		probed = W256
	case cpu.ARM64.HasASIMD:
		probed = W256
	default:
		probed = Scalar
	}
}

// Detect returns the forced tier if one is set, otherwise the widest tier
// the CPU supports. The probe runs once per process.
func Detect() Tier {
	mu.Lock()
	defer mu.Unlock()
	if forced >= 0 {
		return forced
	}
	once.Do(probe)
	return probed
}

// Force pins Detect to t process-wide. Meant for tests and for callers
// that need reproducible float trajectories across machines.
func Force(t Tier) {
	mu.Lock()
	forced = t
	mu.Unlock()
}

// Reset undoes Force.
func Reset() {
	mu.Lock()
	forced = -1
	mu.Unlock()
}
