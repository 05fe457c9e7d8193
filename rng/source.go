package rng

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a Rand to math/rand, so the chaotic keystream can feed
// rand.New for shuffles, permutations and distributions.
type Source struct {
	r *Rand
}

// NewSource wraps r. Seed is not supported; build a fresh Rand with
// NewSeeded instead.
func NewSource(r *Rand) *Source {
	return &Source{r: r}
}

// Seed implements rand.Source. Reseeding a keystream-backed source is a
// no-op; the sequence is fixed by the Rand's key and IV.
func (s *Source) Seed(seed int64) {}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
