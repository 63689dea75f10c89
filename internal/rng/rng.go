// Package rng builds the deterministic random sources used by the generators.
package rng

import "math/rand/v2"

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Seeds expands a single seed into the two PCG state words.
func Seeds(seed uint64) (uint64, uint64) {
	a := mix64(seed)
	return a, mix64(a ^ 0xc2b2ae3d27d4eb4f)
}

// StringSeeds hashes a textual seed (e.g. "poo") into two PCG state words.
// Equal strings always produce equal words.
func StringSeeds(s string) (uint64, uint64) {
	h1 := uint64(1779033703)
	h2 := uint64(3144134277)
	for i := 0; i < len(s); i++ {
		k := uint64(s[i])
		h1 = mix64(h1 ^ (k * 0x9e3779b97f4a7c15))
		h2 = mix64(h2 ^ (k * 0xbf58476d1ce4e5b9) ^ h1)
	}
	h1 = mix64(h1 ^ uint64(len(s)))
	return h1, mix64(h2 ^ h1)
}

// New returns a PCG-backed generator for a numeric seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(Seeds(seed)))
}

// FromString returns a PCG-backed generator for a textual seed.
func FromString(seed string) *rand.Rand {
	return rand.New(rand.NewPCG(StringSeeds(seed)))
}

// Uniform draws from [lo, hi).
func Uniform(src *rand.Rand, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
