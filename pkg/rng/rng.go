// Package rng provides the single, driver-owned pseudo-random source used
// throughout a benchmarking run, plus the sampling helpers built on top of
// it (uniform integer draws and per-bit Bernoulli flips).
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source wraps a seeded generator. It is owned by exactly one driver and is
// never accessed concurrently, matching the single-threaded resource model.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a uniform draw in [0,n).
func (s *Source) IntN(n int) int {
	return s.r.Intn(n)
}

// Bit returns a uniform random boolean.
func (s *Source) Bit() bool {
	return s.r.Intn(2) == 1
}

// Bernoulli reports true with probability p, using a gonum distuv.Bernoulli
// distribution parameterized on this source's underlying generator.
func (s *Source) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	d := distuv.Bernoulli{P: p, Src: s.r}
	return d.Rand() == 1
}

// UniformIntRange returns a uniform draw in [lo, hi].
func (s *Source) UniformIntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	d := distuv.Uniform{Min: float64(lo), Max: float64(hi) + 1, Src: s.r}
	v := int(d.Rand())
	if v > hi {
		v = hi
	}
	return v
}
