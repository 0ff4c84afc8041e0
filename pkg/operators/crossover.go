package operators

import (
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

// Crossover recombines two bitstrings in place.
type Crossover func(src *rng.Source, a, b bitstring.Bitstring)

// UniformCrossover swaps each bit independently with probability 1/2,
// gated by a single Bernoulli(pc) draw for the whole pair. The original
// source ignores pc entirely; this implementation honors it, per the
// resolved open question on uniform crossover probability.
func UniformCrossover(pc float64) Crossover {
	return func(src *rng.Source, a, b bitstring.Bitstring) {
		if !src.Bernoulli(pc) {
			return
		}
		for i := 0; i < a.Len(); i++ {
			if src.Bit() {
				av, bv := a.Get(i), b.Get(i)
				a.SetTo(i, bv)
				b.SetTo(i, av)
			}
		}
	}
}

// NPointCrossover applies points sequential crossover cuts with
// probability pc: starting from p1=0, draw p2 uniformly in [p1, N-1],
// swap bits [p1,p2), then continue from p1<-p2, repeated `points` times.
func NPointCrossover(points int, pc float64) Crossover {
	return func(src *rng.Source, a, b bitstring.Bitstring) {
		if !src.Bernoulli(pc) {
			return
		}
		p1 := 0
		n := a.Len()
		for i := 0; i < points; i++ {
			p2 := src.UniformIntRange(p1, n-1)
			for j := p1; j < p2; j++ {
				av, bv := a.Get(j), b.Get(j)
				a.SetTo(j, bv)
				b.SetTo(j, av)
			}
			p1 = p2
		}
	}
}
