// Package solution defines the Solution value object and the maximization
// dominance relation over objective vectors.
package solution

import "github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"

// Solution pairs a decision bitstring with its evaluated objective vector.
// The objective is derived from the decision via an Instance and is never
// mutated independently.
type Solution struct {
	Decision  bitstring.Bitstring
	Objective []float64
}

// Dominance classifies the pairwise relation between two objective vectors
// under maximization.
type Dominance int

const (
	Incomparable Dominance = iota
	Dominates
	Equal
	Dominated
)

// Compare returns the Dominance of a relative to b: a Dominates b, a Equal
// b, a Dominated by b, or Incomparable.
func Compare(a, b []float64) Dominance {
	aBetter, bBetter := false, false
	for i := range a {
		switch {
		case a[i] > b[i]:
			aBetter = true
		case a[i] < b[i]:
			bBetter = true
		}
	}
	switch {
	case !aBetter && !bBetter:
		return Equal
	case aBetter && !bBetter:
		return Dominates
	case bBetter && !aBetter:
		return Dominated
	default:
		return Incomparable
	}
}

// WeaklyDominates reports whether a >= b componentwise.
func WeaklyDominates(a, b []float64) bool {
	for i := range a {
		if a[i] < b[i] {
			return false
		}
	}
	return true
}

// DecisionEqual reports whether a and b share an identical decision vector.
func DecisionEqual(a, b Solution) bool {
	return bitstring.Equal(a.Decision, b.Decision)
}
