// Package operators implements the pluggable IBEA building blocks:
// indicators, crossover, mutation, and selection.
package operators

import (
	"math"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/hypervolume"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

// Indicator scores how far o1 falls short of o2; higher favors o2.
type Indicator func(o1, o2 []float64) float64

// Eps is the additive epsilon indicator. It is initialized with -Inf
// rather than a finite sentinel, per the resolved open question on this
// indicator's initial value.
func Eps(o1, o2 []float64) float64 {
	indicator := math.Inf(-1)
	for i := range o1 {
		d := o2[i] - o1[i]
		if d > indicator {
			indicator = d
		}
	}
	return indicator
}

// IHD returns the hypervolume-difference indicator for reference point
// ref: if o1 weakly dominates o2, the exact box-volume difference; else
// the hypervolume of {o1,o2} minus the box volume of o1 alone.
func IHD(ref []float64) Indicator {
	return func(o1, o2 []float64) float64 {
		if solution.WeaklyDominates(o1, o2) {
			return boxVolume(o2, ref) - boxVolume(o1, ref)
		}
		hvo := hypervolume.New(ref)
		hvo.Insert(o1)
		hvo.Insert(o2)
		return hvo.Value() - boxVolume(o1, ref)
	}
}

func boxVolume(p, r []float64) float64 {
	res := p[0] - r[0]
	for i := 1; i < len(p); i++ {
		res *= p[i] - r[i]
	}
	return res
}
