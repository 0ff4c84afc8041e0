package operators

import (
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

// Mutation perturbs a bitstring in place.
type Mutation func(src *rng.Source, x bitstring.Bitstring)

// UniformMutation flips each bit independently with probability pm.
func UniformMutation(pm float64) Mutation {
	return func(src *rng.Source, x bitstring.Bitstring) {
		for i := 0; i < x.Len(); i++ {
			if src.Bernoulli(pm) {
				x.Flip(i)
			}
		}
	}
}
