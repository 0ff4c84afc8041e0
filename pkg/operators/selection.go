package operators

import "github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"

// KWayTournament builds a mating pool of poolSize indices into a
// population of len(fitness) individuals; each slot is the best (highest
// fitness) of tournamentSize uniform draws with replacement.
func KWayTournament(src *rng.Source, fitness []float64, tournamentSize, poolSize int) []int {
	pool := make([]int, 0, poolSize)
	n := len(fitness)
	for i := 0; i < poolSize; i++ {
		best := src.IntN(n)
		for j := 0; j < tournamentSize-1; j++ {
			other := src.IntN(n)
			if fitness[other] > fitness[best] {
				best = other
			}
		}
		pool = append(pool, best)
	}
	return pool
}
