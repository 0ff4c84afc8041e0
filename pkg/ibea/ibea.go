// Package ibea implements the Indicator-Based Evolutionary Algorithm: a
// generational (µ+µ) search driven by a pluggable binary quality
// indicator, with optional adaptive scaling of the fitness formula.
package ibea

import (
	"context"
	"math"

	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/anytime"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/archive"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/hypervolume"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/operators"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

// Config bundles the operators and scale parameters of one IBEA run.
type Config struct {
	PopSize        int
	Generations    int
	K              float64
	Adaptive       bool
	Indicator      operators.Indicator
	Crossover      operators.Crossover
	Mutation       operators.Mutation
	TournamentSize int
	PoolSize       int
}

type individual struct {
	sol     solution.Solution
	fitness float64
}

// Run executes IBEA for up to cfg.Generations generations or until the
// evaluation budget is exhausted, whichever comes first.
func Run(ctx context.Context, inst *rmnk.Instance, maxeval int, ref []float64, src *rng.Source, cfg Config) (*archive.Archive, *anytime.Log) {
	logger := klog.FromContext(ctx).WithValues("driver", "ibea")
	logger.Info("starting run", "maxeval", maxeval, "popSize", cfg.PopSize, "generations", cfg.Generations, "adaptive", cfg.Adaptive)

	arc := archive.New()
	hv := hypervolume.New(ref)
	log := &anytime.Log{HasGeneration: true}

	eval := 0
	population := make([]individual, 0, cfg.PopSize)
	for len(population) < cfg.PopSize && eval < maxeval {
		x := randomBitstring(src, inst.N)
		obj := inst.Evaluate(x)
		eval++
		s := solution.Solution{Decision: x, Objective: obj}
		if arc.InsertIfNondominated(s) {
			hv.Insert(obj)
			log.Rows = append(log.Rows, anytime.Row{Evaluation: eval, Generation: 0, Hypervolume: hv.Value()})
		}
		population = append(population, individual{sol: s})
	}

	gen := 0
	for eval < maxeval && gen < cfg.Generations {
		c := 1.0
		if cfg.Adaptive {
			c = adaptiveFactor(population, cfg.Indicator)
		}
		assignFitness(population, cfg.K, c, cfg.Indicator)

		fitness := make([]float64, len(population))
		for i, p := range population {
			fitness[i] = p.fitness
		}
		poolSize := cfg.PoolSize
		if poolSize <= 0 {
			poolSize = cfg.PopSize
		}
		selected := operators.KWayTournament(src, fitness, cfg.TournamentSize, poolSize)

		matingPool := make([]individual, len(selected))
		for i, idx := range selected {
			matingPool[i] = individual{sol: solution.Solution{
				Decision:  population[idx].sol.Decision.Clone(),
				Objective: append([]float64{}, population[idx].sol.Objective...),
			}}
		}

		for i := 0; i+1 < len(matingPool); i += 2 {
			cfg.Crossover(src, matingPool[i].sol.Decision, matingPool[i+1].sol.Decision)
		}

		for i := range matingPool {
			cfg.Mutation(src, matingPool[i].sol.Decision)
			matingPool[i].sol.Objective = inst.Evaluate(matingPool[i].sol.Decision)
		}

		for i := range matingPool {
			if eval >= maxeval {
				break
			}
			eval++
			if arc.InsertIfNondominated(matingPool[i].sol) {
				hv.Insert(matingPool[i].sol.Objective)
				log.Rows = append(log.Rows, anytime.Row{Evaluation: eval, Generation: gen, Hypervolume: hv.Value()})
			}
			population = append(population, matingPool[i])
		}

		population = environmentalSelection(population, cfg.K, c, cfg.Indicator, cfg.PopSize)
		gen++
	}

	log.Rows = append(log.Rows, anytime.Row{Evaluation: eval, Generation: gen, Hypervolume: hv.Value()})
	logger.Info("run complete", "archiveSize", arc.Len(), "generations", gen, "hypervolume", hv.Value())
	return arc, log
}

// assignFitness computes fit(i) = -sum_{j!=i} exp(-I(j,i)/(k*c)) over the
// whole population, in place.
func assignFitness(pop []individual, k, c float64, ind operators.Indicator) {
	n := len(pop)
	for i := 0; i < n; i++ {
		pop[i].fitness = 0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			pop[i].fitness -= math.Exp(-ind(pop[j].sol.Objective, pop[i].sol.Objective) / (k * c))
		}
	}
}

// adaptiveFactor computes c = max_{i!=j} |I(scaled_i, scaled_j)| over
// objectives scaled by s[m] = (o[m]-ub[m]) / (ub[m]-lb[m]), where [lb,ub]
// is the global per-component min/max across the population.
func adaptiveFactor(pop []individual, ind operators.Indicator) float64 {
	if len(pop) == 0 {
		return 1
	}
	m := len(pop[0].sol.Objective)
	lb := make([]float64, m)
	ub := make([]float64, m)
	for d := 0; d < m; d++ {
		lb[d] = math.Inf(1)
		ub[d] = math.Inf(-1)
	}
	for _, p := range pop {
		for d := 0; d < m; d++ {
			if p.sol.Objective[d] < lb[d] {
				lb[d] = p.sol.Objective[d]
			}
			if p.sol.Objective[d] > ub[d] {
				ub[d] = p.sol.Objective[d]
			}
		}
	}

	scaled := make([][]float64, len(pop))
	for i, p := range pop {
		s := make([]float64, m)
		for d := 0; d < m; d++ {
			denom := ub[d] - lb[d]
			if denom == 0 {
				s[d] = 0
				continue
			}
			s[d] = (p.sol.Objective[d] - ub[d]) / denom
		}
		scaled[i] = s
	}

	c := 0.0
	for i := range scaled {
		for j := range scaled {
			if i == j {
				continue
			}
			v := ind(scaled[i], scaled[j])
			if v < 0 {
				v = -v
			}
			if v > c {
				c = v
			}
		}
	}
	if c == 0 {
		return 1
	}
	return c
}

// environmentalSelection repeatedly removes the minimum-fitness individual
// and corrects the remaining fitness values, until len(pop) <= popMax.
func environmentalSelection(pop []individual, k, c float64, ind operators.Indicator, popMax int) []individual {
	for len(pop) > popMax {
		minIdx := 0
		for i := 1; i < len(pop); i++ {
			if pop[i].fitness < pop[minIdx].fitness {
				minIdx = i
			}
		}
		removed := pop[minIdx]
		last := len(pop) - 1
		pop[minIdx] = pop[last]
		pop = pop[:last]
		for i := range pop {
			pop[i].fitness += math.Exp(-ind(removed.sol.Objective, pop[i].sol.Objective) / (k * c))
		}
	}
	return pop
}

func randomBitstring(src *rng.Source, n int) bitstring.Bitstring {
	b := bitstring.New(n)
	for i := 0; i < n; i++ {
		if src.Bit() {
			b.Set(i)
		}
	}
	return b
}
