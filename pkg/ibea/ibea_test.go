package ibea

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/operators"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

func defaultConfig(popSize, generations int, adaptive bool) Config {
	return Config{
		PopSize:        popSize,
		Generations:    generations,
		K:              0.05,
		Adaptive:       adaptive,
		Indicator:      operators.Eps,
		Crossover:      operators.UniformCrossover(0.9),
		Mutation:       operators.UniformMutation(0.1),
		TournamentSize: 2,
		PoolSize:       popSize,
	}
}

func TestRunTerminatesWithinBudgetNonAdaptive(t *testing.T) {
	src := rng.New(17)
	inst := rmnk.Generate(src, 2, 10, 2, 0.0)
	cfg := defaultConfig(8, 50, false)
	arc, log := Run(context.Background(), inst, 60, []float64{0, 0}, src, cfg)
	if arc.Len() == 0 {
		t.Fatalf("expected nonempty archive")
	}
	if len(log.Rows) == 0 {
		t.Fatalf("expected at least one anytime row")
	}
	last := log.Rows[len(log.Rows)-1]
	if last.Evaluation > 60 {
		t.Fatalf("evaluation budget exceeded: got %d, want <= 60", last.Evaluation)
	}
}

func TestRunTerminatesWithinBudgetAdaptive(t *testing.T) {
	src := rng.New(19)
	inst := rmnk.Generate(src, 2, 10, 2, 0.0)
	cfg := defaultConfig(8, 50, true)
	arc, log := Run(context.Background(), inst, 60, []float64{0, 0}, src, cfg)
	if arc.Len() == 0 {
		t.Fatalf("expected nonempty archive")
	}
	last := log.Rows[len(log.Rows)-1]
	if last.Evaluation > 60 {
		t.Fatalf("evaluation budget exceeded: got %d, want <= 60", last.Evaluation)
	}
}

func TestAnytimeHypervolumeNeverDecreases(t *testing.T) {
	src := rng.New(23)
	inst := rmnk.Generate(src, 2, 12, 2, 0.0)
	cfg := defaultConfig(10, 30, false)
	_, log := Run(context.Background(), inst, 80, []float64{0, 0}, src, cfg)
	prev := 0.0
	for _, r := range log.Rows {
		if r.Hypervolume < prev-1e-12 {
			t.Fatalf("hypervolume decreased across anytime log: %v after %v", r.Hypervolume, prev)
		}
		prev = r.Hypervolume
	}
}

func literalSolution(obj ...float64) solution.Solution {
	return solution.Solution{Objective: append([]float64{}, obj...)}
}

// TestAssignFitnessUsesPreGenerationPopulation pins the resolved open
// question on adaptive IBEA's fitness ordering: fitness is a pure function
// of the population slice passed in, independent of anything a caller
// might merge into it afterward.
func TestAssignFitnessUsesPreGenerationPopulation(t *testing.T) {
	pop := []individual{
		{sol: literalSolution(0, 0)},
		{sol: literalSolution(3, 1)},
		{sol: literalSolution(1, 3)},
	}
	k, c := 1.0, 1.0
	assignFitness(pop, k, c, operators.Eps)

	want := make([]float64, len(pop))
	for i := range pop {
		f := 0.0
		for j := range pop {
			if i == j {
				continue
			}
			f -= math.Exp(-operators.Eps(pop[j].sol.Objective, pop[i].sol.Objective) / (k * c))
		}
		want[i] = f
	}
	got := make([]float64, len(pop))
	for i, p := range pop {
		got[i] = p.fitness
	}
	if diff := cmp.Diff(want, got, approxFloat()); diff != "" {
		t.Fatalf("fitness mismatch (-want +got):\n%s", diff)
	}

	// Merging a freshly-mutated child into the slice afterward must not
	// retroactively change the fitness values already assigned above.
	extended := append(pop, individual{sol: literalSolution(2, 2)})
	for i := range pop {
		if extended[i].fitness != want[i] {
			t.Fatalf("fitness of pre-generation member %d changed after merge", i)
		}
	}
}

func TestEnvironmentalSelectionShrinksToPopMax(t *testing.T) {
	pop := []individual{
		{sol: literalSolution(0, 0), fitness: -0.1},
		{sol: literalSolution(3, 1), fitness: -0.9},
		{sol: literalSolution(1, 3), fitness: -0.2},
		{sol: literalSolution(2, 2), fitness: -0.05},
	}
	out := environmentalSelection(pop, 1.0, 1.0, operators.Eps, 2)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
}

func TestAdaptiveFactorIsNonNegative(t *testing.T) {
	pop := []individual{
		{sol: literalSolution(0, 0)},
		{sol: literalSolution(3, 1)},
		{sol: literalSolution(1, 3)},
	}
	c := adaptiveFactor(pop, operators.Eps)
	if c < 0 {
		t.Fatalf("adaptiveFactor = %v, want >= 0", c)
	}
}

func approxFloat() cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < 1e-9
	})
}
