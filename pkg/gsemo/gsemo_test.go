package gsemo

import (
	"context"
	"testing"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

func TestRunProducesNondecreasingHypervolume(t *testing.T) {
	src := rng.New(42)
	inst := rmnk.Generate(src, 2, 10, 2, 0.0)
	ref := []float64{0, 0}

	arc, log := Run(context.Background(), inst, 50, ref, src)

	if len(log.Rows) == 0 {
		t.Fatalf("expected at least the seed row")
	}
	if log.Rows[0].Evaluation != 0 {
		t.Fatalf("expected first row at evaluation 0, got %d", log.Rows[0].Evaluation)
	}
	prev := 0.0
	for _, r := range log.Rows {
		if r.Hypervolume < prev-1e-12 {
			t.Fatalf("hypervolume decreased across anytime log: %v -> %v", prev, r.Hypervolume)
		}
		prev = r.Hypervolume
	}
	if arc.Len() == 0 {
		t.Fatalf("expected nonempty final archive")
	}
}

func TestRunRespectsBudget(t *testing.T) {
	src := rng.New(7)
	inst := rmnk.Generate(src, 1, 8, 1, 0.0)
	_, log := Run(context.Background(), inst, 20, []float64{0}, src)
	if last := log.Rows[len(log.Rows)-1].Evaluation; last > 20 {
		t.Fatalf("expected final logged evaluation <= budget, got %d", last)
	}
}
