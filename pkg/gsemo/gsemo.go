// Package gsemo implements the (bit-flip) Global Simple Evolutionary
// Multi-objective Optimizer, a single-population EA operating directly on
// the nondominated archive.
package gsemo

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/anytime"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/archive"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/hypervolume"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

// Run executes GSEMO for exactly maxeval child evaluations, returning the
// final archive and the resulting anytime log.
func Run(ctx context.Context, inst *rmnk.Instance, maxeval int, ref []float64, src *rng.Source) (*archive.Archive, *anytime.Log) {
	logger := klog.FromContext(ctx).WithValues("driver", "gsemo")
	logger.Info("starting run", "maxeval", maxeval, "N", inst.N, "M", inst.M)

	arc := archive.New()
	hv := hypervolume.New(ref)
	log := &anytime.Log{}

	x := randomBitstring(src, inst.N)
	y := inst.Evaluate(x)
	arc.InsertIfNondominated(solution.Solution{Decision: x, Objective: y})
	hv.Insert(y)
	log.Rows = append(log.Rows, anytime.Row{Evaluation: 0, Hypervolume: hv.Value()})

	pFlip := 1.0 / float64(inst.N)
	for eval := 1; eval <= maxeval; eval++ {
		members := arc.Members()
		parent := members[src.IntN(len(members))]
		child := mutate(src, parent.Decision, pFlip)
		obj := inst.Evaluate(child)
		if arc.InsertIfNondominated(solution.Solution{Decision: child, Objective: obj}) {
			hv.Insert(obj)
			log.Rows = append(log.Rows, anytime.Row{Evaluation: eval, Hypervolume: hv.Value()})
		}
	}

	logger.Info("run complete", "archiveSize", arc.Len(), "hypervolume", hv.Value())
	return arc, log
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

// mutate flips each bit of x independently with probability p, returning a
// fresh bitstring.
func mutate(src *rng.Source, x bitstring.Bitstring, p float64) bitstring.Bitstring {
	child := x.Clone()
	for i := 0; i < child.Len(); i++ {
		if src.Bernoulli(p) {
			child.Flip(i)
		}
	}
	return child
}
