// Package pls implements Pareto Local Search: a bit-flip neighborhood
// search maintaining both an archive of all nondominated solutions seen
// and a frontier of those not yet explored.
package pls

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

// Acceptance selects which neighbors are accepted into the archive/frontier.
type Acceptance int

const (
	NonDominating Acceptance = iota
	Dominating
	Both
)

// Exploration selects how many accepting neighbors are explored per popped
// frontier member.
type Exploration int

const (
	BestImprovement Exploration = iota
	FirstImprovement
	ExploreBoth
)

// Run executes PLS under the given acceptance/exploration variants until
// the evaluation budget is spent or the frontier empties with no restart
// remaining.
func Run(ctx context.Context, inst *rmnk.Instance, maxeval int, ref []float64, src *rng.Source, acceptance Acceptance, exploration Exploration) (*archive.Archive, *anytime.Log) {
	logger := klog.FromContext(ctx).WithValues("driver", "pls")
	logger.Info("starting run", "maxeval", maxeval, "N", inst.N, "M", inst.M)

	arc := archive.New()
	frontier := archive.New()
	hv := hypervolume.New(ref)
	log := &anytime.Log{}

	x := randomBitstring(src, inst.N)
	y := inst.Evaluate(x)
	seed := solution.Solution{Decision: x, Objective: y}
	arc.InsertIfNondominated(seed)
	frontier.InsertIfNondominated(seed)
	hv.Insert(y)
	log.Rows = append(log.Rows, anytime.Row{Evaluation: 0, Hypervolume: hv.Value()})

	eval := 0
	switch exploration {
	case BestImprovement:
		runLoop(inst, &eval, maxeval, acceptance, false, arc, frontier, hv, log, src)
	case FirstImprovement:
		runLoop(inst, &eval, maxeval, acceptance, true, arc, frontier, hv, log, src)
	case ExploreBoth:
		runLoop(inst, &eval, maxeval, acceptance, true, arc, frontier, hv, log, src)
		if eval < maxeval {
			runLoop(inst, &eval, maxeval, acceptance, false, arc, frontier, hv, log, src)
		}
	}

	logger.Info("run complete", "archiveSize", arc.Len(), "hypervolume", hv.Value())
	return arc, log
}

// runLoop pops a uniformly random frontier member and scans its bit-flip
// neighbors in index order, applying the configured acceptance semantics.
// firstImprovement stops the per-neighbor scan at the first accept.
func runLoop(inst *rmnk.Instance, eval *int, maxeval int, acceptance Acceptance, firstImprovement bool, arc, frontier *archive.Archive, hv *hypervolume.Engine, log *anytime.Log, src *rng.Source) {
	for *eval < maxeval && frontier.Len() > 0 {
		o, ok := frontier.PopRandom(src)
		if !ok {
			return
		}

		switch acceptance {
		case NonDominating:
			for i := 0; i < inst.N; i++ {
				if *eval >= maxeval {
					return
				}
				child := evaluateNeighbor(inst, o.Decision, i, eval)
				if arc.InsertIfNondominated(child) {
					accept(child, frontier, hv, log, *eval)
					if firstImprovement {
						break
					}
				}
			}
		case Dominating:
			for i := 0; i < inst.N; i++ {
				if *eval >= maxeval {
					return
				}
				child := evaluateNeighbor(inst, o.Decision, i, eval)
				if solution.Compare(child.Objective, o.Objective) == solution.Dominates && arc.InsertIfNondominated(child) {
					accept(child, frontier, hv, log, *eval)
					if firstImprovement {
						break
					}
				}
			}
		case Both:
			var stash []solution.Solution
			dominatingAccepted := false
			for i := 0; i < inst.N; i++ {
				if *eval >= maxeval {
					break
				}
				child := evaluateNeighbor(inst, o.Decision, i, eval)
				accepted := false
				if solution.Compare(child.Objective, o.Objective) == solution.Dominates {
					accepted = arc.InsertIfNondominated(child)
				}
				if accepted {
					dominatingAccepted = true
					accept(child, frontier, hv, log, *eval)
					if firstImprovement {
						break
					}
				} else {
					stash = append(stash, child)
				}
			}
			if !dominatingAccepted {
				for _, child := range stash {
					if arc.InsertIfNondominated(child) {
						accept(child, frontier, hv, log, *eval)
						if firstImprovement {
							break
						}
					}
				}
			}
		}
	}
}

func evaluateNeighbor(inst *rmnk.Instance, base bitstring.Bitstring, bit int, eval *int) solution.Solution {
	n := base.Clone()
	n.Flip(bit)
	obj := inst.Evaluate(n)
	*eval++
	return solution.Solution{Decision: n, Objective: obj}
}

func accept(child solution.Solution, frontier *archive.Archive, hv *hypervolume.Engine, log *anytime.Log, eval int) {
	hv.Insert(child.Objective)
	frontier.InsertIfNondominated(child)
	log.Rows = append(log.Rows, anytime.Row{Evaluation: eval, Hypervolume: hv.Value()})
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
