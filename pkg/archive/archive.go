// Package archive maintains a set of mutually nondominated solutions with
// no two members sharing an identical decision vector.
package archive

import (
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

// Archive is a collection of solutions, mutually nondominated in objective
// space, deduplicated by decision vector.
type Archive struct {
	members []solution.Solution
}

// New returns an empty Archive.
func New() *Archive {
	return &Archive{}
}

// Members returns the current archive contents. Order is unspecified and
// may change across calls.
func (a *Archive) Members() []solution.Solution {
	return a.members
}

// Len returns the number of members.
func (a *Archive) Len() int {
	return len(a.members)
}

// InsertIfNondominated attempts to insert s, updating the archive in
// place. Returns true iff s was inserted.
//
// Walks the archive comparing s against each member's dominance relation:
// an equal point is rejected unless it carries a distinct decision vector
// (in which case the scan continues to look for an exact decision match
// before accepting); a dominating point removes the dominated member via
// swap-with-last without advancing the scan index; a dominated point
// rejects s outright; incomparable points are skipped.
func (a *Archive) InsertIfNondominated(s solution.Solution) bool {
	i := 0
	for i < len(a.members) {
		d := solution.Compare(s.Objective, a.members[i].Objective)
		switch d {
		case solution.Equal:
			if solution.DecisionEqual(s, a.members[i]) {
				return false
			}
			if hasDecisionEqualMember(a.members, s) {
				return false
			}
			// distinct decision vectors sharing an objective vector: insert
			// without comparing against the remaining members.
			a.members = append(a.members, s)
			return true
		case solution.Dominates:
			last := len(a.members) - 1
			a.members[i] = a.members[last]
			a.members = a.members[:last]
			// do not advance i: the swapped-in member still needs checking
		case solution.Dominated:
			return false
		default: // Incomparable
			i++
		}
	}
	a.members = append(a.members, s)
	return true
}

// PopRandom removes and returns a uniformly random member via
// swap-with-last, used by PLS to draw from its unexplored frontier. The
// second return value is false iff the archive is empty.
func (a *Archive) PopRandom(src *rng.Source) (solution.Solution, bool) {
	if len(a.members) == 0 {
		return solution.Solution{}, false
	}
	idx := src.IntN(len(a.members))
	s := a.members[idx]
	last := len(a.members) - 1
	a.members[idx] = a.members[last]
	a.members = a.members[:last]
	return s, true
}

func hasDecisionEqualMember(members []solution.Solution, s solution.Solution) bool {
	for _, m := range members {
		if solution.DecisionEqual(s, m) {
			return true
		}
	}
	return false
}
