package archive

import (
	"testing"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

func sol(tag int, obj ...float64) solution.Solution {
	b := bitstring.New(8)
	for i := 0; i < 8; i++ {
		if tag&(1<<uint(i)) != 0 {
			b.Set(i)
		}
	}
	return solution.Solution{Decision: b, Objective: obj}
}

func TestArchiveLiteralScenario(t *testing.T) {
	a := New()
	if !a.InsertIfNondominated(sol(1, 3, 1)) {
		t.Fatalf("expected (3,1) to be inserted")
	}
	if !a.InsertIfNondominated(sol(2, 2, 2)) {
		t.Fatalf("expected (2,2) to be inserted")
	}
	if !a.InsertIfNondominated(sol(3, 1, 3)) {
		t.Fatalf("expected (1,3) to be inserted")
	}
	if a.Len() != 3 {
		t.Fatalf("expected archive size 3, got %d", a.Len())
	}

	if a.InsertIfNondominated(sol(4, 2, 1)) {
		t.Fatalf("expected (2,1) to be rejected as dominated")
	}
	if a.Len() != 3 {
		t.Fatalf("expected archive size still 3, got %d", a.Len())
	}

	if !a.InsertIfNondominated(sol(5, 3, 3)) {
		t.Fatalf("expected (3,3) to be inserted")
	}
	if a.Len() != 1 {
		t.Fatalf("expected archive to collapse to size 1, got %d", a.Len())
	}
	if a.Members()[0].Objective[0] != 3 || a.Members()[0].Objective[1] != 3 {
		t.Fatalf("expected remaining member to be (3,3), got %v", a.Members()[0].Objective)
	}
}

func TestArchiveDecisionEqualSharedObjective(t *testing.T) {
	a := New()
	a.InsertIfNondominated(sol(1, 1, 1))
	if a.InsertIfNondominated(sol(1, 1, 1)) {
		t.Fatalf("expected identical decision+objective to be rejected")
	}
	if !a.InsertIfNondominated(sol(2, 1, 1)) {
		t.Fatalf("expected distinct decision sharing objective vector to be inserted")
	}
	if a.Len() != 2 {
		t.Fatalf("expected archive size 2 after distinct-decision tie, got %d", a.Len())
	}
}

func TestArchiveNondominanceInvariant(t *testing.T) {
	a := New()
	points := [][2]float64{{1, 5}, {5, 1}, {3, 3}, {2, 2}, {4, 4}, {0, 0}}
	for i, p := range points {
		a.InsertIfNondominated(sol(i+1, p[0], p[1]))
	}
	members := a.Members()
	for i := range members {
		for j := range members {
			if i == j {
				continue
			}
			d := solution.Compare(members[i].Objective, members[j].Objective)
			if d == solution.Dominates || d == solution.Dominated {
				t.Fatalf("archive contains a dominance relation between members: %v and %v", members[i].Objective, members[j].Objective)
			}
		}
	}
}
