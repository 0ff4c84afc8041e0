package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/anytime"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/bitstring"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/solution"
)

func TestAnytimeRendersFile(t *testing.T) {
	log := &anytime.Log{Rows: []anytime.Row{
		{Evaluation: 0, Hypervolume: 0},
		{Evaluation: 1, Hypervolume: 2.5},
		{Evaluation: 2, Hypervolume: 4},
	}}
	path := filepath.Join(t.TempDir(), "anytime.html")
	if err := Anytime(log, "gsemo", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected rendered file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected nonempty rendered file")
	}
}

func TestAnytimeRejectsEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anytime.html")
	if err := Anytime(&anytime.Log{}, "gsemo", path); err == nil {
		t.Fatalf("expected an error for an empty anytime log")
	}
}

func TestParetoFrontRendersFile(t *testing.T) {
	members := []solution.Solution{
		{Decision: bitstring.New(2), Objective: []float64{3, 1}},
		{Decision: bitstring.New(2), Objective: []float64{1, 3}},
	}
	path := filepath.Join(t.TempDir(), "front.html")
	if err := ParetoFront(members, "pls", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected rendered file to exist: %v", err)
	}
}

func TestParetoFrontRejectsNonBiobjective(t *testing.T) {
	members := []solution.Solution{
		{Decision: bitstring.New(2), Objective: []float64{3, 1, 2}},
	}
	path := filepath.Join(t.TempDir(), "front.html")
	if err := ParetoFront(members, "pls", path); err == nil {
		t.Fatalf("expected an error for M=3 objectives")
	}
}
