package random

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zeu5/markov-dp/benchmarks/common"
	"github.com/zeu5/markov-dp/core"
)

func TestGenerateIsValid(t *testing.T) {
	g := DefaultGenerator()
	m, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if m.NumStates() != g.States {
		t.Fatalf("expected %d states, got %d", g.States, m.NumStates())
	}
	terminals := 0
	for _, s := range m.States() {
		if core.IsTerminal[int, int](m, s) {
			terminals++
			continue
		}
		for a := 0; a < g.Actions; a++ {
			if n := len(m.Outcomes(s, a)); n != g.Branching {
				t.Fatalf("expected %d outcomes for (%d, %d), got %d", g.Branching, s, a, n)
			}
		}
	}
	if terminals != g.Terminals {
		t.Fatalf("expected %d terminal states, got %d", g.Terminals, terminals)
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	g := &Generator{States: 5, Actions: 2, Branching: 2, MinReward: 0, MaxReward: 1, Concentration: 1, Seed: 7}
	first, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range first.States() {
		for a := 0; a < g.Actions; a++ {
			x, y := first.Outcomes(s, a), second.Outcomes(s, a)
			for i := range x {
				if x[i] != y[i] {
					t.Fatalf("expected identical outcomes for (%d, %d), got %v and %v", s, a, x, y)
				}
			}
		}
	}
}

func TestGeneratorCheck(t *testing.T) {
	g := DefaultGenerator()
	g.Branching = g.States + 1
	if _, err := g.Generate(); !errors.Is(err, ErrBadGenerator) {
		t.Fatalf("expected ErrBadGenerator, got %v", err)
	}
	g = DefaultGenerator()
	g.MinReward, g.MaxReward = 1, 1
	if err := g.Check(); !errors.Is(err, ErrBadGenerator) {
		t.Fatalf("expected ErrBadGenerator, got %v", err)
	}
}

func TestRunSolversAgree(t *testing.T) {
	flags := common.DefaultFlags()
	flags.SavePath = t.TempDir()
	flags.Chart = true
	g := &Generator{States: 12, Actions: 3, Branching: 3, Terminals: 1, MinReward: -1, MaxReward: 1, Concentration: 0.5, Seed: 42}

	solution, err := Run(context.Background(), flags, g, new(bytes.Buffer))
	if err != nil {
		t.Fatal(err)
	}
	if solution.Report.States != g.States {
		t.Fatalf("expected %d states in the report, got %d", g.States, solution.Report.States)
	}
	if solution.Report.PolicyIteration == nil || solution.Report.ValueIteration == nil {
		t.Fatal("expected both solvers to report")
	}
	if agreement := solution.Report.Agreement; agreement == nil || !agreement.Match {
		t.Fatalf("expected both solvers to reach the same values, got %+v", agreement)
	}
	if solution.Report.PolicyIteration.FinalDelta > flags.Tolerance {
		t.Fatalf("expected the final evaluator delta within tolerance, got %v", solution.Report.PolicyIteration.FinalDelta)
	}
}
