package gridworld

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zeu5/markov-dp/benchmarks/common"
)

func TestShiftStaysOnBoard(t *testing.T) {
	w := DefaultWindyGridWorld()
	corner := Cell{Row: 0, Col: 0}
	if got := w.Shift(corner, Up); got != corner {
		t.Fatalf("expected %v, got %v", corner, got)
	}
	if got := w.Shift(corner, Left); got != corner {
		t.Fatalf("expected %v, got %v", corner, got)
	}
	if got := w.Shift(corner, Right); got != (Cell{Row: 0, Col: 1}) {
		t.Fatalf("unexpected shift %v", got)
	}
}

func TestTransitionMergesClippedCells(t *testing.T) {
	w := DefaultWindyGridWorld()
	// column 7 has strength 2, from row 1 both wind outcomes clip to row 0
	pdf, order := w.Transition(Cell{Row: 1, Col: 6}, Right)
	if len(order) != 2 {
		t.Fatalf("expected 2 distinct next cells, got %v", order)
	}
	if p := pdf[Cell{Row: 0, Col: 7}]; p < 0.9-1e-9 || p > 0.9+1e-9 {
		t.Fatalf("expected merged probability 0.9, got %v", p)
	}
	if p := pdf[Cell{Row: 1, Col: 7}]; p != 0.1 {
		t.Fatalf("expected calm probability 0.1, got %v", p)
	}
}

func TestMDPIsValid(t *testing.T) {
	w := DefaultWindyGridWorld()
	m, err := w.MDP()
	if err != nil {
		t.Fatal(err)
	}
	if m.NumStates() != w.Rows*w.Cols {
		t.Fatalf("expected %d states, got %d", w.Rows*w.Cols, m.NumStates())
	}
	if _, ok := m.Actions(w.Goal); ok {
		t.Fatal("expected the goal to be terminal")
	}
	actions, ok := m.Actions(Cell{Row: 0, Col: 0})
	if !ok || len(actions) != len(Actions) {
		t.Fatalf("expected all actions to be legal, got %v", actions)
	}
}

func TestCheck(t *testing.T) {
	w := DefaultWindyGridWorld()
	w.Gust = 0.5
	if err := w.Check(); !errors.Is(err, ErrBadWind) {
		t.Fatalf("expected ErrBadWind, got %v", err)
	}
	w = DefaultWindyGridWorld()
	w.Wind = w.Wind[:3]
	if _, err := w.MDP(); !errors.Is(err, ErrWindDimension) {
		t.Fatalf("expected ErrWindDimension, got %v", err)
	}
	w = DefaultWindyGridWorld()
	w.Goal = Cell{Row: 10, Col: 0}
	if err := w.Check(); !errors.Is(err, ErrOffBoard) {
		t.Fatalf("expected ErrOffBoard, got %v", err)
	}
}

func TestRunPaintsPolicy(t *testing.T) {
	w := &WindyGridWorld{
		Rows:       3,
		Cols:       4,
		Wind:       []int{0, 1, 1, 0},
		Calm:       0.2,
		Base:       0.8,
		Goal:       Cell{Row: 1, Col: 3},
		StepReward: -1,
	}
	flags := common.DefaultFlags()
	flags.SavePath = ""
	out := new(bytes.Buffer)

	solution, err := Run(context.Background(), flags, w, out, false)
	if err != nil {
		t.Fatal(err)
	}
	if solution.Report.Agreement == nil || !solution.Report.Agreement.Match {
		t.Fatalf("expected both solvers to agree, got %+v", solution.Report.Agreement)
	}
	// next to the goal the best move is always right
	actions := solution.Policy().Actions(Cell{Row: 1, Col: 2})
	if len(actions) == 0 || actions[0] != Right {
		t.Fatalf("expected right next to the goal, got %v", actions)
	}
	if !strings.Contains(out.String(), "G") {
		t.Fatalf("expected the goal to be painted, got %q", out.String())
	}
}
