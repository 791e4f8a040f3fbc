package core

import (
	"errors"
	"math"
	"testing"
)

func twoActionModel() *TabularMDP[string, string] {
	m := NewTabularMDP[string, string]()
	m.AddTransition("s", "left", "s", 0.5, 1.0)
	m.AddTransition("s", "left", "t", 0.5, 3.0)
	m.AddTransition("s", "right", "t", 1.0, -2.0)
	m.SetTerminal("t")
	return m
}

func TestValueTableGetDefaultsToZero(t *testing.T) {
	v := NewValueTable[string]()
	v["a"] = 2.5

	if got := v.Get("a"); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := v.Get("missing"); got != 0.0 {
		t.Fatalf("expected 0 for absent state, got %v", got)
	}
}

func TestValueTableEqualIsExact(t *testing.T) {
	a := ValueTable[string]{"x": 1.0, "y": 2.0}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("expected clone to be equal")
	}

	b["y"] = math.Nextafter(2.0, 3.0)
	if a.Equal(b) {
		t.Fatal("expected tables differing in the last bit to be unequal")
	}

	c := ValueTable[string]{"x": 1.0, "y": 2.0, "z": 0.0}
	if a.Equal(c) {
		t.Fatal("expected an explicit zero entry to differ from an absent one")
	}
	if d := a.MaxAbsDiff(c); d != 0.0 {
		t.Fatalf("expected no value difference, got %v", d)
	}
}

func TestValueTableCloneIsIndependent(t *testing.T) {
	a := ValueTable[string]{"x": 1.0}
	b := a.Clone()
	b["x"] = 5.0
	if a["x"] != 1.0 {
		t.Fatalf("clone shares storage with original: %v", a["x"])
	}

	var empty ValueTable[string]
	if c := empty.Clone(); c == nil {
		t.Fatal("expected clone of nil table to be usable")
	}
}

func TestActionValue(t *testing.T) {
	m := twoActionModel()
	v := ValueTable[string]{"s": 10.0}

	// 0.5 * (1 + 0.5*10) + 0.5 * (3 + 0.5*0)
	if got := ActionValue[string, string]("s", "left", m, 0.5, v.Get); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
	if got := ActionValue[string, string]("s", "right", m, 0.5, v.Get); got != -2.0 {
		t.Fatalf("expected -2, got %v", got)
	}
}

func TestActionValueDeterministic(t *testing.T) {
	m := NewTabularMDP[int, int]()
	for _, o := range Deterministic(4.0, 1) {
		m.AddTransition(0, 0, o.Next, o.Probability, o.Reward)
	}
	v := ValueTable[int]{1: 2.0}
	if got := ActionValue[int, int](0, 0, m, 0.5, v.Get); got != 5.0 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestUniformPolicy(t *testing.T) {
	m := twoActionModel()
	p := NewUniformPolicy[string, string](m)

	if got := p.Probability("s", "left"); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := p.Probability("s", "up"); got != 0 {
		t.Fatalf("expected 0 for illegal action, got %v", got)
	}
	if got := p.Probability("t", "left"); got != 0 {
		t.Fatalf("expected 0 in terminal state, got %v", got)
	}
}

func TestStochasticPolicy(t *testing.T) {
	p := NewStochasticPolicy(map[string][]string{
		"s": {"left", "right"},
		"u": {"up"},
	})

	if got := p.Probability("s", "left"); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	if got := p.Probability("u", "up"); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := p.Probability("missing", "up"); got != 0 {
		t.Fatalf("expected 0 for absent state, got %v", got)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 states, got %d", p.Len())
	}
	states := p.States()
	if states[0] != "s" || states[1] != "u" {
		t.Fatalf("expected sorted states, got %v", states)
	}

	actions := p.Actions("s")
	actions[0] = "changed"
	if p.Actions("s")[0] != "left" {
		t.Fatal("Actions must return a copy")
	}
}

func TestTabularMDP(t *testing.T) {
	m := twoActionModel()

	if m.NumStates() != 2 {
		t.Fatalf("expected 2 states, got %d", m.NumStates())
	}
	actions, ok := m.Actions("s")
	if !ok || len(actions) != 2 || actions[0] != "left" || actions[1] != "right" {
		t.Fatalf("unexpected actions %v", actions)
	}
	if !IsTerminal[string, string](m, "t") {
		t.Fatal("expected t to be terminal")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid model: %v", err)
	}
}

func TestTabularMDPValidateRejectsBadDistribution(t *testing.T) {
	m := NewTabularMDP[string, string]()
	m.AddTransition("s", "a", "s", 0.7, 0)
	m.AddTransition("s", "a", "t", 0.2, 0)

	if err := m.Validate(); !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution, got %v", err)
	}

	n := NewTabularMDP[string, string]()
	n.AddTransition("s", "a", "s", 1.2, 0)
	n.AddTransition("s", "a", "t", -0.2, 0)
	if err := n.Validate(); !errors.Is(err, ErrInvalidDistribution) {
		t.Fatalf("expected ErrInvalidDistribution for negative probability, got %v", err)
	}
}

func TestSolverConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		config SolverConfig
		want   error
	}{
		{"default", DefaultSolverConfig(), nil},
		{"zero discount", SolverConfig{Tolerance: 0.1, Discount: 0}, nil},
		{"discount one", SolverConfig{Tolerance: 0.1, Discount: 1}, ErrInvalidDiscount},
		{"negative discount", SolverConfig{Tolerance: 0.1, Discount: -0.1}, ErrInvalidDiscount},
		{"nan discount", SolverConfig{Tolerance: 0.1, Discount: math.NaN()}, ErrInvalidDiscount},
		{"negative tolerance", SolverConfig{Tolerance: -1, Discount: 0.5}, ErrInvalidTolerance},
	}
	for _, c := range cases {
		err := c.config.Validate()
		if c.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestAnomalyLog(t *testing.T) {
	log := NewAnomalyLog()
	var r Reporter = MultiReporter{log, NopReporter{}}

	r.Report(Anomaly{Kind: NoLegalActions, Solver: "x", Sweep: 1, State: "t"})
	r.Report(Anomaly{Kind: NoLegalActions, Solver: "x", Sweep: 2, State: "t"})
	r.Report(Anomaly{Kind: NoCandidateActions, Solver: "x", Sweep: 2, State: "s"})

	if log.Len() != 3 {
		t.Fatalf("expected 3 anomalies, got %d", log.Len())
	}
	counts := log.Counts()
	if counts[NoLegalActions] != 2 || counts[NoCandidateActions] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	log.Reset()
	if log.Len() != 0 {
		t.Fatal("expected empty log after reset")
	}
}

func TestTraceDeltas(t *testing.T) {
	trace := NewTrace()
	trace.AddSweep(SweepStats{Iteration: 1, Delta: 2})
	trace.AddSweep(SweepStats{Iteration: 2, Delta: 0.5})

	if trace.Len() != 2 || trace.Last().Delta != 0.5 {
		t.Fatalf("unexpected trace %v", trace.Deltas())
	}
	if d := trace.Deltas(); d[0] != 2 || d[1] != 0.5 {
		t.Fatalf("unexpected deltas %v", d)
	}
}

func TestCompareStatesOrdersNumbers(t *testing.T) {
	p := NewStochasticPolicy(map[int][]string{10: {"a"}, 2: {"a"}, 1: {"b"}, 0: {"b"}})
	states := p.States()
	want := []int{0, 1, 2, 10}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, states)
		}
	}
	if CompareStates("b", "a") <= 0 {
		t.Fatal("expected strings to compare lexically")
	}
	type cell struct{ r, c int }
	if CompareStates(cell{0, 1}, cell{0, 2}) >= 0 {
		t.Fatal("expected other states to compare by their printed form")
	}
}
