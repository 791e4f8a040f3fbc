package analysis

import (
	"github.com/zeu5/markov-dp/core"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type DeltaDataset struct {
	// Series holds the delta of every sweep per solver, in order
	Series map[string][]float64
	// Rounds counts the distinct policy iteration rounds seen per solver
	Rounds map[string]int
}

// Solvers returns the names of the recorded solvers in sorted order
func (d *DeltaDataset) Solvers() []string {
	names := maps.Keys(d.Series)
	slices.Sort(names)
	return names
}

// Final returns the delta of the last sweep of the solver
func (d *DeltaDataset) Final(solver string) (float64, bool) {
	series, ok := d.Series[solver]
	if !ok || len(series) == 0 {
		return 0, false
	}
	return series[len(series)-1], true
}

func (d *DeltaDataset) Copy() *DeltaDataset {
	out := &DeltaDataset{
		Series: make(map[string][]float64, len(d.Series)),
		Rounds: maps.Clone(d.Rounds),
	}
	for name, series := range d.Series {
		out.Series[name] = slices.Clone(series)
	}
	return out
}

// DeltaAnalyzer records the sweep deltas of every solver it observes
type DeltaAnalyzer struct {
	traces map[string]*core.Trace
	rounds map[string]map[int]bool
}

var _ core.Analyzer = &DeltaAnalyzer{}

func NewDeltaAnalyzer() *DeltaAnalyzer {
	return &DeltaAnalyzer{
		traces: make(map[string]*core.Trace),
		rounds: make(map[string]map[int]bool),
	}
}

func (d *DeltaAnalyzer) AnalyzeSweep(s core.SweepStats) {
	trace, ok := d.traces[s.Solver]
	if !ok {
		trace = core.NewTrace()
		d.traces[s.Solver] = trace
		d.rounds[s.Solver] = make(map[int]bool)
	}
	trace.AddSweep(s)
	d.rounds[s.Solver][s.Round] = true
}

// Trace returns the recorded sweeps of the solver
func (d *DeltaAnalyzer) Trace(solver string) (*core.Trace, bool) {
	t, ok := d.traces[solver]
	return t, ok
}

func (d *DeltaAnalyzer) DataSet() core.DataSet {
	ds := &DeltaDataset{
		Series: make(map[string][]float64, len(d.traces)),
		Rounds: make(map[string]int, len(d.traces)),
	}
	for name, trace := range d.traces {
		ds.Series[name] = trace.Deltas()
		ds.Rounds[name] = len(d.rounds[name])
	}
	return ds
}

func (d *DeltaAnalyzer) Reset() {
	d.traces = make(map[string]*core.Trace)
	d.rounds = make(map[string]map[int]bool)
}
