package core

// SweepStats describes one finished sweep of a solver
type SweepStats struct {
	Solver string
	// Round is the policy iteration round the sweep belongs to, 0 for
	// value iteration
	Round int
	// Iteration is the 1-based sweep number within the run
	Iteration int
	Delta     float64
}

type DataSet interface{}

// SweepAnalyzer observes every sweep of the solvers it is attached to
type SweepAnalyzer interface {
	AnalyzeSweep(SweepStats)
}

// Analyzer is a SweepAnalyzer that can summarize what it has seen
type Analyzer interface {
	SweepAnalyzer
	DataSet() DataSet
	Reset()
}

// SweepAnalyzerFunc adapts a function to a SweepAnalyzer
type SweepAnalyzerFunc func(SweepStats)

func (f SweepAnalyzerFunc) AnalyzeSweep(s SweepStats) {
	f(s)
}
