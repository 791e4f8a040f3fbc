package core

import (
	"fmt"
	"io"
	"sync"
)

// AnomalyKind classifies a model anomaly found during a sweep
type AnomalyKind string

const (
	// NoLegalActions is reported when a state has no enumerable legal actions
	NoLegalActions AnomalyKind = "no_legal_actions"
	// NoCandidateActions is reported when none of a state's legal actions
	// has non-zero probability under the policy being improved
	NoCandidateActions AnomalyKind = "no_candidate_actions"
)

// Anomaly records a state that was skipped during a sweep. Anomalies are
// not fatal, the state simply does not contribute to that round.
type Anomaly struct {
	Kind   AnomalyKind
	Solver string
	Sweep  int
	State  interface{}
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s: sweep %d: state %v: %s", a.Solver, a.Sweep, a.State, a.Kind)
}

// Reporter receives the anomalies found by a solver
type Reporter interface {
	Report(Anomaly)
}

type NopReporter struct{}

var _ Reporter = NopReporter{}

func (NopReporter) Report(Anomaly) {}

// AnomalyLog collects anomalies in memory
type AnomalyLog struct {
	mu        *sync.Mutex
	anomalies []Anomaly
}

var _ Reporter = &AnomalyLog{}

func NewAnomalyLog() *AnomalyLog {
	return &AnomalyLog{
		mu:        new(sync.Mutex),
		anomalies: make([]Anomaly, 0),
	}
}

func (l *AnomalyLog) Report(a Anomaly) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.anomalies = append(l.anomalies, a)
}

func (l *AnomalyLog) Anomalies() []Anomaly {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Anomaly, len(l.anomalies))
	copy(out, l.anomalies)
	return out
}

// Counts returns the number of anomalies per kind
func (l *AnomalyLog) Counts() map[AnomalyKind]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	counts := make(map[AnomalyKind]int)
	for _, a := range l.anomalies {
		counts[a.Kind]++
	}
	return counts
}

func (l *AnomalyLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.anomalies)
}

func (l *AnomalyLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.anomalies = make([]Anomaly, 0)
}

// WriterReporter prints one line per anomaly
type WriterReporter struct {
	w io.Writer
}

var _ Reporter = &WriterReporter{}

func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

func (r *WriterReporter) Report(a Anomaly) {
	fmt.Fprintf(r.w, "anomaly: %s\n", a)
}

// MultiReporter fans anomalies out to several reporters
type MultiReporter []Reporter

func (m MultiReporter) Report(a Anomaly) {
	for _, r := range m {
		r.Report(a)
	}
}
