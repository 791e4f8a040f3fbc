package core

import "sync"

// Trace is the sequence of sweeps of one solver run
type Trace struct {
	mtx    *sync.Mutex
	sweeps []SweepStats
}

func NewTrace() *Trace {
	return &Trace{
		sweeps: make([]SweepStats, 0),
		mtx:    &sync.Mutex{},
	}
}

func (t *Trace) AddSweep(s SweepStats) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.sweeps = append(t.sweeps, s)
}

func (t *Trace) Sweep(i int) SweepStats {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.sweeps[i]
}

func (t *Trace) Len() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.sweeps)
}

func (t *Trace) Last() SweepStats {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.sweeps[len(t.sweeps)-1]
}

// Deltas returns the delta of every sweep in order
func (t *Trace) Deltas() []float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	out := make([]float64, len(t.sweeps))
	for i, s := range t.sweeps {
		out[i] = s.Delta
	}
	return out
}
