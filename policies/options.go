package policies

import (
	"context"
	"fmt"

	"github.com/zeu5/markov-dp/core"
)

const (
	EvaluatorName       = "policy_evaluation"
	PolicyIterationName = "policy_iteration"
	ValueIterationName  = "value_iteration"
)

type settings struct {
	ctx               context.Context
	reporter          core.Reporter
	analyzers         []core.SweepAnalyzer
	restrictToSupport bool
}

func newSettings(opts []Option) *settings {
	s := &settings{
		ctx:       context.Background(),
		reporter:  core.NopReporter{},
		analyzers: make([]core.SweepAnalyzer, 0),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *settings) sweep(stats core.SweepStats) {
	for _, a := range s.analyzers {
		a.AnalyzeSweep(stats)
	}
}

// interrupted is checked before every sweep
func (s *settings) interrupted(solver string, sweeps int) error {
	select {
	case <-s.ctx.Done():
		return fmt.Errorf("%s: interrupted after %d sweeps: %w", solver, sweeps, s.ctx.Err())
	default:
	}
	return nil
}

// Option configures the diagnostics of a solver
type Option func(*settings)

// WithContext stops the solver with the context's error once it is done
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithReporter sends model anomalies to r
func WithReporter(r core.Reporter) Option {
	return func(s *settings) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithAnalyzer attaches a sweep analyzer
func WithAnalyzer(a core.SweepAnalyzer) Option {
	return func(s *settings) {
		if a != nil {
			s.analyzers = append(s.analyzers, a)
		}
	}
}

// WithSupportRestriction limits policy improvement to the actions the
// current policy already takes. Policy iteration then stops at the greedy
// policy of the first evaluation, which need not be optimal.
func WithSupportRestriction() Option {
	return func(s *settings) {
		s.restrictToSupport = true
	}
}
