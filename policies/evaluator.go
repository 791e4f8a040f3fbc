package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/markov-dp/core"
)

// PolicyEvaluator computes the state value function of a fixed policy by
// repeated synchronous sweeps of the Bellman expectation backup.
type PolicyEvaluator[S comparable, A comparable] struct {
	mdp    core.MDP[S, A]
	config core.SolverConfig

	estimates  core.ValueTable[S]
	iterations int
	delta      float64
	round      int

	*settings
}

func NewPolicyEvaluator[S comparable, A comparable](mdp core.MDP[S, A], config core.SolverConfig, opts ...Option) (*PolicyEvaluator[S, A], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &PolicyEvaluator[S, A]{
		mdp:       mdp,
		config:    config,
		estimates: core.NewValueTable[S](),
		settings:  newSettings(opts),
	}, nil
}

// Evaluate recomputes the estimates for the policy from zero. Every call
// resets the sweep count. It fails when the context of WithContext is done.
func (e *PolicyEvaluator[S, A]) Evaluate(policy core.Policy[S, A]) error {
	e.iterations = 0
	e.estimates = core.NewValueTable[S]()
	states := e.mdp.States()

	for {
		if err := e.interrupted(EvaluatorName, e.iterations); err != nil {
			return err
		}
		e.delta = 0.0
		next := e.estimates.Clone()
		for _, s := range states {
			actions, ok := e.mdp.Actions(s)
			if !ok || len(actions) == 0 {
				e.reporter.Report(core.Anomaly{
					Kind:   core.NoLegalActions,
					Solver: EvaluatorName,
					Sweep:  e.iterations + 1,
					State:  s,
				})
				continue
			}
			var value core.Reward
			for _, a := range actions {
				p := policy.Probability(s, a)
				if p > 0 {
					value += p * core.ActionValue(s, a, e.mdp, e.config.Discount, e.estimates.Get)
				}
			}
			e.delta = math.Max(e.delta, math.Abs(e.estimates.Get(s)-value))
			next[s] = value
		}
		e.estimates = next
		e.iterations++
		e.sweep(core.SweepStats{
			Solver:    EvaluatorName,
			Round:     e.round,
			Iteration: e.iterations,
			Delta:     e.delta,
		})

		if e.delta <= e.config.Tolerance {
			return nil
		}
		if e.config.MaxSweeps > 0 && e.iterations >= e.config.MaxSweeps {
			return fmt.Errorf("%w: %s: %d sweeps, delta %v", core.ErrNotConverged, EvaluatorName, e.iterations, e.delta)
		}
	}
}

// Estimates returns the value table of the last evaluation
func (e *PolicyEvaluator[S, A]) Estimates() core.ValueTable[S] {
	return e.estimates
}

// Iterations returns the number of sweeps of the last evaluation
func (e *PolicyEvaluator[S, A]) Iterations() int {
	return e.iterations
}

// Delta returns the largest change in the final sweep of the last evaluation
func (e *PolicyEvaluator[S, A]) Delta() float64 {
	return e.delta
}
