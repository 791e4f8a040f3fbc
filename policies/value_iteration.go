package policies

import (
	"fmt"
	"math"

	"github.com/zeu5/markov-dp/core"
)

// ValueIterator finds an optimal policy by building the state value function
// from Bellman optimality backups, without evaluating intermediate policies.
type ValueIterator[S comparable, A comparable] struct {
	mdp       core.MDP[S, A]
	gamma     float64
	maxSweeps int

	iterations int
	delta      float64
	estimates  core.ValueTable[S]

	*settings
}

// NewValueIterator fails with core.ErrInvalidDiscount unless 0 <= gamma < 1
func NewValueIterator[S comparable, A comparable](mdp core.MDP[S, A], gamma float64, opts ...Option) (*ValueIterator[S, A], error) {
	if err := core.ValidateDiscount(gamma); err != nil {
		return nil, err
	}
	return &ValueIterator[S, A]{
		mdp:       mdp,
		gamma:     gamma,
		estimates: core.NewValueTable[S](),
		settings:  newSettings(opts),
	}, nil
}

// SetMaxSweeps bounds the number of sweeps of GetPolicy, 0 means unbounded
func (v *ValueIterator[S, A]) SetMaxSweeps(n int) {
	v.maxSweeps = n
}

// GetPolicy runs value iteration until the largest change of a sweep is at
// most tolerance and returns the actions chosen in the final sweep.
// Only the first action reaching the maximum value of a state is kept.
func (v *ValueIterator[S, A]) GetPolicy(tolerance float64) (*core.StochasticPolicy[S, A], error) {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidTolerance, tolerance)
	}
	v.iterations = 0
	v.estimates = core.NewValueTable[S]()
	states := v.mdp.States()
	var chosenActions map[S][]A

	for {
		if err := v.interrupted(ValueIterationName, v.iterations); err != nil {
			return nil, err
		}
		v.delta = 0.0
		chosenActions = make(map[S][]A)
		next := v.estimates.Clone()
		for _, s := range states {
			actions, ok := v.mdp.Actions(s)
			if !ok || len(actions) == 0 {
				v.reporter.Report(core.Anomaly{
					Kind:   core.NoLegalActions,
					Solver: ValueIterationName,
					Sweep:  v.iterations + 1,
					State:  s,
				})
				continue
			}
			best := actions[0]
			bestValue := core.ActionValue(s, best, v.mdp, v.gamma, v.estimates.Get)
			for _, a := range actions[1:] {
				if value := core.ActionValue(s, a, v.mdp, v.gamma, v.estimates.Get); value > bestValue {
					best, bestValue = a, value
				}
			}
			chosenActions[s] = append(chosenActions[s], best)
			v.delta = math.Max(v.delta, math.Abs(v.estimates.Get(s)-bestValue))
			next[s] = bestValue
		}
		v.estimates = next
		v.iterations++
		v.sweep(core.SweepStats{
			Solver:    ValueIterationName,
			Iteration: v.iterations,
			Delta:     v.delta,
		})

		if v.delta <= tolerance {
			break
		}
		if v.maxSweeps > 0 && v.iterations >= v.maxSweeps {
			return nil, fmt.Errorf("%w: %s: %d sweeps, delta %v", core.ErrNotConverged, ValueIterationName, v.iterations, v.delta)
		}
	}
	return core.NewStochasticPolicy(chosenActions), nil
}

func (v *ValueIterator[S, A]) Iterations() int {
	return v.iterations
}

func (v *ValueIterator[S, A]) Estimates() core.ValueTable[S] {
	return v.estimates
}

func (v *ValueIterator[S, A]) Delta() float64 {
	return v.delta
}

// ValueIterationResult is the outcome of GetValueIterationPolicy
type ValueIterationResult[S comparable, A comparable] struct {
	Policy     *core.StochasticPolicy[S, A]
	Iterations int
	Estimates  core.ValueTable[S]
}

// GetValueIterationPolicy finds an optimal policy for the model using value iteration
func GetValueIterationPolicy[S comparable, A comparable](mdp core.MDP[S, A], config core.SolverConfig, opts ...Option) (*ValueIterationResult[S, A], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	iterator, err := NewValueIterator(mdp, config.Discount, opts...)
	if err != nil {
		return nil, err
	}
	iterator.SetMaxSweeps(config.MaxSweeps)

	policy, err := iterator.GetPolicy(config.Tolerance)
	if err != nil {
		return nil, err
	}
	return &ValueIterationResult[S, A]{
		Policy:     policy,
		Iterations: iterator.Iterations(),
		Estimates:  iterator.Estimates(),
	}, nil
}
