package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const distributionTolerance = 1e-9

type tabularKey[S comparable, A comparable] struct {
	state  S
	action A
}

// TabularMDP is an explicit in-memory MDP. Build it with AddState and
// AddTransition, then treat it as read-only.
type TabularMDP[S comparable, A comparable] struct {
	states   []S
	known    map[S]bool
	actions  map[S][]A
	outcomes map[tabularKey[S, A]][]Outcome[S]
}

var _ MDP[string, string] = &TabularMDP[string, string]{}

func NewTabularMDP[S comparable, A comparable]() *TabularMDP[S, A] {
	return &TabularMDP[S, A]{
		states:   make([]S, 0),
		known:    make(map[S]bool),
		actions:  make(map[S][]A),
		outcomes: make(map[tabularKey[S, A]][]Outcome[S]),
	}
}

// AddState registers a state. States are enumerated in insertion order.
func (t *TabularMDP[S, A]) AddState(s S) {
	if t.known[s] {
		return
	}
	t.known[s] = true
	t.states = append(t.states, s)
}

// AddTransition adds an outcome to (s, a). Both s and next are registered
// as states, and a becomes legal in s.
func (t *TabularMDP[S, A]) AddTransition(s S, a A, next S, probability float64, reward Reward) {
	t.AddState(s)
	t.AddState(next)
	key := tabularKey[S, A]{s, a}
	if _, ok := t.outcomes[key]; !ok {
		t.actions[s] = append(t.actions[s], a)
	}
	t.outcomes[key] = append(t.outcomes[key], Outcome[S]{
		Probability: probability,
		Reward:      reward,
		Next:        next,
	})
}

// SetTerminal removes all actions of the state
func (t *TabularMDP[S, A]) SetTerminal(s S) {
	t.AddState(s)
	for _, a := range t.actions[s] {
		delete(t.outcomes, tabularKey[S, A]{s, a})
	}
	delete(t.actions, s)
}

func (t *TabularMDP[S, A]) States() []S {
	return t.states
}

func (t *TabularMDP[S, A]) Actions(s S) ([]A, bool) {
	actions, ok := t.actions[s]
	return actions, ok
}

func (t *TabularMDP[S, A]) Outcomes(s S, a A) []Outcome[S] {
	return t.outcomes[tabularKey[S, A]{s, a}]
}

func (t *TabularMDP[S, A]) NumStates() int {
	return len(t.states)
}

// Validate checks that every state action pair has a probability
// distribution over known states
func (t *TabularMDP[S, A]) Validate() error {
	for _, s := range t.states {
		for _, a := range t.actions[s] {
			outcomes := t.outcomes[tabularKey[S, A]{s, a}]
			probs := make([]float64, len(outcomes))
			for i, o := range outcomes {
				if o.Probability < 0 || math.IsNaN(o.Probability) {
					return fmt.Errorf("%w: state %v, action %v: probability %v", ErrInvalidDistribution, s, a, o.Probability)
				}
				if !t.known[o.Next] {
					return fmt.Errorf("%w: %v reached from state %v, action %v", ErrUnknownState, o.Next, s, a)
				}
				probs[i] = o.Probability
			}
			if sum := floats.Sum(probs); !scalar.EqualWithinAbs(sum, 1.0, distributionTolerance) {
				return fmt.Errorf("%w: state %v, action %v: sum %v", ErrInvalidDistribution, s, a, sum)
			}
		}
	}
	return nil
}
