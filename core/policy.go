package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Policy gives the probability of selecting an action in a state.
// For a fixed state the probabilities over all actions sum to 1.
type Policy[S comparable, A comparable] interface {
	Probability(S, A) float64
}

// UniformPolicy selects uniformly at random among the legal actions of each state
type UniformPolicy[S comparable, A comparable] struct {
	legal map[S]map[A]bool
}

var _ Policy[string, string] = &UniformPolicy[string, string]{}

// NewUniformPolicy builds the uniform random policy over the legal actions of m
func NewUniformPolicy[S comparable, A comparable](m MDP[S, A]) *UniformPolicy[S, A] {
	legal := make(map[S]map[A]bool)
	for _, s := range m.States() {
		actions, ok := m.Actions(s)
		if !ok || len(actions) == 0 {
			continue
		}
		set := make(map[A]bool, len(actions))
		for _, a := range actions {
			set[a] = true
		}
		legal[s] = set
	}
	return &UniformPolicy[S, A]{legal: legal}
}

func (u *UniformPolicy[S, A]) Probability(s S, a A) float64 {
	actions, ok := u.legal[s]
	if !ok || !actions[a] {
		return 0
	}
	return 1.0 / float64(len(actions))
}

// StochasticPolicy picks uniformly among a per-state list of equally good
// actions. States without an entry select every action with probability 0.
type StochasticPolicy[S comparable, A comparable] struct {
	actionMap map[S][]A
}

var _ Policy[string, string] = &StochasticPolicy[string, string]{}

func NewStochasticPolicy[S comparable, A comparable](actionMap map[S][]A) *StochasticPolicy[S, A] {
	if actionMap == nil {
		actionMap = make(map[S][]A)
	}
	return &StochasticPolicy[S, A]{actionMap: actionMap}
}

func (p *StochasticPolicy[S, A]) Probability(s S, a A) float64 {
	chosen, ok := p.actionMap[s]
	if !ok || len(chosen) == 0 {
		return 0
	}
	count := 0
	for _, c := range chosen {
		if c == a {
			count++
		}
	}
	return float64(count) / float64(len(chosen))
}

// Actions returns the chosen actions for the state
func (p *StochasticPolicy[S, A]) Actions(s S) []A {
	return slices.Clone(p.actionMap[s])
}

// States returns the states that have chosen actions, ordered by CompareStates
func (p *StochasticPolicy[S, A]) States() []S {
	states := make([]S, 0, len(p.actionMap))
	for s := range p.actionMap {
		states = append(states, s)
	}
	slices.SortFunc(states, CompareStates[S])
	return states
}

func (p *StochasticPolicy[S, A]) Len() int {
	return len(p.actionMap)
}

// ActionMap returns a copy of the underlying state to actions mapping
func (p *StochasticPolicy[S, A]) ActionMap() map[S][]A {
	out := make(map[S][]A, len(p.actionMap))
	for s, actions := range p.actionMap {
		out[s] = slices.Clone(actions)
	}
	return out
}

func (p *StochasticPolicy[S, A]) String() string {
	b := new(strings.Builder)
	for _, s := range p.States() {
		fmt.Fprintf(b, "%v: %v\n", s, p.actionMap[s])
	}
	return b.String()
}
