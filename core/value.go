package core

import (
	"math"

	"golang.org/x/exp/maps"
)

// ValueFunction maps a state to its estimated value
type ValueFunction[S comparable] func(S) Reward

// ValueTable holds state value estimates. An absent state has value 0.
type ValueTable[S comparable] map[S]Reward

func NewValueTable[S comparable]() ValueTable[S] {
	return make(ValueTable[S])
}

// Get returns the estimate for the state, 0 if absent
func (v ValueTable[S]) Get(s S) Reward {
	if val, ok := v[s]; ok {
		return val
	}
	return 0.0
}

func (v ValueTable[S]) Clone() ValueTable[S] {
	if v == nil {
		return NewValueTable[S]()
	}
	return maps.Clone(v)
}

// Equal compares two tables element-wise with exact float equality.
// Absent and zero entries are not the same.
func (v ValueTable[S]) Equal(other ValueTable[S]) bool {
	return maps.Equal(v, other)
}

// MaxAbsDiff returns the largest absolute difference over the union of the
// two tables' states, treating absent entries as 0
func (v ValueTable[S]) MaxAbsDiff(other ValueTable[S]) float64 {
	diff := 0.0
	for s, val := range v {
		diff = math.Max(diff, math.Abs(val-other.Get(s)))
	}
	for s, val := range other {
		if _, ok := v[s]; !ok {
			diff = math.Max(diff, math.Abs(val))
		}
	}
	return diff
}

// ActionValue computes Q(s, a): the expected return of taking action a in
// state s and following the value estimate v afterwards.
// gamma must lie in [0, 1).
func ActionValue[S comparable, A comparable](s S, a A, m MDP[S, A], gamma float64, v ValueFunction[S]) Reward {
	var q Reward
	for _, o := range m.Outcomes(s, a) {
		q += o.Probability * (o.Reward + gamma*v(o.Next))
	}
	return q
}
