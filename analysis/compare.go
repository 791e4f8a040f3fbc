package analysis

import (
	"math"

	"github.com/zeu5/markov-dp/core"
	"gonum.org/v1/gonum/floats/scalar"
)

// PolicyComparison holds the exact values of two policies on the same model
type PolicyComparison[S comparable] struct {
	First  core.ValueTable[S]
	Second core.ValueTable[S]
	// MaxGap is the largest absolute difference of a state's value
	MaxGap float64
	// Mismatched lists the states whose values differ by more than the tolerance
	Mismatched []S
}

// Match is true when every state value agrees within the tolerance
func (c *PolicyComparison[S]) Match() bool {
	return len(c.Mismatched) == 0
}

// ComparePolicies computes the exact value of both policies and compares
// them state by state within eps
func ComparePolicies[S comparable, A comparable](m core.MDP[S, A], first, second core.Policy[S, A], gamma, eps float64) (*PolicyComparison[S], error) {
	firstValues, err := ExactPolicyValue(m, first, gamma)
	if err != nil {
		return nil, err
	}
	secondValues, err := ExactPolicyValue(m, second, gamma)
	if err != nil {
		return nil, err
	}

	c := &PolicyComparison[S]{
		First:      firstValues,
		Second:     secondValues,
		Mismatched: make([]S, 0),
	}
	for _, s := range m.States() {
		a, b := firstValues.Get(s), secondValues.Get(s)
		c.MaxGap = math.Max(c.MaxGap, math.Abs(a-b))
		if !scalar.EqualWithinAbs(a, b, eps) {
			c.Mismatched = append(c.Mismatched, s)
		}
	}
	return c, nil
}
