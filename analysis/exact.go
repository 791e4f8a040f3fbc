package analysis

import (
	"fmt"

	"github.com/zeu5/markov-dp/core"
	"gonum.org/v1/gonum/mat"
)

// ExactPolicyValue computes the value of a fixed policy by solving the
// linear system (I - gamma P) v = r directly. Terminal states are left out
// of the returned table, as the iterative evaluator does.
func ExactPolicyValue[S comparable, A comparable](m core.MDP[S, A], policy core.Policy[S, A], gamma float64) (core.ValueTable[S], error) {
	if err := core.ValidateDiscount(gamma); err != nil {
		return nil, err
	}
	states := m.States()
	n := len(states)
	values := core.NewValueTable[S]()
	if n == 0 {
		return values, nil
	}

	index := make(map[S]int, n)
	for i, s := range states {
		index[s] = i
	}

	system := mat.NewDense(n, n, nil)
	rewards := mat.NewVecDense(n, nil)
	terminal := make([]bool, n)
	for i, s := range states {
		system.Set(i, i, 1.0)
		actions, ok := m.Actions(s)
		if !ok || len(actions) == 0 {
			terminal[i] = true
			continue
		}
		for _, a := range actions {
			p := policy.Probability(s, a)
			if p <= 0 {
				continue
			}
			for _, o := range m.Outcomes(s, a) {
				j, ok := index[o.Next]
				if !ok {
					return nil, fmt.Errorf("%w: %v reached from state %v, action %v", core.ErrUnknownState, o.Next, s, a)
				}
				system.Set(i, j, system.At(i, j)-gamma*p*o.Probability)
				rewards.SetVec(i, rewards.AtVec(i)+p*o.Probability*o.Reward)
			}
		}
	}

	var solution mat.VecDense
	if err := solution.SolveVec(system, rewards); err != nil {
		return nil, fmt.Errorf("solving policy value: %w", err)
	}
	for i, s := range states {
		if !terminal[i] {
			values[s] = solution.AtVec(i)
		}
	}
	return values, nil
}
