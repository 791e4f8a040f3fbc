// Package chain builds a corridor of states where every state can either
// advance towards an absorbing end or loop on itself
package chain

import (
	"errors"
	"fmt"

	"github.com/zeu5/markov-dp/core"
)

const (
	Advance = "advance"
	Stay    = "stay"
)

var ErrBadChain = errors.New("invalid chain")

type Chain struct {
	// Length is the number of states, the last one is terminal
	Length int
	// AdvanceReward is received when moving to the next state
	AdvanceReward core.Reward
	// EndReward replaces AdvanceReward on the move into the terminal state
	EndReward core.Reward
	// StayReward is received on every self loop
	StayReward core.Reward
	// Slip is the probability that advancing leaves the agent in place
	Slip float64
}

func DefaultChain() *Chain {
	return &Chain{
		Length:        10,
		AdvanceReward: 0,
		EndReward:     10,
		StayReward:    0.5,
		Slip:          0,
	}
}

func (c *Chain) Check() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: length %d", ErrBadChain, c.Length)
	}
	if c.Slip < 0 || c.Slip >= 1 {
		return fmt.Errorf("%w: slip %v not in [0, 1)", ErrBadChain, c.Slip)
	}
	return nil
}

// MDP builds the chain with states 0..Length-1
func (c *Chain) MDP() (*core.TabularMDP[int, string], error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	m := core.NewTabularMDP[int, string]()
	for i := 0; i < c.Length; i++ {
		m.AddState(i)
	}
	for i := 0; i < c.Length-1; i++ {
		reward := c.AdvanceReward
		if i == c.Length-2 {
			reward = c.EndReward
		}
		m.AddTransition(i, Advance, i+1, 1-c.Slip, reward)
		if c.Slip > 0 {
			m.AddTransition(i, Advance, i, c.Slip, c.StayReward)
		}
		m.AddTransition(i, Stay, i, 1, c.StayReward)
	}
	m.SetTerminal(c.Length - 1)
	return m, m.Validate()
}

// SelfLoop is a single state whose only action loops with reward r. Its value
// is r/(1-gamma).
func SelfLoop(r core.Reward) *core.TabularMDP[int, string] {
	m := core.NewTabularMDP[int, string]()
	m.AddTransition(0, Stay, 0, 1, r)
	return m
}
