// Package random generates seeded random tabular MDPs
package random

import (
	"errors"
	"fmt"

	"github.com/zeu5/markov-dp/core"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

var ErrBadGenerator = errors.New("invalid generator")

// Generator describes a family of random models. States and actions are
// numbered from 0. Every (state, action) pair reaches Branching distinct
// successors with Dirichlet(Concentration) probabilities and uniform rewards.
type Generator struct {
	States        int
	Actions       int
	Branching     int
	Terminals     int
	MinReward     float64
	MaxReward     float64
	Concentration float64
	Seed          uint64
}

func DefaultGenerator() *Generator {
	return &Generator{
		States:        50,
		Actions:       4,
		Branching:     3,
		Terminals:     2,
		MinReward:     -1,
		MaxReward:     1,
		Concentration: 1,
		Seed:          1,
	}
}

func (g *Generator) Check() error {
	switch {
	case g.States < 1:
		return fmt.Errorf("%w: %d states", ErrBadGenerator, g.States)
	case g.Actions < 1:
		return fmt.Errorf("%w: %d actions", ErrBadGenerator, g.Actions)
	case g.Branching < 1 || g.Branching > g.States:
		return fmt.Errorf("%w: branching %d not in [1, %d]", ErrBadGenerator, g.Branching, g.States)
	case g.Terminals < 0 || g.Terminals > g.States:
		return fmt.Errorf("%w: terminals %d not in [0, %d]", ErrBadGenerator, g.Terminals, g.States)
	case g.MinReward >= g.MaxReward:
		return fmt.Errorf("%w: reward range [%v, %v]", ErrBadGenerator, g.MinReward, g.MaxReward)
	case g.Concentration <= 0:
		return fmt.Errorf("%w: concentration %v", ErrBadGenerator, g.Concentration)
	}
	return nil
}

// Generate builds the model. The same generator always yields the same model.
func (g *Generator) Generate() (*core.TabularMDP[int, int], error) {
	if err := g.Check(); err != nil {
		return nil, err
	}
	src := rand.NewSource(g.Seed)

	alpha := make([]float64, g.Branching)
	for i := range alpha {
		alpha[i] = g.Concentration
	}
	dirichlet := distmv.NewDirichlet(alpha, src)
	rewards := distuv.Uniform{Min: g.MinReward, Max: g.MaxReward, Src: src}

	m := core.NewTabularMDP[int, int]()
	for s := 0; s < g.States; s++ {
		m.AddState(s)
	}
	successors := make([]int, g.Branching)
	probabilities := make([]float64, g.Branching)
	for s := 0; s < g.States; s++ {
		for a := 0; a < g.Actions; a++ {
			sampleuv.WithoutReplacement(successors, g.States, src)
			dirichlet.Rand(probabilities)
			for i, next := range successors {
				m.AddTransition(s, a, next, probabilities[i], rewards.Rand())
			}
		}
	}

	if g.Terminals > 0 {
		terminals := make([]int, g.Terminals)
		sampleuv.WithoutReplacement(terminals, g.States, src)
		for _, s := range terminals {
			m.SetTerminal(s)
		}
	}
	return m, m.Validate()
}
