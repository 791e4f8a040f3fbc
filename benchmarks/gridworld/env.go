// Package gridworld builds the stochastic windy gridworld as a tabular MDP
package gridworld

import (
	"errors"
	"fmt"

	"github.com/zeu5/markov-dp/core"
	"gonum.org/v1/gonum/floats/scalar"
)

type Action string

const (
	Up    Action = "up"
	Down  Action = "down"
	Left  Action = "left"
	Right Action = "right"
)

var Actions = []Action{Up, Down, Left, Right}

// Cell is a position on the grid
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

var (
	ErrBadWind       = errors.New("wind probabilities must sum to 1")
	ErrOffBoard      = errors.New("cell is off the board")
	ErrWindDimension = errors.New("one wind strength per column is required")
)

// WindyGridWorld is a grid where every column blows the agent upwards after
// it moves. With probability Calm the wind does not blow, with probability
// Base it blows with the column's strength and with probability Gust one
// cell stronger. Every move costs StepReward until Goal is reached.
type WindyGridWorld struct {
	Rows       int
	Cols       int
	Wind       []int
	Calm       float64
	Base       float64
	Gust       float64
	Goal       Cell
	StepReward core.Reward
}

func DefaultWindyGridWorld() *WindyGridWorld {
	return &WindyGridWorld{
		Rows:       7,
		Cols:       10,
		Wind:       []int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0},
		Calm:       0.1,
		Base:       0.8,
		Gust:       0.1,
		Goal:       Cell{Row: 3, Col: 7},
		StepReward: -1,
	}
}

func (w *WindyGridWorld) Check() error {
	if w.Rows <= 0 || w.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrOffBoard, w.Rows, w.Cols)
	}
	if len(w.Wind) != w.Cols {
		return fmt.Errorf("%w: %d columns, %d strengths", ErrWindDimension, w.Cols, len(w.Wind))
	}
	if !scalar.EqualWithinAbs(w.Calm+w.Base+w.Gust, 1.0, 1e-9) || w.Calm < 0 || w.Base < 0 || w.Gust < 0 {
		return fmt.Errorf("%w: %v + %v + %v", ErrBadWind, w.Calm, w.Base, w.Gust)
	}
	if !w.OnBoard(w.Goal) {
		return fmt.Errorf("%w: goal %v", ErrOffBoard, w.Goal)
	}
	return nil
}

func (w *WindyGridWorld) OnBoard(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < w.Rows && c.Col < w.Cols
}

// MDP builds the tabular model. The goal is terminal.
func (w *WindyGridWorld) MDP() (*core.TabularMDP[Cell, Action], error) {
	if err := w.Check(); err != nil {
		return nil, err
	}
	m := core.NewTabularMDP[Cell, Action]()
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Cols; c++ {
			s0 := Cell{Row: r, Col: c}
			m.AddState(s0)
			if s0 == w.Goal {
				continue
			}
			for _, a := range Actions {
				next, order := w.Transition(s0, a)
				for _, s1 := range order {
					m.AddTransition(s0, a, s1, next[s1], w.StepReward)
				}
			}
		}
	}
	m.SetTerminal(w.Goal)
	return m, m.Validate()
}

// Transition returns the distribution over next cells of moving from s0,
// along with the cells in a fixed order
func (w *WindyGridWorld) Transition(s0 Cell, a Action) (map[Cell]float64, []Cell) {
	s1 := w.Shift(s0, a)
	strength := w.Wind[s1.Col]

	pdf := make(map[Cell]float64)
	order := make([]Cell, 0, 3)
	add := func(c Cell, p float64) {
		if p == 0 {
			return
		}
		if _, ok := pdf[c]; !ok {
			order = append(order, c)
		}
		pdf[c] += p
	}
	add(s1, w.Calm)
	add(Cell{Row: w.clipRow(s1.Row - strength), Col: s1.Col}, w.Base)
	add(Cell{Row: w.clipRow(s1.Row - strength - 1), Col: s1.Col}, w.Gust)
	return pdf, order
}

// Shift moves one cell in the direction of the action, staying on the board
func (w *WindyGridWorld) Shift(s0 Cell, a Action) Cell {
	r1, c1 := s0.Row, s0.Col
	switch a {
	case Up:
		r1--
	case Down:
		r1++
	case Left:
		c1--
	case Right:
		c1++
	default:
		panic("unhandled action: " + string(a))
	}
	return Cell{Row: w.clipRow(r1), Col: w.clipCol(c1)}
}

func (w *WindyGridWorld) clipRow(r int) int {
	if r < 0 {
		return 0
	}
	if r > w.Rows-1 {
		return w.Rows - 1
	}
	return r
}

func (w *WindyGridWorld) clipCol(c int) int {
	if c < 0 {
		return 0
	}
	if c > w.Cols-1 {
		return w.Cols - 1
	}
	return c
}
