package gridworld

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/zeu5/markov-dp/core"
	"github.com/zeu5/markov-dp/util"
)

var arrows = map[Action]string{
	Up:    "↑",
	Down:  "↓",
	Left:  "←",
	Right: "→",
}

// Painter prints values and policies laid out on the grid
type Painter struct {
	world *WindyGridWorld
	au    aurora.Aurora
}

// NewPainter returns a painter, colors are only used if color is true
func NewPainter(world *WindyGridWorld, color bool) *Painter {
	return &Painter{
		world: world,
		au:    aurora.NewAurora(color),
	}
}

func (p *Painter) PrintValues(out io.Writer, values core.ValueTable[Cell]) {
	for r := 0; r < p.world.Rows; r++ {
		for c := 0; c < p.world.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			v := util.FormatValue(values.Get(cell))
			if cell == p.world.Goal {
				fmt.Fprint(out, p.au.Green(v))
			} else {
				fmt.Fprint(out, p.au.Blue(v))
			}
			fmt.Fprint(out, p.au.White("|"))
		}
		fmt.Fprint(out, "\n")
	}
}

func (p *Painter) PrintPolicy(out io.Writer, policy *core.StochasticPolicy[Cell, Action]) {
	for r := 0; r < p.world.Rows; r++ {
		for c := 0; c < p.world.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if cell == p.world.Goal {
				fmt.Fprint(out, p.au.Green(fmt.Sprintf("%4s ", "G")))
				fmt.Fprint(out, p.au.White("|"))
				continue
			}
			b := new(strings.Builder)
			for _, a := range policy.Actions(cell) {
				b.WriteString(arrows[a])
			}
			fmt.Fprint(out, p.au.Blue(fmt.Sprintf("%4s ", b.String())))
			fmt.Fprint(out, p.au.White("|"))
		}
		fmt.Fprint(out, "\n")
	}
	fmt.Fprint(out, "wind ")
	for _, strength := range p.world.Wind {
		fmt.Fprint(out, p.au.Cyan(fmt.Sprintf("%4d  ", strength)))
	}
	fmt.Fprint(out, "\n")
}
