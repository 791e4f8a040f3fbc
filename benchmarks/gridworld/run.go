package gridworld

import (
	"context"
	"io"

	"github.com/zeu5/markov-dp/benchmarks/common"
)

const Name = "gridworld"

// Run solves the gridworld and paints the resulting values and policy
func Run(ctx context.Context, flags *common.Flags, world *WindyGridWorld, out io.Writer, color bool) (*common.Solution[Cell, Action], error) {
	m, err := world.MDP()
	if err != nil {
		return nil, err
	}
	solution, err := common.Solve[Cell, Action](ctx, Name, m, flags, out)
	if err != nil {
		return nil, err
	}
	painter := NewPainter(world, color)
	painter.PrintValues(out, solution.Estimates())
	io.WriteString(out, "\n")
	painter.PrintPolicy(out, solution.Policy())
	return solution, nil
}
