package random

import (
	"context"
	"fmt"
	"io"

	"github.com/zeu5/markov-dp/benchmarks/common"
)

const Name = "random"

func Run(ctx context.Context, flags *common.Flags, g *Generator, out io.Writer) (*common.Solution[int, int], error) {
	m, err := g.Generate()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "generated %d states, %d actions, branching %d (seed %d)\n", g.States, g.Actions, g.Branching, g.Seed)
	solution, err := common.Solve[int, int](ctx, fmt.Sprintf("%s_%d", Name, g.Seed), m, flags, out)
	if err != nil {
		return nil, err
	}
	common.PrintSolution[int, int](out, m, solution)
	return solution, nil
}
