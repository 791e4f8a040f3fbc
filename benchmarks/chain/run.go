package chain

import (
	"context"
	"io"

	"github.com/zeu5/markov-dp/benchmarks/common"
	"github.com/zeu5/markov-dp/core"
)

const Name = "chain"

func Run(ctx context.Context, flags *common.Flags, c *Chain, out io.Writer) (*common.Solution[int, string], error) {
	m, err := c.MDP()
	if err != nil {
		return nil, err
	}
	return run(ctx, Name, m, flags, out)
}

func RunSelfLoop(ctx context.Context, flags *common.Flags, r core.Reward, out io.Writer) (*common.Solution[int, string], error) {
	return run(ctx, Name+"_self_loop", SelfLoop(r), flags, out)
}

func run(ctx context.Context, name string, m *core.TabularMDP[int, string], flags *common.Flags, out io.Writer) (*common.Solution[int, string], error) {
	solution, err := common.Solve[int, string](ctx, name, m, flags, out)
	if err != nil {
		return nil, err
	}
	common.PrintSolution[int, string](out, m, solution)
	return solution, nil
}
