package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeu5/markov-dp/benchmarks/gridworld"
	"github.com/zeu5/markov-dp/util"
)

func GridWorldCommand() *cobra.Command {
	world := gridworld.DefaultWindyGridWorld()
	var noColor bool

	cmd := &cobra.Command{
		Use:   "gridworld",
		Short: "Solve the stochastic windy gridworld",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, done := interruptContext()
			defer done()

			color := !noColor && util.IsTerminal(os.Stdout)
			_, err := gridworld.Run(ctx, flags, world, os.Stdout, color)
			return err
		},
	}
	cmd.Flags().IntVar(&world.Rows, "rows", world.Rows, "Number of rows")
	cmd.Flags().IntVar(&world.Cols, "cols", world.Cols, "Number of columns")
	cmd.Flags().IntSliceVar(&world.Wind, "wind", world.Wind, "Upward wind strength of each column")
	cmd.Flags().Float64Var(&world.Calm, "calm", world.Calm, "Probability that the wind does not blow")
	cmd.Flags().Float64Var(&world.Base, "base", world.Base, "Probability that the wind blows with the column strength")
	cmd.Flags().Float64Var(&world.Gust, "gust", world.Gust, "Probability that the wind blows one cell stronger")
	cmd.Flags().IntVar(&world.Goal.Row, "goal-row", world.Goal.Row, "Row of the goal")
	cmd.Flags().IntVar(&world.Goal.Col, "goal-col", world.Goal.Col, "Column of the goal")
	cmd.Flags().Float64Var(&world.StepReward, "step-reward", world.StepReward, "Reward of every move")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
