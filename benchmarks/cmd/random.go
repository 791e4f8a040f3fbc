package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeu5/markov-dp/benchmarks/random"
)

func RandomCommand() *cobra.Command {
	g := random.DefaultGenerator()

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Solve a seeded random MDP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, done := interruptContext()
			defer done()

			_, err := random.Run(ctx, flags, g, os.Stdout)
			return err
		},
	}
	cmd.Flags().IntVar(&g.States, "states", g.States, "Number of states")
	cmd.Flags().IntVar(&g.Actions, "actions", g.Actions, "Number of actions per state")
	cmd.Flags().IntVar(&g.Branching, "branching", g.Branching, "Number of successors of every state action pair")
	cmd.Flags().IntVar(&g.Terminals, "terminals", g.Terminals, "Number of terminal states")
	cmd.Flags().Float64Var(&g.MinReward, "min-reward", g.MinReward, "Lower bound of rewards")
	cmd.Flags().Float64Var(&g.MaxReward, "max-reward", g.MaxReward, "Upper bound of rewards")
	cmd.Flags().Float64Var(&g.Concentration, "concentration", g.Concentration, "Dirichlet concentration of transition probabilities")
	cmd.Flags().Uint64Var(&g.Seed, "seed", g.Seed, "Seed of the generator")

	return cmd
}
