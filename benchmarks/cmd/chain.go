package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/zeu5/markov-dp/benchmarks/chain"
)

func ChainCommand() *cobra.Command {
	c := chain.DefaultChain()
	var selfLoop bool

	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Solve a corridor of states ending in an absorbing state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, done := interruptContext()
			defer done()

			var err error
			if selfLoop {
				_, err = chain.RunSelfLoop(ctx, flags, c.StayReward, os.Stdout)
			} else {
				_, err = chain.Run(ctx, flags, c, os.Stdout)
			}
			return err
		},
	}
	cmd.Flags().IntVar(&c.Length, "length", c.Length, "Number of states")
	cmd.Flags().Float64Var(&c.AdvanceReward, "advance-reward", c.AdvanceReward, "Reward of advancing")
	cmd.Flags().Float64Var(&c.EndReward, "end-reward", c.EndReward, "Reward of reaching the last state")
	cmd.Flags().Float64Var(&c.StayReward, "stay-reward", c.StayReward, "Reward of staying")
	cmd.Flags().Float64Var(&c.Slip, "slip", c.Slip, "Probability that advancing stays in place")
	cmd.Flags().BoolVar(&selfLoop, "self-loop", false, "Solve a single self looping state with the stay reward instead")

	return cmd
}
