package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "markov-dp",
		Short:        "Solve benchmark MDPs with policy iteration and value iteration",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Validate(); err != nil {
				return err
			}
			return flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		GridWorldCommand(),
		ChainCommand(),
		RandomCommand(),
	)

	return cmd
}
