package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zeu5/markov-dp/benchmarks/common"
)

var flags *common.Flags = common.DefaultFlags()

func AddFlags(cmd *cobra.Command) {
	flags.AddFlags(cmd.PersistentFlags())
}

// interruptContext returns a context that is cancelled on an interrupt from
// the os or once done is called
func interruptContext() (context.Context, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	doneCh := make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		signal.Stop(sigCh)
		cancel()
	}()
	return ctx, func() { close(doneCh) }
}
