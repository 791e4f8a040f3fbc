package main

import (
	"os"

	"github.com/zeu5/markov-dp/benchmarks/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
