package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr, "windygrid: ", 0)

func main() {
	rootCommand := &cobra.Command{
		Use:   "windygrid",
		Short: "Tabular Sarsa on the Windy Gridworld",
	}
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(ConfigCommand())

	if err := rootCommand.Execute(); err != nil {
		logger.Fatal(err)
	}
}
