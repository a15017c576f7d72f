package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/windygrid/experiment"
)

// ConfigCommand returns a command which prints the default experiment
// configuration as JSON, suitable as a starting point for --config
func ConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(experiment.DefaultConfig(), "",
				"\t")
			if err != nil {
				return fmt.Errorf("config: could not encode: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
