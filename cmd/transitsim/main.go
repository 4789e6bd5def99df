package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "transitsim",
		Short:        "Canned transit-optimization API",
		SilenceUsage: true,
		// Running without a subcommand serves the API.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (optional)")

	root.AddCommand(
		newServeCmd(&configPath),
		newRoutesCmd(),
		newSampleCmd(&configPath),
		newVersionCmd(),
	)

	return root
}
