package main

import (
	"github.com/deppfellow/transitsim/internal/config"
	"github.com/deppfellow/transitsim/internal/router"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the API routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return router.WriteBanner(cmd.OutOrStdout(), config.DefaultConfig().Server.Addr())
		},
	}
}
