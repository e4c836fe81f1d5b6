package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/replenish-inc/replenish/internal/interfaces/cli/migrate"
	"github.com/replenish-inc/replenish/internal/interfaces/cli/server"
	"github.com/replenish-inc/replenish/internal/interfaces/cli/sweep"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "replenish",
		Short: "Replenish - subscription delivery reminders",
		Long:  `Replenish runs the subscription delivery reminder service: the HTTP confirmation surface, the daily reminder sweep, and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
