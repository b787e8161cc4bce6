package main

import (
	"os"

	"github.com/spf13/cobra"

	"miniticker/internal/interfaces/cli/createadmin"
	"miniticker/internal/interfaces/cli/migrate"
	"miniticker/internal/interfaces/cli/seed"
	"miniticker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "miniticker",
		Short: "Miniticker - internal help-desk ticketing service",
		Long:  `Miniticker runs the help-desk ticketing API along with its migration, seeding and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		createadmin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
