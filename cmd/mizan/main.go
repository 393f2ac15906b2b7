package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mizan-app/mizan/internal/interfaces/cli/migrate"
	"github.com/mizan-app/mizan/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mizan",
		Short: "Mizan - business plan drafting for Moroccan entrepreneurs",
		Long:  `Mizan helps first-time entrepreneurs draft a business plan: market study, SWOT, financial structure, projections and a printable report.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
