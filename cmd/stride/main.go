package main

import (
	"os"

	"github.com/spf13/cobra"

	"stride/internal/interfaces/cli/migrate"
	"stride/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stride",
		Short: "Stride - a project management backend",
		Long:  `Stride is a multi-tenant project management backend with projects, epics, stories, tasks, bugs, and comments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
