package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pc2-api/pkg/di"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema of every app",
		RunE: func(cmd *cobra.Command, args []string) error {
			container := di.NewContainer()
			// InitDatabase migrate ให้แล้ว
			if err := container.InitDatabase(); err != nil {
				return err
			}
			defer container.Cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
