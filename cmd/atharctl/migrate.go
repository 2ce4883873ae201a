package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ronrahal/athar-syria-s-hope/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, _ []string) error {
		if err := postgres.Migrate(ctx, e.pool, e.logger); err != nil {
			return err
		}
		cmd.Println("migrations up to date")
		return nil
	}),
}
