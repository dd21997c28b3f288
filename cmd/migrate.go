package cmd

import (
	"wholesale/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			if err = postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			logger.Info("Schema is up to date")
			return nil
		},
	}
}
