package commands

import (
	"github.com/spf13/cobra"

	"order-api/repository"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			log.Info("Running database migrations...")
			if err := repository.Migrate(db); err != nil {
				return err
			}
			log.Info("Database migration complete.")
			return nil
		},
	}
}
