package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"order-api/repository"
)

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample customers and products",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			if err := repository.Migrate(db); err != nil {
				return err
			}
			// Data yang sudah ada dilewati, aman dijalankan berulang kali
			res, err := repository.Seed(cmd.Context(), db, repository.DefaultCustomers, repository.DefaultProducts)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"customers": res.Customers,
				"products":  res.Products,
			}).Info("Sample data seeding process finished.")
			return nil
		},
	}
}
