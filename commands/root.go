package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"order-api/config"
	"order-api/logging"
	"order-api/repository"
)

type options struct {
	configDir string
}

// NewRootCommand builds the order-api CLI with its serve, migrate and seed commands.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "order-api",
		Short:         "Order management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "./config", "directory containing config.yml")
	cmd.AddCommand(newServeCommand(opts), newMigrateCommand(opts), newSeedCommand(opts))
	return cmd
}

// bootstrap loads the configuration, builds the logger and opens the database.
func (o *options) bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(o.configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := repository.InitDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	log.WithField("driver", cfg.Database.Driver).Info("database connected")
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("failed to close database connection")
	}
}
