package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"order-api/config"
	"order-api/controllers"
	"order-api/repository"
	"order-api/routes"
	"order-api/services"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, db, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			if err := repository.Migrate(db); err != nil {
				return err
			}

			publisher, closePublisher, err := newOrderPublisher(cfg, log)
			if err != nil {
				return err
			}
			defer closePublisher()

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			// Inisialisasi layer Service dengan dependensinya
			orderSvc := services.NewOrderService(repository.NewOrderRepository(db), publisher,
				cfg.Orders.DuplicateWindow, services.WithLogger(log))
			customerSvc := services.NewCustomerService(repository.NewCustomerRepository(db))
			productSvc := services.NewProductService(repository.NewProductRepository(db))

			app := routes.NewApp(log)
			routes.Setup(app, routes.Controllers{
				Orders:    controllers.NewOrderController(orderSvc),
				Customers: controllers.NewCustomerController(customerSvc),
				Products:  controllers.NewProductController(productSvc),
				Health:    controllers.NewHealthController(sqlDB, log),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.WithField("port", cfg.Server.Port).Info("Server is starting")
				return app.Listen(cfg.Server.Port)
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("shutting down http server")
				return app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
			})
			return g.Wait()
		},
	}
}

// newOrderPublisher returns the Kafka publisher when enabled, otherwise one
// that only logs. The returned func releases the producer.
func newOrderPublisher(cfg *config.Config, log *logrus.Logger) (services.IOrderEventPublisher, func(), error) {
	if !cfg.Kafka.Enabled {
		log.Info("kafka disabled, order events are only logged")
		return services.NewLogOrderPublisher(log), func() {}, nil
	}

	kafkaSvc, err := services.NewKafkaService(cfg.Kafka.Brokers, log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := kafkaSvc.Close(); err != nil {
			log.WithError(err).Error("failed to close kafka producer")
		}
	}
	return services.NewKafkaOrderPublisher(kafkaSvc, cfg.Kafka.Topic), closeFn, nil
}
