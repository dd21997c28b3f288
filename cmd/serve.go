package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	httpin "wholesale/internal/adapters/in/http"
	"wholesale/internal/adapters/out/postgres"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func newServeCommand(envFile *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			configs, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			defer closeDB(db, logger)

			if migrate {
				if err = postgres.Migrate(ctx, db); err != nil {
					return err
				}
			}

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			routerConfig := httpin.RouterConfig{
				IdempotencyTTL: configs.IdempotencyTTL,
				HealthCheck:    sqlDB.PingContext,
				LogLevel:       log.INFO,
			}
			if configs.RedisAddr != "" {
				client := redis.NewClient(&redis.Options{
					Addr:     configs.RedisAddr,
					Password: configs.RedisPassword,
					DB:       configs.RedisDB,
				})
				defer client.Close()
				routerConfig.Redis = client
			}

			app := NewCompositionRoot(configs, db, logger)
			e, err := httpin.NewRouter(httpin.NewServer(app.CreateHTTPHandlers()), routerConfig, logger)
			if err != nil {
				return err
			}

			if configs.JobsEnabled {
				jobManager := app.CreateJobManager()
				if err = jobManager.StartAll(); err != nil {
					return err
				}
				defer jobManager.StopAll()
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server listening", "port", configs.HTTPPort)
				serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
			}()

			select {
			case err = <-serverErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")
	return cmd
}
