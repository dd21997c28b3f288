package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"wholesale/internal/adapters/out/postgres"
	"wholesale/internal/pkg/logging"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewRootCommand builds the wholesale CLI with its serve and migrate subcommands.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "wholesale",
		Short:         "Wholesale back-office service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")

	root.AddCommand(
		newServeCommand(&envFile),
		newMigrateCommand(&envFile),
	)
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and opens the database shared by every subcommand.
func bootstrap(envFile string) (Config, *slog.Logger, *gorm.DB, error) {
	configs, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(os.Stdout, configs.LogFormat, configs.LogLevel)
	slog.SetDefault(logger)

	db, err := postgres.Open(postgres.ConnectionConfig{
		Host:            configs.DBHost,
		Port:            configs.DBPort,
		User:            configs.DBUser,
		Password:        configs.DBPassword,
		DBName:          configs.DBName,
		SSLMode:         configs.DBSslMode,
		MaxIdleConns:    configs.DBMaxIdleConns,
		ConnMaxLifetime: configs.DBConnMaxLifetime,
	}, configs.DBMaxConcurrent, logger)
	if err != nil {
		return Config{}, nil, nil, err
	}

	return configs, logger, db, nil
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}
