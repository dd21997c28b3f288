package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DBMaxConcurrent bounds open transactions; the connection pool is sized from it.
	DBMaxConcurrent   int64
	DBAcquireTimeout  time.Duration
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	ShutdownTimeout   time.Duration

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	IdempotencyTTL time.Duration

	JobsEnabled          bool
	TotalsAuditSchedule  string
	OrphanSweepSchedule  string
	OrphanSweepBatchSize int

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"HTTP_PORT":               "8080",
	"DB_HOST":                 "localhost",
	"DB_PORT":                 "5432",
	"DB_USER":                 "postgres",
	"DB_PASSWORD":             "",
	"DB_NAME":                 "wholesale",
	"DB_SSLMODE":              "disable",
	"DB_MAX_CONCURRENT":       10,
	"DB_ACQUIRE_TIMEOUT":      "5s",
	"DB_MAX_IDLE_CONNS":       5,
	"DB_CONN_MAX_LIFETIME":    "30m",
	"SHUTDOWN_TIMEOUT":        "15s",
	"REDIS_ADDR":              "",
	"REDIS_PASSWORD":          "",
	"REDIS_DB":                0,
	"IDEMPOTENCY_TTL":         "24h",
	"JOBS_ENABLED":            true,
	"TOTALS_AUDIT_SCHEDULE":   "0 */15 * * * *",
	"ORPHAN_SWEEP_SCHEDULE":   "0 30 3 * * *",
	"ORPHAN_SWEEP_BATCH_SIZE": 500,
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort: v.GetString("HTTP_PORT"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		DBMaxConcurrent:   v.GetInt64("DB_MAX_CONCURRENT"),
		DBAcquireTimeout:  v.GetDuration("DB_ACQUIRE_TIMEOUT"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),

		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		IdempotencyTTL: v.GetDuration("IDEMPOTENCY_TTL"),

		JobsEnabled:          v.GetBool("JOBS_ENABLED"),
		TotalsAuditSchedule:  v.GetString("TOTALS_AUDIT_SCHEDULE"),
		OrphanSweepSchedule:  v.GetString("ORPHAN_SWEEP_SCHEDULE"),
		OrphanSweepBatchSize: v.GetInt("ORPHAN_SWEEP_BATCH_SIZE"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var err error
	if c.HTTPPort == "" {
		err = errors.Join(err, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		err = errors.Join(err, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.DBMaxConcurrent <= 0 {
		err = errors.Join(err, fmt.Errorf("DB_MAX_CONCURRENT must be positive, got %d", c.DBMaxConcurrent))
	}
	if c.OrphanSweepBatchSize <= 0 {
		err = errors.Join(err, fmt.Errorf("ORPHAN_SWEEP_BATCH_SIZE must be positive, got %d", c.OrphanSweepBatchSize))
	}
	return err
}
