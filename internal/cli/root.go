package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"medguardian/internal/adapters/storage/sqlstore"
	"medguardian/internal/config"
	"medguardian/internal/platform/logger"
)

// Flags globales; pisan lo que venga por env.
var (
	flagStorage    string
	flagDSN        string
	flagSQLitePath string
)

var rootCmd = &cobra.Command{
	Use:           "medguardian",
	Short:         "Medication adherence tracker",
	Long:          "medguardian registra medicamentos y tomas, avisa a la familia en cada toma y calcula la adherencia.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage driver: memory, sqlite, postgres (env STORAGE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "postgres DSN (env DB_DSN)")
	rootCmd.PersistentFlags().StringVar(&flagSQLitePath, "sqlite-path", "", "sqlite file (env SQLITE_PATH)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig lee env con los flags por encima.
func loadConfig() (config.Config, error) {
	overrides := map[string]string{
		"STORAGE_DRIVER": flagStorage,
		"DB_DSN":         flagDSN,
		"SQLITE_PATH":    flagSQLitePath,
		"PORT":           serveFlagPort,
	}
	return config.LoadFrom(func(k string) string {
		if v := overrides[k]; v != "" {
			return v
		}
		return os.Getenv(k)
	})
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    config.AppName,
		Writer: os.Stderr,
	})
}

// openStore devuelve nil para storage en memoria.
func openStore(cfg config.Config) (*sqlstore.DB, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return nil, nil
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return sqlstore.Open(sqlstore.DriverSQLite, cfg.SQLitePath)
	case config.StoragePostgres:
		return sqlstore.Open(sqlstore.DriverPostgres, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
