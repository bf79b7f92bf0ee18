package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"medguardian/internal/platform/logger"
)

const AppName = "medguardian"

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StorageSQLite   StorageDriver = "sqlite"
	StoragePostgres StorageDriver = "postgres"
)

// Config se arma desde env; los flags de la CLI pisan valores después de Load.
type Config struct {
	Port string

	Storage    StorageDriver
	DSN        string // postgres
	SQLitePath string

	// Sin secreto no hay verifier y se acepta X-Debug-User-ID (modo dev).
	JWTSecret string
	JWTIssuer string

	DispatchConcurrency int

	LogLevel  logger.Level
	LogFormat logger.Format
}

// DefaultSQLitePath: $XDG_DATA_HOME/medguardian/medguardian.db
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, AppName, AppName+".db")
}

func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom permite inyectar el lookup de env (tests).
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:                strings.TrimSpace(getenv("PORT")),
		DSN:                 strings.TrimSpace(getenv("DB_DSN")),
		SQLitePath:          strings.TrimSpace(getenv("SQLITE_PATH")),
		JWTSecret:           getenv("JWT_SECRET"),
		JWTIssuer:           strings.TrimSpace(getenv("JWT_ISSUER")),
		DispatchConcurrency: 4,
		LogLevel:            logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat:           logger.ParseFormat(getenv("LOG_FORMAT")),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	driver := strings.ToLower(strings.TrimSpace(getenv("STORAGE_DRIVER")))
	switch driver {
	case "":
		// Compatibilidad: con DB_DSN y sin driver explícito se asume postgres.
		cfg.Storage = StorageMemory
		if cfg.DSN != "" {
			cfg.Storage = StoragePostgres
		}
	default:
		cfg.Storage = StorageDriver(driver)
	}

	if v := strings.TrimSpace(getenv("DISPATCH_CONCURRENCY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("DISPATCH_CONCURRENCY: %w", err)
		}
		cfg.DispatchConcurrency = n
	}

	if cfg.Storage == StorageSQLite && cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath()
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DSN == "" {
			return fmt.Errorf("DB_DSN is required for storage %q", c.Storage)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage)
	}
	if c.DispatchConcurrency <= 0 {
		return fmt.Errorf("DISPATCH_CONCURRENCY must be positive, got %d", c.DispatchConcurrency)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) DevMode() bool {
	return c.JWTSecret == ""
}
