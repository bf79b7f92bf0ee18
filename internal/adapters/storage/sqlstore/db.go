package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"medguardian/internal/domain/family"
	"medguardian/internal/domain/intake"
	"medguardian/internal/domain/medications"
	"medguardian/internal/domain/notifications"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

func ParseDriver(s string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postgres", "postgresql", "pgx":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", s)
	}
}

// DB envuelve el pool y recuerda el dialecto para reescribir placeholders.
type DB struct {
	*sql.DB
	driver Driver
}

func (db *DB) Driver() Driver { return db.driver }

// Open abre el pool según el driver y hace ping. No migra: ver Migrate.
func Open(driver Driver, dsn string) (*DB, error) {
	var (
		sqlDB *sql.DB
		err   error
	)

	switch driver {
	case DriverPostgres:
		sqlDB, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

	case DriverSQLite:
		sqlDB, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite serializa escrituras; con :memory: cada conexión sería otra base.
		sqlDB.SetMaxOpenConns(1)

	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &DB{DB: sqlDB, driver: driver}, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	// _time_format=sqlite guarda "YYYY-MM-DD HH:MM:SS.fff+00:00"; en UTC ordena como texto.
	q := "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	if path != ":memory:" {
		q += "&_pragma=journal_mode(WAL)"
	}
	return path + q
}

// Migrate aplica las migraciones embebidas del dialecto.
func (db *DB) Migrate(ctx context.Context) ([]*goose.MigrationResult, error) {
	dialect, dir := goose.DialectSQLite3, "migrations/sqlite"
	if db.driver == DriverPostgres {
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// rebind pasa los '?' a $1..$n en Postgres. Las queries del paquete no
// llevan '?' dentro de literales.
func (db *DB) rebind(q string) string {
	if db.driver != DriverPostgres {
		return q
	}

	var sb strings.Builder
	sb.Grow(len(q) + 8)
	n := 1
	for _, ch := range q {
		if ch == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func (db *DB) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	return db.ExecContext(ctx, db.rebind(q), args...)
}

func (db *DB) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	return db.QueryContext(ctx, db.rebind(q), args...)
}

func (db *DB) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return db.QueryRowContext(ctx, db.rebind(q), args...)
}

var (
	_ medications.Repository   = (*MedicationRepo)(nil)
	_ family.Repository        = (*FamilyRepo)(nil)
	_ intake.Repository        = (*IntakeRepo)(nil)
	_ notifications.Repository = (*NotificationRepo)(nil)
)
