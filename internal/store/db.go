package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-engine/internal/config"
	"github.com/MKhiriev/go-blog-engine/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// DB wraps the shared *sql.DB handle together with the driver name and the
// squirrel statement builder configured for that driver's placeholder style.
type DB struct {
	*sql.DB
	driver string
	sb     squirrel.StatementBuilderType
	logger *logger.Logger
}

// NewConnect opens the database described by cfg.DSN and verifies the
// connection with a ping.
//
// A DSN starting with "postgres://" or "postgresql://" selects the pgx
// driver; any other value is treated as a SQLite file path (":memory:"
// included). Placeholders are $N for both drivers, so the prepared query
// constants in this package work unchanged; only the squirrel builder needs
// the driver-specific placeholder format.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driver := driverForDSN(cfg.DSN)

	conn, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", driver).Msg("connected to database successfully")

	var placeholder squirrel.PlaceholderFormat = squirrel.Dollar
	if driver == "sqlite3" {
		placeholder = squirrel.Question
	}

	db := &DB{
		DB:     conn,
		driver: driver,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		logger: log,
	}

	return db, nil
}

// Driver returns the database/sql driver name the connection was opened
// with ("pgx" or "sqlite3"). Used to select the matching migration set.
func (db *DB) Driver() string {
	return db.driver
}

func driverForDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite3"
}

// isUniqueViolation reports whether err is a storage-level unique constraint
// conflict, for either backend. The UNIQUE indexes on posts.url and
// users.email make this the sole duplicate-key signal; there is no separate
// existence check before inserts.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
