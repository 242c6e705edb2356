package pgkv

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/trezcool/unirepo/core"
)

// MigrationsDir is the directory of MigrationsFS holding the goose migrations.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var MigrationsFS embed.FS

// Storage keeps every item as a row of the kv_item table, keyed by (origin, key).
type Storage struct {
	db     *sqlx.DB
	origin string
}

var _ core.Storage = (*Storage)(nil) // interface compliance check

// Open connects to the database at dsn and waits for it to be ready.
// Migrations are applied separately, see Migrate.
func Open(ctx context.Context, dsn, origin string) (*Storage, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db, origin: origin}, nil
}

// DB exposes the underlying connection pool, for migrations.
func (s *Storage) DB() *sql.DB { return s.db.DB }

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 20
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping cancelled")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

// Migrate brings the schema up to date.
func Migrate(db *sql.DB) error {
	if err := goose.Up(db, MigrationsFS, MigrationsDir); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := s.db.GetContext(ctx, &val, `SELECT value FROM kv_item WHERE origin = $1 AND key = $2`, s.origin, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_item (origin, key, value, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (origin, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		s.origin, key, value,
	)
	return err
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_item WHERE origin = $1 AND key = $2`, s.origin, key)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}
