// Package db provides PostgreSQL database access for Fyyur.
package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Common errors.
var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned when a show points at a missing artist or venue.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrHasShows is returned when deleting a venue or artist that still has shows
	// under the restrict delete policy.
	ErrHasShows = errors.New("has shows")
)

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

//go:embed schema.sql
var schema string

// DeletePolicy decides what happens to the shows of a deleted venue or artist.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete an entity that still has shows.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade removes the entity's shows in the same transaction.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy converts a configuration value into a DeletePolicy.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeleteRestrict, DeleteCascade:
		return DeletePolicy(s), nil
	case "":
		return DeleteRestrict, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", s)
	}
}

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool   *pgxpool.Pool
	policy DeletePolicy
}

// Option configures a DB.
type Option func(*DB)

// WithDeletePolicy sets the policy applied when deleting venues and artists.
func WithDeletePolicy(p DeletePolicy) Option {
	return func(db *DB) {
		if p != "" {
			db.policy = p
		}
	}
}

// New creates a new database connection pool.
func New(ctx context.Context, databaseURL string, opts ...Option) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{pool: pool, policy: DeleteRestrict}
	for _, opt := range opts {
		opt(db)
	}
	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including when fn panics.
func (db *DB) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Venues returns a VenueRepository.
func (db *DB) Venues() *VenueRepository {
	return &VenueRepository{db: db}
}

// Artists returns an ArtistRepository.
func (db *DB) Artists() *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Shows returns a ShowRepository.
func (db *DB) Shows() *ShowRepository {
	return &ShowRepository{db: db}
}

// isForeignKeyViolation reports whether err is a Postgres FK violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
