package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const defaultPoolSize = 10

// OpenPostgres creates a connection-pooled PostgreSQL store. poolSize <= 0
// uses the default of 10 connections.
//
// TODO(test): PostgreSQL paths are covered only by the integration suite.
func OpenPostgres(ctx context.Context, connString string, poolSize int, opts ...Option) (*SQLStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Closing the *sql.DB does not close the pool it wraps.
	db := stdlib.OpenDBFromPool(pool)
	s := newSQLStore(db, dialectPostgres, opts...)
	s.closers = append(s.closers, pool.Close)
	return s, nil
}
