// internal/database/store.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all queries plus transactional execution.
type Store interface {
	Querier
	// ExecTx runs fn inside a single transaction. The transaction commits only if fn returns nil.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is a Store backed by a Postgres connection pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore creates a SQLStore over pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx wraps fn in a database transaction.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback is a no-op if the transaction is already committed.

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Ping checks that the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
