package db

import (
	"context"

	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store adds transactional execution on top of Querier.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is the pgxpool backed Store.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{Queries: New(pool), pool: pool}
}

// ExecTx runs fn with a Querier bound to a single transaction.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	return helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(s.Queries.WithTx(tx))
	})
}

var _ Store = (*SQLStore)(nil)
