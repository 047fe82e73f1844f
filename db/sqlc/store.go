package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	CreateBatchTx(ctx context.Context, arg CreateBatchTxParams) (CreateBatchTxResult, error)
	GetBatchWithReports(ctx context.Context, id uuid.UUID) (BatchWithReports, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the connection pool.
func (store *SQLStore) Shutdown() {
	store.connPool.Close()
}
