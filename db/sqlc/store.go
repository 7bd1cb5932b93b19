package db

import (
	"context"
	"fmt"

	"github.com/Drolfothesgnir/m4tags/m4"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	GetFile(ctx context.Context, path string) (File, error)
	GetFileTags(ctx context.Context, path string) ([]m4.Tag, error)
	DeleteFile(ctx context.Context, path string) error
	ReplaceFileTagsTx(ctx context.Context, arg ReplaceFileTagsTxParams) (ReplaceFileTagsTxResult, error)
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

// execTx runs fn inside a database transaction, rolling it back if fn fails.
func (s *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// Shutdown closes the connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}
