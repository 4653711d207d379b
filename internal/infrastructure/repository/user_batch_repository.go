package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

// UserBatchRepository is the persistence gateway for the ingest workers.
// Each session is one transaction; AddAll streams the whole batch with COPY.
type UserBatchRepository struct {
	pool *pgxpool.Pool
}

func NewUserBatchRepository(pool *pgxpool.Pool) *UserBatchRepository {
	return &UserBatchRepository{pool: pool}
}

func (r *UserBatchRepository) OpenSession(ctx context.Context) (app.BatchSession, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &batchSession{tx: tx}, nil
}

type batchSession struct {
	tx       pgx.Tx
	finished bool
}

func (s *batchSession) AddAll(ctx context.Context, records []domain.User) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, []any{
			record.FirstName,
			record.LastName,
			record.Age,
			record.Email,
			record.FileName,
			now,
			now,
		})
	}

	if _, err := s.tx.CopyFrom(
		ctx,
		pgx.Identifier{"users"},
		[]string{"first_name", "last_name", "age", "email", "file_name", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy users: %w", err)
	}

	return nil
}

func (s *batchSession) Commit(ctx context.Context) error {
	if err := s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	s.finished = true
	return nil
}

func (s *batchSession) Rollback(ctx context.Context) error {
	if s.finished {
		return nil
	}
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback batch: %w", err)
	}
	s.finished = true
	return nil
}

// Close releases the session, rolling back if nothing was committed. Safe to
// call more than once and after Commit or Rollback.
func (s *batchSession) Close(ctx context.Context) error {
	return s.Rollback(ctx)
}
