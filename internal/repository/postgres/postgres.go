package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"scooter-rental/internal/repository"

	_ "github.com/lib/pq"
)

// Queryer is satisfied by both *sql.DB and *sql.Tx, so the same repository
// code serves plain calls and transactional ones.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.ScooterRepository
	repository.RentalPeriodRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ScooterRepository:      NewScooterRepository(db),
		RentalPeriodRepository: NewRentalPeriodRepository(db),
	}
}

// WithinTx runs fn with repositories bound to a single transaction,
// committing on success and rolling back on error or panic.
func (s *Store) WithinTx(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	repos := repository.Repositories{
		Scooters:      NewScooterRepository(tx),
		RentalPeriods: NewRentalPeriodRepository(tx),
	}

	if err := fn(repos); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
