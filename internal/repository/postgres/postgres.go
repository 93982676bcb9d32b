package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx. Repositories run
// against it so a request can stage several writes in one transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.OrderRepository
	repository.DocumentRepository
	repository.AddressRepository
	repository.RoleRepository
	repository.StatusRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		UserRepository:     NewUserRepository(db),
		OrderRepository:    NewOrderRepository(db),
		DocumentRepository: NewDocumentRepository(db),
		AddressRepository:  NewAddressRepository(db),
		RoleRepository:     NewRoleRepository(db),
		StatusRepository:   NewStatusRepository(db),
	}
}

// WithinTx runs fn against repositories whose writes are staged in a single
// transaction. The writes become durable only when fn returns nil; any error
// rolls everything back.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Atomic) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	atomic := repository.Atomic{
		Users:     NewUserRepository(tx),
		Orders:    NewOrderRepository(tx),
		Documents: NewDocumentRepository(tx),
		Addresses: NewAddressRepository(tx),
	}
	if err := fn(atomic); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

// notFound translates the driver's absence signal into the repository error.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
