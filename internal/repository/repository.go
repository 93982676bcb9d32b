package repository

import (
	"context"
	"errors"

	"ayudame3d-backend/internal/domain"
)

// ErrNotFound is returned by every repository read when the requested record
// does not exist, so callers never dereference an absent row.
var ErrNotFound = errors.New("record not found")

// Atomic bundles repositories whose writes are staged in one transaction.
type Atomic struct {
	Users     UserRepository
	Orders    OrderRepository
	Documents DocumentRepository
	Addresses AddressRepository
}

// TxRunner stages every write performed inside fn and commits them together;
// an error from fn rolls all of them back.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(Atomic) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListActiveByRole(ctx context.Context, roleID int32) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, id int32) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error

	// ListActive returns all active orders, newest first.
	ListActive(ctx context.Context) ([]domain.Order, error)
	// ListForHelper returns active, non-rejected orders assigned to the
	// helper, newest first.
	ListForHelper(ctx context.Context, helperID int32) ([]domain.Order, error)
	ListPendingOlderThan(ctx context.Context, days int) ([]domain.Order, error)
	Deactivate(ctx context.Context, id int32) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id int32) (*domain.Document, error)
	ListByOrder(ctx context.Context, orderID int32) ([]domain.Document, error)
	Delete(ctx context.Context, id int32) error
}

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetByID(ctx context.Context, id int32) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Address, error)
}

type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int32) (*domain.Role, error)
	Ensure(ctx context.Context, id int32, name string) error
}

type StatusRepository interface {
	List(ctx context.Context) ([]domain.Status, error)
	GetByID(ctx context.Context, id int32) (*domain.Status, error)
	Ensure(ctx context.Context, id int32, name string) error
}
