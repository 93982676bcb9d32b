package service

import (
	"context"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
	"ayudame3d-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListActiveByRole(ctx context.Context, roleID int32) ([]domain.User, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) ListActive(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListForHelper(ctx context.Context, helperID int32) ([]domain.Order, error) {
	args := m.Called(ctx, helperID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListPendingOlderThan(ctx context.Context, days int) ([]domain.Order, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListByOrder(ctx context.Context, orderID int32) ([]domain.Document, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAddressRepo
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) Create(ctx context.Context, addr *domain.Address) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}
func (m *MockAddressRepo) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Address), args.Error(1)
}

// MockRoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) List(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Role), args.Error(1)
}
func (m *MockRoleRepo) GetByID(ctx context.Context, id int32) (*domain.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockRoleRepo) Ensure(ctx context.Context, id int32, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

// MockStatusRepo
type MockStatusRepo struct {
	mock.Mock
}

func (m *MockStatusRepo) List(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Status), args.Error(1)
}
func (m *MockStatusRepo) GetByID(ctx context.Context, id int32) (*domain.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Status), args.Error(1)
}
func (m *MockStatusRepo) Ensure(ctx context.Context, id int32, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendNewOrder(ctx context.Context, helperEmail string, orderID int32) error {
	args := m.Called(ctx, helperEmail, orderID)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderAccepted(ctx context.Context, orderID int32) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderRejected(ctx context.Context, orderID int32) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderStatusChanged(ctx context.Context, orderID int32, statusName string) error {
	args := m.Called(ctx, orderID, statusName)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderNewData(ctx context.Context, orderID int32, statusName string) error {
	args := m.Called(ctx, orderID, statusName)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderCompleted(ctx context.Context, helperEmail string, orderID int32) error {
	args := m.Called(ctx, helperEmail, orderID)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

// stubTxRunner runs fn immediately against the supplied repositories, so
// staged writes behave like direct ones in tests.
type stubTxRunner struct {
	atomic repository.Atomic
}

func (s *stubTxRunner) WithinTx(ctx context.Context, fn func(repository.Atomic) error) error {
	return fn(s.atomic)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
