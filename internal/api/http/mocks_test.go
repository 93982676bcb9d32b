package http

import (
	"context"
	"testing"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/security"
	"ayudame3d-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) GetAuthenticatedUser(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, email, password, fullName, phone string, roleID int32) (*domain.User, error) {
	args := m.Called(ctx, email, password, fullName, phone, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, id int32, email, fullName, phone string) (*domain.User, error) {
	args := m.Called(ctx, id, email, fullName, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeactivateUser(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserService) ListHelpers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Role), args.Error(1)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, helperID int32, description, longDescription string) (*domain.Order, error) {
	args := m.Called(ctx, helperID, description, longDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, requester *domain.User) ([]domain.Order, error) {
	args := m.Called(ctx, requester)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) UpdateOrder(ctx context.Context, id, helperID int32, description, longDescription string) (*domain.Order, error) {
	args := m.Called(ctx, id, helperID, description, longDescription)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) AcceptOrder(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) RejectOrder(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) SetOrderReady(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) CompleteOrder(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) DeleteOrder(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderService) SaveVideo(ctx context.Context, orderID, userID int32, name, url string) (*domain.Document, error) {
	args := m.Called(ctx, orderID, userID, name, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockOrderService) SaveFiles(ctx context.Context, orderID, userID int32, files []service.UploadFile) ([]domain.Document, error) {
	args := m.Called(ctx, orderID, userID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockOrderService) SaveOrderAddress(ctx context.Context, orderID, userID int32, kind domain.AddressKind, addr *domain.Address) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID, kind, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Status), args.Error(1)
}
func (m *MockOrderService) SendPendingReminders(ctx context.Context, olderThanDays int) (int, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Int(0), args.Error(1)
}

// MockDocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) ListOrderDocuments(ctx context.Context, orderID int32) ([]domain.Document, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentService) DeleteDocument(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testTokenManager issues real tokens so middleware behavior is exercised
// end to end.
func testTokenManager() security.TokenManager {
	return security.NewTokenManager("handler-test-secret-0123456789abcdef", 60)
}

type routerMocks struct {
	auth      *MockAuthService
	users     *MockUserService
	orders    *MockOrderService
	documents *MockDocumentService
	tokens    security.TokenManager
}

func newTestRouter(t *testing.T) (*Router, *routerMocks) {
	t.Helper()
	m := &routerMocks{
		auth:      new(MockAuthService),
		users:     new(MockUserService),
		orders:    new(MockOrderService),
		documents: new(MockDocumentService),
		tokens:    testTokenManager(),
	}
	return NewRouter(m.auth, m.users, m.orders, m.documents, m.tokens), m
}
