package service

import (
	"context"
	"errors"
	"io"

	"ayudame3d-backend/internal/domain"
)

var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike, so the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("bad username or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetAuthenticatedUser(ctx context.Context, userID int32) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	CreateUser(ctx context.Context, email, password, fullName, phone string, roleID int32) (*domain.User, error)
	UpdateUser(ctx context.Context, id int32, email, fullName, phone string) (*domain.User, error)
	DeactivateUser(ctx context.Context, id int32) error
	ListHelpers(ctx context.Context) ([]domain.User, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// UploadFile is one multipart file handed to the order service for storage.
type UploadFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type OrderService interface {
	CreateOrder(ctx context.Context, helperID int32, description, longDescription string) (*domain.Order, error)
	GetOrder(ctx context.Context, id int32) (*domain.Order, error)
	// ListOrders applies the visibility rule: helpers see only their own
	// active, non-rejected orders; every other role sees all active orders.
	ListOrders(ctx context.Context, requester *domain.User) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id, helperID int32, description, longDescription string) (*domain.Order, error)
	AcceptOrder(ctx context.Context, id int32) (*domain.Order, error)
	RejectOrder(ctx context.Context, id int32) (*domain.Order, error)
	SetOrderReady(ctx context.Context, id int32) (*domain.Order, error)
	CompleteOrder(ctx context.Context, id int32) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int32) error
	SaveVideo(ctx context.Context, orderID, userID int32, name, url string) (*domain.Document, error)
	SaveFiles(ctx context.Context, orderID, userID int32, files []UploadFile) ([]domain.Document, error)
	SaveOrderAddress(ctx context.Context, orderID, userID int32, kind domain.AddressKind, addr *domain.Address) (*domain.Order, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
	// SendPendingReminders re-notifies helpers of orders stuck in Pending
	// longer than olderThanDays. Returns the number of reminders sent.
	SendPendingReminders(ctx context.Context, olderThanDays int) (int, error)
}

type DocumentService interface {
	ListOrderDocuments(ctx context.Context, orderID int32) ([]domain.Document, error)
	DeleteDocument(ctx context.Context, id int32) error
}

// EmailService dispatches one templated mail per order-lifecycle event.
// Sends are best-effort: callers log a failure and carry on.
type EmailService interface {
	SendNewOrder(ctx context.Context, helperEmail string, orderID int32) error
	SendOrderAccepted(ctx context.Context, orderID int32) error
	SendOrderRejected(ctx context.Context, orderID int32) error
	SendOrderStatusChanged(ctx context.Context, orderID int32, statusName string) error
	SendOrderNewData(ctx context.Context, orderID int32, statusName string) error
	SendOrderCompleted(ctx context.Context, helperEmail string, orderID int32) error
	SendPasswordReset(ctx context.Context, email, token string) error
}
