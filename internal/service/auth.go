package service

import (
	"context"
	"errors"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository"
	"ayudame3d-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo repository.UserRepository
	emailSvc EmailService
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, emailSvc EmailService, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		emailSvc: emailSvc,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessToken(user.ID)
}

func (s *authService) GetAuthenticatedUser(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ForgotPassword never reports whether the email exists; an unknown address
// is logged and the caller sees the same outcome as a known one.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	user.ResetPasswordToken = uuid.NewString()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.emailSvc.SendPasswordReset(ctx, user.Email, user.ResetPasswordToken); err != nil {
		logger.Error("failed to send password reset mail", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.ResetPasswordToken = ""
	return s.userRepo.Update(ctx, user)
}
