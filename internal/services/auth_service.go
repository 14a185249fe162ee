package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "taskphoto.com/taskphoto/internal/errors"
	model "taskphoto.com/taskphoto/internal/models"
	"taskphoto.com/taskphoto/internal/queue"
	repository "taskphoto.com/taskphoto/internal/repositories"
)

type AuthService struct {
	users  *repository.UserRepository
	guard  queue.LoginGuard
	delay  time.Duration
	logger *zap.Logger
}

func NewAuthService(
	users *repository.UserRepository,
	guard queue.LoginGuard,
	delay time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		guard:  guard,
		delay:  delay,
		logger: logger.Named("auth"),
	}
}

// Login matches email ignoring case and password exactly. While one attempt for an
// email is in flight, further attempts for it fail with ErrLoginInProgress.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.ErrCredentialsRequired
	}

	key := strings.ToLower(email)
	token, err := s.guard.Acquire(ctx, key)
	if err != nil {
		if errors.Is(err, queue.ErrAlreadyHeld) {
			return nil, apperrors.ErrLoginInProgress
		}
		return nil, err
	}
	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			s.logger.Warn("failed to release login guard", zap.Error(err))
		}
	}()

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	candidates, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		user := &candidates[i]
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			continue
		}
		if !user.Active {
			s.logger.Info("login refused for deactivated account", zap.Uint("user_id", user.ID))
			return nil, apperrors.ErrAccountDeactivated
		}
		s.logger.Info("login succeeded", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
		return user, nil
	}

	return nil, apperrors.ErrAccountNotFound
}

func (s *AuthService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
