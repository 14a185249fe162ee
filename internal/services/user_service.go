package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskphoto.com/taskphoto/internal/constants"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	"taskphoto.com/taskphoto/internal/lifecycle"
	model "taskphoto.com/taskphoto/internal/models"
	repository "taskphoto.com/taskphoto/internal/repositories"
)

const defaultDepartment = "Не указан"

type UserService struct {
	repo       *repository.UserRepository
	bcryptCost int
	now        func() time.Time
}

func NewUserService(repo *repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

type CreateUserInput struct {
	Name       string
	Email      string
	Password   string
	Role       constants.Role
	Department string
}

func (s *UserService) CreateUser(ctx context.Context, actor lifecycle.Actor, in CreateUserInput) (*model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, apperrors.ErrUserFieldsRequired
	}

	role := in.Role
	if role == "" {
		role = constants.RoleExecutor
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, role)
	}

	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Avatar:       initials(name, "??"),
		Department:   orDefault(in.Department, defaultDepartment),
		Active:       true,
		CreatedLabel: s.now().Format("02 Jan, 2006"),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleActive flips the active flag of user id. An admin cannot deactivate themselves.
func (s *UserService) ToggleActive(ctx context.Context, actor lifecycle.Actor, id uint) (*model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if id == actor.ID {
		return nil, apperrors.ErrSelfAction
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, id, !user.Active); err != nil {
		return nil, err
	}
	user.Active = !user.Active
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor lifecycle.Actor, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.ID {
		return apperrors.ErrSelfAction
	}
	return s.repo.Delete(ctx, id)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListUsers returns every account in id order. Only admins see the directory.
func (s *UserService) ListUsers(ctx context.Context, actor lifecycle.Actor) ([]model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Executors returns active executors, the candidates for task assignment.
func (s *UserService) Executors(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role == constants.RoleExecutor && u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

// ResolveActor turns a user id into the actor for a request. Unknown and inactive users are refused.
func (s *UserService) ResolveActor(ctx context.Context, id uint) (lifecycle.Actor, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return lifecycle.Actor{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return lifecycle.Actor{}, err
	}
	if !user.Active {
		return lifecycle.Actor{}, apperrors.ErrAccountDeactivated
	}
	return ActorOf(user), nil
}

func ActorOf(user *model.User) lifecycle.Actor {
	return lifecycle.Actor{ID: user.ID, Name: user.Name, Role: user.Role}
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func requireAdmin(actor lifecycle.Actor) error {
	if actor.Role != constants.RoleAdmin {
		return fmt.Errorf("%w: user administration needs %s, got %s",
			apperrors.ErrRoleNotAllowed, constants.RoleAdmin, actor.Role)
	}
	return nil
}
