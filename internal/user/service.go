package user

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tossaporn/school-budget/internal"
)

// Repository defines the data access methods for the user registry.
type Repository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	GetAll() ([]*User, error)
	Delete(id string) error
}

// Service is the identity and role registry. Role and department are fixed at
// creation; the only mutation it supports is deletion.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AddUser registers an account with a fresh id and a generated avatar. Names
// are not unique; duplicates are allowed.
func (s *Service) AddUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user validation failed", "error", err, "name", dto.Name)
		return nil, err
	}

	u := &User{
		ID:         uuid.NewString(),
		Name:       dto.Name,
		Role:       Role(dto.Role),
		Department: Department(dto.Department),
		Avatar:     AvatarURL(dto.Name),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", u.ID,
		"role", u.Role,
		"department", u.Department)

	return u, nil
}

func (s *Service) GetByID(id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) ListUsers() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// DeleteUser removes an account. Admin accounts are protected and can never
// be deleted. Outstanding project ownership references are not checked.
func (s *Service) DeleteUser(id string) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("user not found for deletion", "error", err, "user_id", id)
		return internal.ErrUserNotFound
	}

	if u.IsAdmin() {
		s.logger.Warn("refusing to delete admin account", "user_id", id)
		return internal.ErrProtectedRole
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deleted", "user_id", id, "role", u.Role)
	return nil
}
