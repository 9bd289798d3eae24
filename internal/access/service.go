package access

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/user"
)

// Repository defines the data access methods for pending access requests.
type Repository interface {
	Create(req *AccessRequest) error
	GetByID(id string) (*AccessRequest, error)
	GetAll() ([]*AccessRequest, error)
	Count() (int64, error)
	Delete(id string) error
}

// Registry is the slice of the user service onboarding needs.
type Registry interface {
	AddUser(dto user.CreateUserDTO) (*user.User, error)
}

// Service manages pending access requests and promotes approved ones into
// registry accounts.
type Service struct {
	repo     Repository
	registry Registry
	logger   *slog.Logger
}

func NewService(repo Repository, registry Registry, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		logger:   logger,
	}
}

// RequestAccess files a new application. It always succeeds for valid input;
// there is no dedup against existing users or other pending requests.
func (s *Service) RequestAccess(dto RequestAccessDTO) (*AccessRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("access request validation failed", "error", err, "name", dto.Name)
		return nil, err
	}

	req := &AccessRequest{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Department:  user.Department(dto.Department),
		Role:        user.Role(dto.Role),
		RequestDate: time.Now(),
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create access request", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("access requested",
		"access_request_id", req.ID,
		"role", req.Role,
		"department", req.Department)

	return req, nil
}

func (s *Service) List() ([]*AccessRequest, error) {
	reqs, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list access requests", "error", err)
		return nil, err
	}
	return reqs, nil
}

// PendingCount backs the admin sidebar badge.
func (s *Service) PendingCount() (int64, error) {
	return s.repo.Count()
}

// Approve converts a pending access request into a registry account. The user
// is created before the request is removed, so a failed creation leaves the
// request untouched.
func (s *Service) Approve(id string) (*user.User, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("access request not found for approval", "error", err, "access_request_id", id)
		return nil, internal.ErrAccessRequestNotFound
	}

	u, err := s.registry.AddUser(user.CreateUserDTO{
		Name:       req.Name,
		Department: string(req.Department),
		Role:       string(req.Role),
	})
	if err != nil {
		s.logger.Error("failed to promote access request", "error", err, "access_request_id", id)
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to remove approved access request", "error", err, "access_request_id", id)
		return nil, err
	}

	s.logger.Info("access request approved",
		"access_request_id", id,
		"user_id", u.ID,
		"role", u.Role)

	return u, nil
}

// Reject discards a pending access request. Removing an absent entry is a
// no-op: rejection is idempotent by construction.
func (s *Service) Reject(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to remove access request", "error", err, "access_request_id", id)
		return err
	}

	s.logger.Info("access request rejected", "access_request_id", id)
	return nil
}
