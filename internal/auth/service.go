package auth

import (
	"log/slog"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/user"
)

// UserLoader resolves an account id to its registry record.
type UserLoader interface {
	GetByID(id string) (*user.User, error)
}

// Service issues session tokens for registered accounts. There are no
// credentials: signing in means picking an account that onboarding created,
// which mirrors how the school actually operates the system.
type Service struct {
	users  UserLoader
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(users UserLoader, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

type LoginDTO struct {
	UserID string `json:"user_id"`
}

func (dto LoginDTO) Validate() error {
	if dto.UserID == "" {
		return internal.NewValidationError("user_id is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type SessionResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s *Service) Login(dto LoginDTO) (*SessionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(dto.UserID)
	if err != nil {
		s.logger.Warn("login for unknown user", "user_id", dto.UserID)
		return nil, internal.ErrUserNotFound
	}

	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", u.ID)
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	return &SessionResponse{Token: token, User: u}, nil
}

// Resolve validates a token and loads the current registry record behind it.
func (s *Service) Resolve(tokenString string) (*user.User, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}
	return u, nil
}
