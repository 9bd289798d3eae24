package user

import (
	"github.com/tossaporn/school-budget/internal"
)

// CreateUserDTO is the payload for direct administrative insertion.
type CreateUserDTO struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if !Role(dto.Role).Valid() {
		return internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	if !Department(dto.Department).Valid() {
		return internal.NewValidationError("unknown department", internal.ErrCodeValidationFailed)
	}
	return nil
}
