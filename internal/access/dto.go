package access

import (
	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/user"
)

type RequestAccessDTO struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func (dto RequestAccessDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if !user.Role(dto.Role).Valid() {
		return internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	if !user.Department(dto.Department).Valid() {
		return internal.NewValidationError("unknown department", internal.ErrCodeValidationFailed)
	}
	return nil
}
