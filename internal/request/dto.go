package request

import (
	"time"

	"github.com/tossaporn/school-budget/internal"
)

// SubmitRequestDTO is the payload for filing a new expense request. The
// template-specific fields are optional and opaque to the workflow.
type SubmitRequestDTO struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	FormType    string `json:"form_type"`

	Location          string     `json:"location,omitempty"`
	ActivityStartDate *time.Time `json:"activity_start_date,omitempty"`
	ActivityEndDate   *time.Time `json:"activity_end_date,omitempty"`
	PayeeName         string     `json:"payee_name,omitempty"`
	PayeeAddress      string     `json:"payee_address,omitempty"`
	PayeeIDCard       string     `json:"payee_id_card,omitempty"`
}

func (dto SubmitRequestDTO) Validate() error {
	if dto.ProjectID == "" {
		return internal.NewValidationError("project_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return internal.ErrInvalidAmount
	}
	if !Category(dto.Category).Valid() {
		return internal.NewValidationError("unknown budget category", internal.ErrCodeInvalidCategory)
	}
	if !FormType(dto.FormType).Valid() {
		return internal.NewValidationError("unknown form type", internal.ErrCodeInvalidFormType)
	}
	return nil
}

// RejectRequestDTO carries the optional note recorded with a rejection.
type RejectRequestDTO struct {
	Note string `json:"note,omitempty"`
}
