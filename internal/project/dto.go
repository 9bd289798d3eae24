package project

import (
	"time"

	"github.com/tossaporn/school-budget/internal"
)

// CreateProjectDTO carries the proposer-editable fields. Department and owner
// come from the acting user, used budget always starts at zero.
type CreateProjectDTO struct {
	Name         string `json:"name"`
	FiscalYear   string `json:"fiscal_year"`
	ProposerName string `json:"proposer_name,omitempty"`
	TotalBudget  int64  `json:"total_budget"`

	Activity         string     `json:"activity,omitempty"`
	Strategy         string     `json:"strategy,omitempty"`
	IsNewActivity    bool       `json:"is_new_activity,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Rationale        string     `json:"rationale,omitempty"`
	Objectives       []string   `json:"objectives,omitempty"`
	GoalQuantitative string     `json:"goal_quantitative,omitempty"`
	GoalQualitative  string     `json:"goal_qualitative,omitempty"`
	Procedures       string     `json:"procedures,omitempty"`
	Evaluation       string     `json:"evaluation,omitempty"`
	ExpectedOutcomes string     `json:"expected_outcomes,omitempty"`
}

func (dto CreateProjectDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationError("project name is required", internal.ErrCodeValidationFailed)
	}
	if dto.TotalBudget < 0 {
		return internal.NewValidationError("total budget cannot be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}
