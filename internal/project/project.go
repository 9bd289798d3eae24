package project

import (
	"strings"
	"time"

	projectDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/project"
	"github.com/tossaporn/school-budget/internal/user"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// Project is a budget envelope. UsedBudget is derived from the request set
// and never set independently; every other field is fixed at creation except
// Status.
type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	FiscalYear   string          `json:"fiscal_year"`
	Department   user.Department `json:"department"`
	OwnerID      string          `json:"owner_id"`
	ProposerName string          `json:"proposer_name,omitempty"`
	TotalBudget  int64           `json:"total_budget"`
	UsedBudget   int64           `json:"used_budget"`
	Status       Status          `json:"status"`

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

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Remaining may go negative: approvals past the total are permitted and only
// reported, never blocked here.
func (p *Project) Remaining() int64 {
	return p.TotalBudget - p.UsedBudget
}

func (p *Project) IsActive() bool {
	return p.Status == StatusActive
}

// RequestUsage is the slice of an expense request the ledger needs to derive
// used budget.
type RequestUsage struct {
	ProjectID string
	Amount    int64
	Status    string
}

// Request statuses whose amounts count into a project's used budget.
const (
	usageStatusApproved  = "approved"
	usageStatusCompleted = "completed"
)

func countsTowardUsage(status string) bool {
	return status == usageStatusApproved || status == usageStatusCompleted
}

// RecomputeUsedBudgets re-derives every project's used budget from scratch as
// the sum of approved and completed request amounts referencing it. It is a
// pure fold: inputs are untouched, the result is a fresh slice. Running it
// twice over the same inputs yields identical output.
func RecomputeUsedBudgets(projects []*Project, usages []RequestUsage) []*Project {
	usedByProject := make(map[string]int64, len(projects))
	for _, u := range usages {
		if countsTowardUsage(u.Status) {
			usedByProject[u.ProjectID] += u.Amount
		}
	}

	result := make([]*Project, len(projects))
	for i, p := range projects {
		updated := *p
		updated.UsedBudget = usedByProject[p.ID]
		result[i] = &updated
	}
	return result
}

// VisibleTo filters projects by the viewer's role: director, finance and
// admin see everything, a department head sees their department, a teacher
// sees projects they own or that belong to their department.
func VisibleTo(viewer *user.User, projects []*Project) []*Project {
	switch viewer.Role {
	case user.RoleDirector, user.RoleFinance, user.RoleAdmin:
		return projects
	}

	visible := make([]*Project, 0, len(projects))
	for _, p := range projects {
		switch viewer.Role {
		case user.RoleHeadOfDepartment:
			if p.Department == viewer.Department {
				visible = append(visible, p)
			}
		case user.RoleTeacher:
			if p.OwnerID == viewer.ID || p.Department == viewer.Department {
				visible = append(visible, p)
			}
		}
	}
	return visible
}

func ToDataModel(p *Project) *projectDatamodel.Project {
	return &projectDatamodel.Project{
		ID:               p.ID,
		Name:             p.Name,
		FiscalYear:       p.FiscalYear,
		Department:       string(p.Department),
		OwnerID:          p.OwnerID,
		ProposerName:     p.ProposerName,
		TotalBudget:      p.TotalBudget,
		UsedBudget:       p.UsedBudget,
		Status:           string(p.Status),
		Activity:         p.Activity,
		Strategy:         p.Strategy,
		IsNewActivity:    p.IsNewActivity,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Rationale:        p.Rationale,
		Objectives:       strings.Join(p.Objectives, "\n"),
		GoalQuantitative: p.GoalQuantitative,
		GoalQualitative:  p.GoalQualitative,
		Procedures:       p.Procedures,
		Evaluation:       p.Evaluation,
		ExpectedOutcomes: p.ExpectedOutcomes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromDataModel(p *projectDatamodel.Project) *Project {
	var objectives []string
	if p.Objectives != "" {
		objectives = strings.Split(p.Objectives, "\n")
	}
	return &Project{
		ID:               p.ID,
		Name:             p.Name,
		FiscalYear:       p.FiscalYear,
		Department:       user.Department(p.Department),
		OwnerID:          p.OwnerID,
		ProposerName:     p.ProposerName,
		TotalBudget:      p.TotalBudget,
		UsedBudget:       p.UsedBudget,
		Status:           Status(p.Status),
		Activity:         p.Activity,
		Strategy:         p.Strategy,
		IsNewActivity:    p.IsNewActivity,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Rationale:        p.Rationale,
		Objectives:       objectives,
		GoalQuantitative: p.GoalQuantitative,
		GoalQualitative:  p.GoalQualitative,
		Procedures:       p.Procedures,
		Evaluation:       p.Evaluation,
		ExpectedOutcomes: p.ExpectedOutcomes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromDataModelSlice(projects []*projectDatamodel.Project) []*Project {
	result := make([]*Project, len(projects))
	for i, p := range projects {
		result[i] = FromDataModel(p)
	}
	return result
}
