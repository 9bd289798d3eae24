package project

import "time"

type Project struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"column:name;not null"`
	FiscalYear   string `gorm:"column:fiscal_year;not null"`
	Department   string `gorm:"column:department;not null"`
	OwnerID      string `gorm:"column:owner_id;not null"`
	ProposerName string `gorm:"column:proposer_name"`
	TotalBudget  int64  `gorm:"column:total_budget;not null;default:0"`
	UsedBudget   int64  `gorm:"column:used_budget;not null;default:0"`
	Status       string `gorm:"column:status;default:active"`

	Activity         string     `gorm:"column:activity"`
	Strategy         string     `gorm:"column:strategy"`
	IsNewActivity    bool       `gorm:"column:is_new_activity;default:false"`
	StartDate        *time.Time `gorm:"column:start_date;type:date"`
	EndDate          *time.Time `gorm:"column:end_date;type:date"`
	Rationale        string     `gorm:"column:rationale"`
	Objectives       string     `gorm:"column:objectives"`
	GoalQuantitative string     `gorm:"column:goal_quantitative"`
	GoalQualitative  string     `gorm:"column:goal_qualitative"`
	Procedures       string     `gorm:"column:procedures"`
	Evaluation       string     `gorm:"column:evaluation"`
	ExpectedOutcomes string     `gorm:"column:expected_outcomes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
