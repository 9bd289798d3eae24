package request

import "time"

type ExpenseRequest struct {
	ID            string    `gorm:"primaryKey"`
	ProjectID     string    `gorm:"column:project_id;not null;index"`
	RequesterID   string    `gorm:"column:requester_id;not null"`
	RequesterName string    `gorm:"column:requester_name"`
	Title         string    `gorm:"column:title;not null"`
	Description   string    `gorm:"column:description"`
	Category      string    `gorm:"column:category;not null"`
	Amount        int64     `gorm:"column:amount;not null"`
	Date          time.Time `gorm:"column:date;type:date"`
	Status        string    `gorm:"column:status;default:pending_head;index"`
	Note          string    `gorm:"column:note"`
	FormType      string    `gorm:"column:form_type;not null"`

	Location          string     `gorm:"column:location"`
	ActivityStartDate *time.Time `gorm:"column:activity_start_date;type:date"`
	ActivityEndDate   *time.Time `gorm:"column:activity_end_date;type:date"`
	LoanContractNo    string     `gorm:"column:loan_contract_no"`
	PayeeName         string     `gorm:"column:payee_name"`
	PayeeAddress      string     `gorm:"column:payee_address"`
	PayeeIDCard       string     `gorm:"column:payee_id_card"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ExpenseRequest) TableName() string {
	return "expense_requests"
}
