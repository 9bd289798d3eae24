package request

import (
	"time"

	requestDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/request"
	"github.com/tossaporn/school-budget/internal/user"
)

type Status string

const (
	// StatusDraft exists as the nominal initial state but nothing creates
	// drafts: submission goes straight to the head-of-department stage.
	StatusDraft           Status = "draft"
	StatusPendingHead     Status = "pending_head"
	StatusPendingFinance  Status = "pending_finance"
	StatusPendingDirector Status = "pending_director"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusCompleted       Status = "completed"
)

// IsPending reports whether the status is one of the ordered approval stages.
func (s Status) IsPending() bool {
	switch s {
	case StatusPendingHead, StatusPendingFinance, StatusPendingDirector:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions originate from the
// status, except approved which may still move to completed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// DirectorApprovalThreshold is the finance shortcut boundary: a request
// strictly below it skips the director stage. An amount of exactly the
// threshold still goes to the director.
const DirectorApprovalThreshold = 50000

// stageApprover maps each pending stage to the single role allowed to act on
// it. A lookup table rather than branching so the stage set stays in one
// place.
var stageApprover = map[Status]user.Role{
	StatusPendingHead:     user.RoleHeadOfDepartment,
	StatusPendingFinance:  user.RoleFinance,
	StatusPendingDirector: user.RoleDirector,
}

// RequiredApprover returns the role gating the given stage.
func RequiredApprover(s Status) (user.Role, bool) {
	role, ok := stageApprover[s]
	return role, ok
}

// NextStatus computes the stage that follows an approval of the given status,
// applying the finance shortcut for small amounts.
func NextStatus(current Status, amount int64) Status {
	switch current {
	case StatusPendingHead:
		return StatusPendingFinance
	case StatusPendingFinance:
		if amount < DirectorApprovalThreshold {
			return StatusApproved
		}
		return StatusPendingDirector
	case StatusPendingDirector:
		return StatusApproved
	}
	return current
}

// queueStatus maps each approver role to the stage whose queue it works.
var queueStatus = map[user.Role]Status{
	user.RoleHeadOfDepartment: StatusPendingHead,
	user.RoleFinance:          StatusPendingFinance,
	user.RoleDirector:         StatusPendingDirector,
}

type FormType string

const (
	FormActivityBudget      FormType = "ngor_por_01"
	FormDisbursement        FormType = "ngor_por_02"
	FormLoanContract        FormType = "ngor_por_03"
	FormSpeakerRemuneration FormType = "ngor_por_06"
	FormPaymentReceipt      FormType = "ngor_por_08"
)

func (f FormType) Valid() bool {
	switch f {
	case FormActivityBudget, FormDisbursement, FormLoanContract, FormSpeakerRemuneration, FormPaymentReceipt:
		return true
	}
	return false
}

type Category string

const (
	CategoryPersonnel    Category = "personnel"
	CategoryRemuneration Category = "remuneration"
	CategoryServices     Category = "services"
	CategoryMaterials    Category = "materials"
	CategoryUtilities    Category = "utilities"
	CategoryDurableGoods Category = "durable_goods"
	CategoryConstruction Category = "construction"
	CategorySubsidy      Category = "subsidy"
	CategoryOther        Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonnel, CategoryRemuneration, CategoryServices, CategoryMaterials,
		CategoryUtilities, CategoryDurableGoods, CategoryConstruction, CategorySubsidy, CategoryOther:
		return true
	}
	return false
}

// ExpenseRequest is a draw against exactly one project. The project reference
// is immutable after creation; status is the only field that ever changes.
type ExpenseRequest struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      Category  `json:"category"`
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	Status        Status    `json:"status"`
	Note          string    `json:"note,omitempty"`
	FormType      FormType  `json:"form_type"`

	Location          string     `json:"location,omitempty"`
	ActivityStartDate *time.Time `json:"activity_start_date,omitempty"`
	ActivityEndDate   *time.Time `json:"activity_end_date,omitempty"`
	LoanContractNo    string     `json:"loan_contract_no,omitempty"`
	PayeeName         string     `json:"payee_name,omitempty"`
	PayeeAddress      string     `json:"payee_address,omitempty"`
	PayeeIDCard       string     `json:"payee_id_card,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDataModel(e *ExpenseRequest) *requestDatamodel.ExpenseRequest {
	return &requestDatamodel.ExpenseRequest{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		RequesterID:       e.RequesterID,
		RequesterName:     e.RequesterName,
		Title:             e.Title,
		Description:       e.Description,
		Category:          string(e.Category),
		Amount:            e.Amount,
		Date:              e.Date,
		Status:            string(e.Status),
		Note:              e.Note,
		FormType:          string(e.FormType),
		Location:          e.Location,
		ActivityStartDate: e.ActivityStartDate,
		ActivityEndDate:   e.ActivityEndDate,
		LoanContractNo:    e.LoanContractNo,
		PayeeName:         e.PayeeName,
		PayeeAddress:      e.PayeeAddress,
		PayeeIDCard:       e.PayeeIDCard,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromDataModel(e *requestDatamodel.ExpenseRequest) *ExpenseRequest {
	return &ExpenseRequest{
		ID:                e.ID,
		ProjectID:         e.ProjectID,
		RequesterID:       e.RequesterID,
		RequesterName:     e.RequesterName,
		Title:             e.Title,
		Description:       e.Description,
		Category:          Category(e.Category),
		Amount:            e.Amount,
		Date:              e.Date,
		Status:            Status(e.Status),
		Note:              e.Note,
		FormType:          FormType(e.FormType),
		Location:          e.Location,
		ActivityStartDate: e.ActivityStartDate,
		ActivityEndDate:   e.ActivityEndDate,
		LoanContractNo:    e.LoanContractNo,
		PayeeName:         e.PayeeName,
		PayeeAddress:      e.PayeeAddress,
		PayeeIDCard:       e.PayeeIDCard,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromDataModelSlice(reqs []*requestDatamodel.ExpenseRequest) []*ExpenseRequest {
	result := make([]*ExpenseRequest, len(reqs))
	for i, e := range reqs {
		result[i] = FromDataModel(e)
	}
	return result
}
