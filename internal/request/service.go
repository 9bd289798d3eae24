package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/core/events"
	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/user"
)

// Repository defines the data access methods for expense requests. Requests
// are never deleted; rejected ones stay as terminal records.
type Repository interface {
	Create(req *ExpenseRequest) error
	GetByID(id string) (*ExpenseRequest, error)
	GetAll() ([]*ExpenseRequest, error)
	GetByStatus(statuses []Status) ([]*ExpenseRequest, error)
	GetByRequester(requesterID string) ([]*ExpenseRequest, error)
	UpdateStatus(id string, status Status, note string) error
}

// Ledger is the slice of the project service the workflow consults at
// submission time.
type Ledger interface {
	GetByID(id string) (*project.Project, error)
}

// Publisher dispatches workflow events. Dispatch must be synchronous so the
// ledger recompute completes before the mutating call returns.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service runs the approval workflow state machine.
type Service struct {
	repo   Repository
	ledger Ledger
	bus    Publisher
	policy internal.WorkflowConfig
	logger *slog.Logger
}

func NewService(repo Repository, ledger Ledger, bus Publisher, policy internal.WorkflowConfig, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		bus:    bus,
		policy: policy,
		logger: logger,
	}
}

// Submit files a new expense request against a project. The workflow itself
// only requires a positive amount; the remaining-budget guard sits here at
// the orchestration boundary and can be switched off by policy. Every
// request starts at the head-of-department stage.
func (s *Service) Submit(ctx context.Context, dto SubmitRequestDTO, actor *user.User) (*ExpenseRequest, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("request validation failed", "error", err, "requester_id", actor.ID)
		return nil, err
	}

	proj, err := s.ledger.GetByID(dto.ProjectID)
	if err != nil {
		s.logger.Error("project not found for submission", "error", err, "project_id", dto.ProjectID)
		return nil, internal.ErrProjectNotFound
	}

	if !proj.IsActive() {
		s.logger.Warn("submission against closed project", "project_id", proj.ID, "requester_id", actor.ID)
		return nil, internal.ErrProjectClosed
	}

	if !s.policy.AllowOverBudget && dto.Amount > proj.Remaining() {
		s.logger.Warn("submission exceeds remaining budget",
			"project_id", proj.ID,
			"amount", dto.Amount,
			"remaining", proj.Remaining())
		return nil, internal.ErrInsufficientBudget
	}

	now := time.Now()
	req := &ExpenseRequest{
		ID:                uuid.NewString(),
		ProjectID:         dto.ProjectID,
		RequesterID:       actor.ID,
		RequesterName:     actor.Name,
		Title:             dto.Title,
		Description:       dto.Description,
		Category:          Category(dto.Category),
		Amount:            dto.Amount,
		Date:              now,
		Status:            StatusPendingHead,
		FormType:          FormType(dto.FormType),
		Location:          dto.Location,
		ActivityStartDate: dto.ActivityStartDate,
		ActivityEndDate:   dto.ActivityEndDate,
		PayeeName:         dto.PayeeName,
		PayeeAddress:      dto.PayeeAddress,
		PayeeIDCard:       dto.PayeeIDCard,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create request", "error", err, "requester_id", actor.ID)
		return nil, err
	}

	s.logger.Info("expense request submitted",
		"request_id", req.ID,
		"project_id", req.ProjectID,
		"requester_id", actor.ID,
		"amount", req.Amount,
		"form_type", req.FormType)

	if err := s.bus.Publish(ctx, events.NewRequestSubmitted(req.ID, req.ProjectID, actor.ID, req.Amount)); err != nil {
		return nil, err
	}

	return req, nil
}

// Advance moves a request one step along its approval chain. The acting
// user's role must be the approver for the request's current stage; anything
// else is a hard authorization failure, not a silent no-op. The finance stage
// routes amounts strictly below the director threshold straight to approved.
func (s *Service) Advance(ctx context.Context, requestID string, actor *user.User) (*ExpenseRequest, error) {
	req, err := s.repo.GetByID(requestID)
	if err != nil {
		s.logger.Error("request not found for advance", "error", err, "request_id", requestID)
		return nil, internal.ErrRequestNotFound
	}

	required, ok := RequiredApprover(req.Status)
	if !ok {
		s.logger.Warn("cannot advance request in current status",
			"request_id", requestID,
			"status", req.Status)
		return nil, internal.ErrInvalidRequestStatus
	}

	if actor.Role != required {
		s.logger.Warn("advance denied: role does not gate this stage",
			"request_id", requestID,
			"status", req.Status,
			"required_role", required,
			"actor_role", actor.Role)
		return nil, internal.ErrUnauthorizedTransition
	}

	if req.RequesterID == actor.ID {
		s.logger.Warn("advance denied: requester cannot approve their own request",
			"request_id", requestID,
			"actor_id", actor.ID)
		return nil, internal.ErrUnauthorizedTransition
	}

	next := NextStatus(req.Status, req.Amount)
	if err := s.applyStatus(ctx, req, next, ""); err != nil {
		return nil, err
	}

	s.logger.Info("request advanced",
		"request_id", requestID,
		"new_status", next,
		"actor_id", actor.ID,
		"actor_role", actor.Role,
		"amount", req.Amount)

	return req, nil
}

// Reject moves a pending request to the absorbing rejected state. Only
// approver roles may reject; terminal requests stay where they are.
func (s *Service) Reject(ctx context.Context, requestID string, actor *user.User, note string) (*ExpenseRequest, error) {
	if !actor.Role.IsApprover() {
		s.logger.Warn("reject denied: not an approver role",
			"request_id", requestID,
			"actor_role", actor.Role)
		return nil, internal.ErrUnauthorizedTransition
	}

	req, err := s.repo.GetByID(requestID)
	if err != nil {
		s.logger.Error("request not found for rejection", "error", err, "request_id", requestID)
		return nil, internal.ErrRequestNotFound
	}

	if !req.Status.IsPending() {
		s.logger.Warn("cannot reject request in current status",
			"request_id", requestID,
			"status", req.Status)
		return nil, internal.ErrInvalidRequestStatus
	}

	if err := s.applyStatus(ctx, req, StatusRejected, note); err != nil {
		return nil, err
	}

	s.logger.Info("request rejected",
		"request_id", requestID,
		"actor_id", actor.ID,
		"note", note)

	return req, nil
}

// Complete confirms disbursement of an approved request. Finance staff and
// admins only.
func (s *Service) Complete(ctx context.Context, requestID string, actor *user.User) (*ExpenseRequest, error) {
	if actor.Role != user.RoleFinance && actor.Role != user.RoleAdmin {
		s.logger.Warn("complete denied: not finance or admin",
			"request_id", requestID,
			"actor_role", actor.Role)
		return nil, internal.ErrUnauthorizedTransition
	}

	req, err := s.repo.GetByID(requestID)
	if err != nil {
		s.logger.Error("request not found for completion", "error", err, "request_id", requestID)
		return nil, internal.ErrRequestNotFound
	}

	if req.Status != StatusApproved {
		s.logger.Warn("cannot complete request in current status",
			"request_id", requestID,
			"status", req.Status)
		return nil, internal.ErrInvalidRequestStatus
	}

	if err := s.applyStatus(ctx, req, StatusCompleted, ""); err != nil {
		return nil, err
	}

	s.logger.Info("request completed", "request_id", requestID, "actor_id", actor.ID)
	return req, nil
}

// PendingFor returns the approval queue for the acting user: each approver
// role sees exactly the stage it gates, admins see every request still in
// flight, teachers have no queue.
func (s *Service) PendingFor(actor *user.User) ([]*ExpenseRequest, error) {
	if actor.Role == user.RoleAdmin {
		return s.repo.GetByStatus([]Status{StatusPendingHead, StatusPendingFinance, StatusPendingDirector})
	}

	stage, ok := queueStatus[actor.Role]
	if !ok {
		s.logger.Warn("pending queue denied", "actor_role", actor.Role)
		return nil, internal.ErrNoApprovalQueue
	}

	return s.repo.GetByStatus([]Status{stage})
}

// ListForUser returns what the dashboard shows: approvers see the full
// request set, teachers only their own submissions.
func (s *Service) ListForUser(actor *user.User) ([]*ExpenseRequest, error) {
	if actor.Role.IsApprover() {
		return s.repo.GetAll()
	}
	return s.repo.GetByRequester(actor.ID)
}

func (s *Service) GetByID(requestID string) (*ExpenseRequest, error) {
	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, internal.ErrRequestNotFound
	}
	return req, nil
}

// applyStatus persists the transition and synchronously notifies the ledger.
// Status is the only field that ever changes after creation.
func (s *Service) applyStatus(ctx context.Context, req *ExpenseRequest, next Status, note string) error {
	old := req.Status
	if err := s.repo.UpdateStatus(req.ID, next, note); err != nil {
		s.logger.Error("failed to update request status",
			"error", err,
			"request_id", req.ID,
			"status", next)
		return err
	}

	req.Status = next
	if note != "" {
		req.Note = note
	}

	return s.bus.Publish(ctx, events.NewRequestStatusChanged(req.ID, req.ProjectID, string(old), string(next), req.Amount))
}
