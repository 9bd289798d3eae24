package project

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/core/events"
	"github.com/tossaporn/school-budget/internal/user"
)

// Repository defines the data access methods for projects.
type Repository interface {
	Create(p *Project) error
	GetByID(id string) (*Project, error)
	GetAll() ([]*Project, error)
	UpdateUsedBudget(id string, used int64) error
	UpdateStatus(id string, status Status) error
}

// RequestSource exposes the request set the ledger folds over. Implemented by
// the workflow's repository.
type RequestSource interface {
	ListUsage() ([]RequestUsage, error)
}

// Service is the project ledger. It owns project records and keeps the
// derived used-budget figure consistent with the workflow's request set.
type Service struct {
	repo     Repository
	requests RequestSource
	logger   *slog.Logger
}

func NewService(repo Repository, requests RequestSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		requests: requests,
		logger:   logger,
	}
}

// CreateProject opens a new budget envelope owned by the acting user. The
// project's department is copied from the owner.
func (s *Service) CreateProject(dto CreateProjectDTO, owner *user.User) (*Project, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("project validation failed", "error", err, "owner_id", owner.ID)
		return nil, err
	}

	proposer := dto.ProposerName
	if proposer == "" {
		proposer = owner.Name
	}

	now := time.Now()
	p := &Project{
		ID:               uuid.NewString(),
		Name:             dto.Name,
		FiscalYear:       dto.FiscalYear,
		Department:       owner.Department,
		OwnerID:          owner.ID,
		ProposerName:     proposer,
		TotalBudget:      dto.TotalBudget,
		UsedBudget:       0,
		Status:           StatusActive,
		Activity:         dto.Activity,
		Strategy:         dto.Strategy,
		IsNewActivity:    dto.IsNewActivity,
		StartDate:        dto.StartDate,
		EndDate:          dto.EndDate,
		Rationale:        dto.Rationale,
		Objectives:       dto.Objectives,
		GoalQuantitative: dto.GoalQuantitative,
		GoalQualitative:  dto.GoalQualitative,
		Procedures:       dto.Procedures,
		Evaluation:       dto.Evaluation,
		ExpectedOutcomes: dto.ExpectedOutcomes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create project", "error", err, "owner_id", owner.ID)
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", p.ID,
		"owner_id", owner.ID,
		"department", p.Department,
		"total_budget", p.TotalBudget)

	return p, nil
}

func (s *Service) GetByID(id string) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get project", "error", err, "project_id", id)
		return nil, internal.ErrProjectNotFound
	}
	return p, nil
}

// ListVisible returns the projects the viewer may see, per the role
// visibility rules.
func (s *Service) ListVisible(viewer *user.User) ([]*Project, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	return VisibleTo(viewer, projects), nil
}

// Close marks a project closed. Closed projects accept no new submissions;
// their requests already in flight keep moving through the workflow.
func (s *Service) Close(id string) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("project not found for close", "error", err, "project_id", id)
		return nil, internal.ErrProjectNotFound
	}

	if err := s.repo.UpdateStatus(id, StatusClosed); err != nil {
		s.logger.Error("failed to close project", "error", err, "project_id", id)
		return nil, err
	}

	p.Status = StatusClosed
	s.logger.Info("project closed", "project_id", id)
	return p, nil
}

// RecomputeUsage re-derives every project's used budget from the full request
// set and persists the figures that changed. A total re-derivation rather
// than an incremental update: slower, but drift-free.
func (s *Service) RecomputeUsage() error {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("recompute: failed to load projects", "error", err)
		return err
	}

	usages, err := s.requests.ListUsage()
	if err != nil {
		s.logger.Error("recompute: failed to load request usage", "error", err)
		return err
	}

	recomputed := RecomputeUsedBudgets(projects, usages)
	for i, p := range recomputed {
		if p.UsedBudget == projects[i].UsedBudget {
			continue
		}
		if err := s.repo.UpdateUsedBudget(p.ID, p.UsedBudget); err != nil {
			s.logger.Error("recompute: failed to persist used budget",
				"error", err,
				"project_id", p.ID,
				"used_budget", p.UsedBudget)
			return err
		}
		s.logger.Info("used budget recomputed",
			"project_id", p.ID,
			"used_budget", p.UsedBudget,
			"remaining", p.Remaining())
	}

	return nil
}

// StatusChangedHandler subscribes the ledger to workflow status mutations so
// the used-budget invariant holds after every one of them.
func (s *Service) StatusChangedHandler() events.Handler {
	return func(ctx context.Context, event events.Event) error {
		return s.RecomputeUsage()
	}
}
