package project_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/core/events"
	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/user"
)

// Mock repository for testing
type mockProjectRepository struct {
	projects     map[string]*project.Project
	order        []string
	budgetWrites map[string]int64
	createError  error
	updateError  error
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{
		projects:     make(map[string]*project.Project),
		budgetWrites: make(map[string]int64),
	}
}

func (m *mockProjectRepository) Create(p *project.Project) error {
	if m.createError != nil {
		return m.createError
	}
	m.projects[p.ID] = p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *mockProjectRepository) GetByID(id string) (*project.Project, error) {
	p, exists := m.projects[id]
	if !exists {
		return nil, errors.New("project not found")
	}
	return p, nil
}

func (m *mockProjectRepository) GetAll() ([]*project.Project, error) {
	result := make([]*project.Project, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.projects[id])
	}
	return result, nil
}

func (m *mockProjectRepository) UpdateUsedBudget(id string, used int64) error {
	if m.updateError != nil {
		return m.updateError
	}
	if p, exists := m.projects[id]; exists {
		p.UsedBudget = used
		m.budgetWrites[id] = used
	}
	return nil
}

func (m *mockProjectRepository) UpdateStatus(id string, status project.Status) error {
	if m.updateError != nil {
		return m.updateError
	}
	if p, exists := m.projects[id]; exists {
		p.Status = status
	}
	return nil
}

// Mock request source for testing
type mockRequestSource struct {
	usages    []project.RequestUsage
	listError error
}

func (m *mockRequestSource) ListUsage() ([]project.RequestUsage, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.usages, nil
}

var _ = Describe("ProjectService", func() {
	var (
		service  *project.Service
		mockRepo *mockProjectRepository
		requests *mockRequestSource
		owner    *user.User
	)

	BeforeEach(func() {
		mockRepo = newMockProjectRepository()
		requests = &mockRequestSource{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = project.NewService(mockRepo, requests, logger)
		owner = &user.User{ID: "u1", Name: "ครูวิชาการ", Role: user.RoleTeacher, Department: user.DepartmentAcademic}
	})

	Describe("CreateProject", func() {
		It("should open an active envelope owned by the actor", func() {
			dto := project.CreateProjectDTO{
				Name:        "Curriculum development",
				FiscalYear:  "2568",
				TotalBudget: 50000,
			}

			result, err := service.CreateProject(dto, owner)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(project.StatusActive))
			Expect(result.OwnerID).To(Equal(owner.ID))
			Expect(result.Department).To(Equal(owner.Department))
			Expect(result.UsedBudget).To(BeZero())
		})

		It("should default the proposer to the owner's name", func() {
			dto := project.CreateProjectDTO{Name: "Field trip", FiscalYear: "2568", TotalBudget: 10000}

			result, err := service.CreateProject(dto, owner)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ProposerName).To(Equal(owner.Name))
		})

		It("should reject a missing name", func() {
			dto := project.CreateProjectDTO{FiscalYear: "2568", TotalBudget: 10000}

			_, err := service.CreateProject(dto, owner)

			Expect(err).To(HaveOccurred())
		})

		It("should reject a negative total budget", func() {
			dto := project.CreateProjectDTO{Name: "Field trip", FiscalYear: "2568", TotalBudget: -1}

			_, err := service.CreateProject(dto, owner)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Close", func() {
		It("should mark an active project closed", func() {
			created, err := service.CreateProject(project.CreateProjectDTO{Name: "P", FiscalYear: "2568", TotalBudget: 1000}, owner)
			Expect(err).ToNot(HaveOccurred())

			closed, err := service.Close(created.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(closed.Status).To(Equal(project.StatusClosed))
		})

		It("should fail for an unknown project", func() {
			_, err := service.Close("missing")

			Expect(err).To(MatchError(internal.ErrProjectNotFound))
		})
	})

	Describe("RecomputeUsage", func() {
		BeforeEach(func() {
			mockRepo.Create(&project.Project{ID: "p1", TotalBudget: 100000, UsedBudget: 0})
			mockRepo.Create(&project.Project{ID: "p2", TotalBudget: 50000, UsedBudget: 7000})
		})

		It("should persist re-derived figures", func() {
			requests.usages = []project.RequestUsage{
				{ProjectID: "p1", Amount: 12000, Status: "approved"},
				{ProjectID: "p1", Amount: 5000, Status: "completed"},
				{ProjectID: "p2", Amount: 7000, Status: "approved"},
			}

			err := service.RecomputeUsage()

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.projects["p1"].UsedBudget).To(Equal(int64(17000)))
			Expect(mockRepo.projects["p2"].UsedBudget).To(Equal(int64(7000)))
		})

		It("should only write projects whose figure changed", func() {
			requests.usages = []project.RequestUsage{
				{ProjectID: "p1", Amount: 12000, Status: "approved"},
				{ProjectID: "p2", Amount: 7000, Status: "completed"},
			}

			err := service.RecomputeUsage()

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.budgetWrites).To(HaveKey("p1"))
			Expect(mockRepo.budgetWrites).ToNot(HaveKey("p2"))
		})

		It("should drop usage when a request leaves the counted statuses", func() {
			requests.usages = []project.RequestUsage{
				{ProjectID: "p2", Amount: 7000, Status: "rejected"},
			}

			err := service.RecomputeUsage()

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.projects["p2"].UsedBudget).To(BeZero())
		})

		It("should propagate source errors", func() {
			requests.listError = errors.New("db gone")

			Expect(service.RecomputeUsage()).To(HaveOccurred())
		})
	})

	Describe("StatusChangedHandler", func() {
		It("should recompute when a workflow event arrives", func() {
			mockRepo.Create(&project.Project{ID: "p1", TotalBudget: 100000})
			requests.usages = []project.RequestUsage{
				{ProjectID: "p1", Amount: 4000, Status: "approved"},
			}

			handler := service.StatusChangedHandler()
			err := handler(context.Background(), events.NewRequestStatusChanged("r1", "p1", "pending_finance", "approved", 4000))

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.projects["p1"].UsedBudget).To(Equal(int64(4000)))
		})
	})
})
