package access_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/access"
	"github.com/tossaporn/school-budget/internal/user"
)

func TestAccessOnboarding(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Access Onboarding Suite")
}

// Mock repository for testing
type mockAccessRepository struct {
	requests    map[string]*access.AccessRequest
	createError error
	deleteError error
}

func newMockAccessRepository() *mockAccessRepository {
	return &mockAccessRepository{requests: make(map[string]*access.AccessRequest)}
}

func (m *mockAccessRepository) Create(req *access.AccessRequest) error {
	if m.createError != nil {
		return m.createError
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockAccessRepository) GetByID(id string) (*access.AccessRequest, error) {
	req, exists := m.requests[id]
	if !exists {
		return nil, errors.New("access request not found")
	}
	return req, nil
}

func (m *mockAccessRepository) GetAll() ([]*access.AccessRequest, error) {
	result := make([]*access.AccessRequest, 0, len(m.requests))
	for _, req := range m.requests {
		result = append(result, req)
	}
	return result, nil
}

func (m *mockAccessRepository) Count() (int64, error) {
	return int64(len(m.requests)), nil
}

func (m *mockAccessRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.requests, id)
	return nil
}

// Mock registry for testing
type mockRegistry struct {
	added    []user.CreateUserDTO
	addError error
}

func (m *mockRegistry) AddUser(dto user.CreateUserDTO) (*user.User, error) {
	if m.addError != nil {
		return nil, m.addError
	}
	m.added = append(m.added, dto)
	return &user.User{
		ID:         "new-user-id",
		Name:       dto.Name,
		Role:       user.Role(dto.Role),
		Department: user.Department(dto.Department),
	}, nil
}

var _ = Describe("AccessService", func() {
	var (
		service  *access.Service
		mockRepo *mockAccessRepository
		registry *mockRegistry
	)

	BeforeEach(func() {
		mockRepo = newMockAccessRepository()
		registry = &mockRegistry{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = access.NewService(mockRepo, registry, logger)
	})

	Describe("RequestAccess", func() {
		It("should file a timestamped request", func() {
			dto := access.RequestAccessDTO{Name: "ครูใหม่", Role: "teacher", Department: "academic"}

			result, err := service.RequestAccess(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).ToNot(BeEmpty())
			Expect(result.RequestDate).ToNot(BeZero())
		})

		It("should accept duplicates of existing names", func() {
			dto := access.RequestAccessDTO{Name: "ครูใหม่", Role: "teacher", Department: "academic"}

			_, err := service.RequestAccess(dto)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.RequestAccess(dto)
			Expect(err).ToNot(HaveOccurred())

			count, err := service.PendingCount()
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(int64(2)))
		})

		It("should reject an invalid role", func() {
			dto := access.RequestAccessDTO{Name: "x", Role: "janitor", Department: "academic"}

			_, err := service.RequestAccess(dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Approve", func() {
		It("should promote the request into an account and remove it", func() {
			filed, err := service.RequestAccess(access.RequestAccessDTO{Name: "ครูใหม่", Role: "finance", Department: "budget"})
			Expect(err).ToNot(HaveOccurred())

			created, err := service.Approve(filed.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Role).To(Equal(user.RoleFinance))
			Expect(registry.added).To(HaveLen(1))

			count, err := service.PendingCount()
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should fail for an unknown request", func() {
			_, err := service.Approve("missing")

			Expect(err).To(MatchError(internal.ErrAccessRequestNotFound))
		})

		It("should keep the request when account creation fails", func() {
			filed, err := service.RequestAccess(access.RequestAccessDTO{Name: "ครูใหม่", Role: "teacher", Department: "academic"})
			Expect(err).ToNot(HaveOccurred())
			registry.addError = errors.New("registry down")

			_, err = service.Approve(filed.ID)

			Expect(err).To(HaveOccurred())
			_, getErr := mockRepo.GetByID(filed.ID)
			Expect(getErr).ToNot(HaveOccurred())
		})
	})

	Describe("Reject", func() {
		It("should discard a pending request", func() {
			filed, err := service.RequestAccess(access.RequestAccessDTO{Name: "ครูใหม่", Role: "teacher", Department: "academic"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.Reject(filed.ID)).To(Succeed())

			count, err := service.PendingCount()
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should be idempotent for an absent request", func() {
			Expect(service.Reject("missing")).To(Succeed())
		})
	})
})
