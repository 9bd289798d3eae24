package user_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/user"
)

func TestUserRegistry(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Registry Suite")
}

// Mock repository for testing
type mockUserRepository struct {
	users       map[string]*user.User
	createError error
	deleteError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*user.User)}
}

func (m *mockUserRepository) Create(u *user.User) error {
	if m.createError != nil {
		return m.createError
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) GetByID(id string) (*user.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (m *mockUserRepository) GetAll() ([]*user.User, error) {
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepository) Delete(id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.users, id)
	return nil
}

var _ = Describe("UserService", func() {
	var (
		service  *user.Service
		mockRepo *mockUserRepository
	)

	BeforeEach(func() {
		mockRepo = newMockUserRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, logger)
	})

	Describe("AddUser", func() {
		It("should register an account with a generated id and avatar", func() {
			dto := user.CreateUserDTO{Name: "ครูสมชาย", Role: "teacher", Department: "academic"}

			result, err := service.AddUser(dto)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).ToNot(BeEmpty())
			Expect(result.Role).To(Equal(user.RoleTeacher))
			Expect(result.Avatar).To(ContainSubstring("ui-avatars.com"))
		})

		It("should allow duplicate names", func() {
			dto := user.CreateUserDTO{Name: "ครูสมชาย", Role: "teacher", Department: "academic"}

			first, err := service.AddUser(dto)
			Expect(err).ToNot(HaveOccurred())
			second, err := service.AddUser(dto)
			Expect(err).ToNot(HaveOccurred())

			Expect(second.ID).ToNot(Equal(first.ID))
		})

		It("should reject an unknown role", func() {
			dto := user.CreateUserDTO{Name: "x", Role: "janitor", Department: "academic"}

			_, err := service.AddUser(dto)

			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown department", func() {
			dto := user.CreateUserDTO{Name: "x", Role: "teacher", Department: "cafeteria"}

			_, err := service.AddUser(dto)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GetByID", func() {
		It("should map a missing record to the registry error", func() {
			_, err := service.GetByID("missing")

			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		It("should remove a regular account", func() {
			created, err := service.AddUser(user.CreateUserDTO{Name: "x", Role: "teacher", Department: "academic"})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteUser(created.ID)).To(Succeed())
			_, err = service.GetByID(created.ID)
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})

		It("should never delete an admin account", func() {
			created, err := service.AddUser(user.CreateUserDTO{Name: "root", Role: "admin", Department: "general_administration"})
			Expect(err).ToNot(HaveOccurred())

			err = service.DeleteUser(created.ID)

			Expect(err).To(MatchError(internal.ErrProtectedRole))
			_, getErr := service.GetByID(created.ID)
			Expect(getErr).ToNot(HaveOccurred())
		})

		It("should fail for an unknown user", func() {
			Expect(service.DeleteUser("missing")).To(MatchError(internal.ErrUserNotFound))
		})
	})
})
