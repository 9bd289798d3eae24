package project_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/user"
)

func TestProjectLedger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Project Ledger Suite")
}

var _ = Describe("RecomputeUsedBudgets", func() {
	var projects []*project.Project

	BeforeEach(func() {
		projects = []*project.Project{
			{ID: "p1", TotalBudget: 100000, UsedBudget: 9999},
			{ID: "p2", TotalBudget: 50000, UsedBudget: 123},
		}
	})

	It("should sum only approved and completed request amounts", func() {
		usages := []project.RequestUsage{
			{ProjectID: "p1", Amount: 10000, Status: "approved"},
			{ProjectID: "p1", Amount: 5000, Status: "completed"},
			{ProjectID: "p1", Amount: 99999, Status: "pending_head"},
			{ProjectID: "p1", Amount: 99999, Status: "rejected"},
			{ProjectID: "p2", Amount: 2000, Status: "approved"},
		}

		result := project.RecomputeUsedBudgets(projects, usages)

		Expect(result[0].UsedBudget).To(Equal(int64(15000)))
		Expect(result[1].UsedBudget).To(Equal(int64(2000)))
	})

	It("should zero a project with no counted requests", func() {
		result := project.RecomputeUsedBudgets(projects, nil)

		Expect(result[0].UsedBudget).To(BeZero())
		Expect(result[1].UsedBudget).To(BeZero())
	})

	It("should not mutate its inputs", func() {
		usages := []project.RequestUsage{
			{ProjectID: "p1", Amount: 10000, Status: "approved"},
		}

		project.RecomputeUsedBudgets(projects, usages)

		Expect(projects[0].UsedBudget).To(Equal(int64(9999)))
		Expect(projects[1].UsedBudget).To(Equal(int64(123)))
	})

	It("should produce identical output when run twice", func() {
		usages := []project.RequestUsage{
			{ProjectID: "p1", Amount: 10000, Status: "approved"},
			{ProjectID: "p2", Amount: 3000, Status: "completed"},
		}

		first := project.RecomputeUsedBudgets(projects, usages)
		second := project.RecomputeUsedBudgets(projects, usages)

		Expect(second[0].UsedBudget).To(Equal(first[0].UsedBudget))
		Expect(second[1].UsedBudget).To(Equal(first[1].UsedBudget))
	})

	It("should ignore usage rows for unknown projects", func() {
		usages := []project.RequestUsage{
			{ProjectID: "ghost", Amount: 77777, Status: "approved"},
		}

		result := project.RecomputeUsedBudgets(projects, usages)

		Expect(result).To(HaveLen(2))
		Expect(result[0].UsedBudget).To(BeZero())
	})
})

var _ = Describe("Remaining", func() {
	It("should go negative when approvals pass the total", func() {
		p := &project.Project{TotalBudget: 10000, UsedBudget: 12500}

		Expect(p.Remaining()).To(Equal(int64(-2500)))
	})
})

var _ = Describe("VisibleTo", func() {
	var projects []*project.Project

	BeforeEach(func() {
		projects = []*project.Project{
			{ID: "p1", Department: user.DepartmentAcademic, OwnerID: "u1"},
			{ID: "p2", Department: user.DepartmentBudget, OwnerID: "u2"},
			{ID: "p3", Department: user.DepartmentPersonnel, OwnerID: "u3"},
		}
	})

	It("should show the director everything", func() {
		viewer := &user.User{ID: "d", Role: user.RoleDirector, Department: user.DepartmentGeneral}

		Expect(project.VisibleTo(viewer, projects)).To(HaveLen(3))
	})

	It("should show finance everything", func() {
		viewer := &user.User{ID: "f", Role: user.RoleFinance, Department: user.DepartmentBudget}

		Expect(project.VisibleTo(viewer, projects)).To(HaveLen(3))
	})

	It("should show a department head only their department", func() {
		viewer := &user.User{ID: "h", Role: user.RoleHeadOfDepartment, Department: user.DepartmentBudget}

		visible := project.VisibleTo(viewer, projects)

		Expect(visible).To(HaveLen(1))
		Expect(visible[0].ID).To(Equal("p2"))
	})

	It("should show a teacher their own projects and their department's", func() {
		viewer := &user.User{ID: "u3", Role: user.RoleTeacher, Department: user.DepartmentAcademic}

		visible := project.VisibleTo(viewer, projects)

		Expect(visible).To(HaveLen(2))
		Expect(visible[0].ID).To(Equal("p1"))
		Expect(visible[1].ID).To(Equal("p3"))
	})
})
