package user

import (
	"fmt"
	"net/url"
	"time"

	"github.com/tossaporn/school-budget/internal"
	userDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/user"
)

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleTeacher          Role = "teacher"
	RoleHeadOfDepartment Role = "head_of_department"
	RoleFinance          Role = "finance"
	RoleDirector         Role = "director"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleHeadOfDepartment, RoleFinance, RoleDirector:
		return true
	}
	return false
}

// IsApprover reports whether the role acts on some stage of the approval
// chain. Teachers only submit.
func (r Role) IsApprover() bool {
	switch r {
	case RoleAdmin, RoleHeadOfDepartment, RoleFinance, RoleDirector:
		return true
	}
	return false
}

type Department string

const (
	DepartmentAcademic       Department = "academic"
	DepartmentBudget         Department = "budget"
	DepartmentPersonnel      Department = "personnel"
	DepartmentGeneral        Department = "general_administration"
	DepartmentStudentAffairs Department = "student_affairs"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentAcademic, DepartmentBudget, DepartmentPersonnel, DepartmentGeneral, DepartmentStudentAffairs:
		return true
	}
	return false
}

type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       Role       `json:"role"`
	Department Department `json:"department"`
	Avatar     string     `json:"avatar"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AvatarURL builds the generated avatar reference assigned to every account
// created through onboarding or direct insertion.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}

// FromPrincipal rebuilds the domain view of the authenticated user from the
// context principal set by the auth middleware.
func FromPrincipal(p *internal.Principal) *User {
	return &User{
		ID:         p.UserID,
		Name:       p.Name,
		Role:       Role(p.Role),
		Department: Department(p.Department),
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:         u.ID,
		Name:       u.Name,
		Role:       string(u.Role),
		Department: string(u.Department),
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:         u.ID,
		Name:       u.Name,
		Role:       Role(u.Role),
		Department: Department(u.Department),
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
