package access

import (
	"time"

	accessDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/access"
	"github.com/tossaporn/school-budget/internal/user"
)

// AccessRequest is an unauthenticated applicant's bid for an account. It has
// no lifecycle of its own: approval converts it into a user, rejection
// discards it.
type AccessRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Department  user.Department `json:"department"`
	Role        user.Role       `json:"role"`
	RequestDate time.Time       `json:"request_date"`
}

func ToDataModel(r *AccessRequest) *accessDatamodel.AccessRequest {
	return &accessDatamodel.AccessRequest{
		ID:          r.ID,
		Name:        r.Name,
		Department:  string(r.Department),
		Role:        string(r.Role),
		RequestDate: r.RequestDate,
	}
}

func FromDataModel(r *accessDatamodel.AccessRequest) *AccessRequest {
	return &AccessRequest{
		ID:          r.ID,
		Name:        r.Name,
		Department:  user.Department(r.Department),
		Role:        user.Role(r.Role),
		RequestDate: r.RequestDate,
	}
}

func FromDataModelSlice(reqs []*accessDatamodel.AccessRequest) []*AccessRequest {
	result := make([]*AccessRequest, len(reqs))
	for i, r := range reqs {
		result[i] = FromDataModel(r)
	}
	return result
}
