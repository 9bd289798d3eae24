package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tossaporn/school-budget/internal"
	requestDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/request"
	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/request"
)

// RequestRepository implements the request.Repository interface using GORM.
// It also feeds the ledger's recompute through project.RequestSource.
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(req *request.ExpenseRequest) error {
	return r.db.Create(request.ToDataModel(req)).Error
}

func (r *RequestRepository) GetByID(id string) (*request.ExpenseRequest, error) {
	var dm requestDatamodel.ExpenseRequest
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrRequestNotFound
		}
		return nil, err
	}
	return request.FromDataModel(&dm), nil
}

func (r *RequestRepository) GetAll() ([]*request.ExpenseRequest, error) {
	var dms []*requestDatamodel.ExpenseRequest
	err := r.db.Order("created_at DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(dms), nil
}

func (r *RequestRepository) GetByStatus(statuses []request.Status) ([]*request.ExpenseRequest, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	var dms []*requestDatamodel.ExpenseRequest
	err := r.db.Where("status IN ?", values).
		Order("created_at ASC"). // FIFO for approval queues
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(dms), nil
}

func (r *RequestRepository) GetByRequester(requesterID string) ([]*request.ExpenseRequest, error) {
	var dms []*requestDatamodel.ExpenseRequest
	err := r.db.Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return request.FromDataModelSlice(dms), nil
}

func (r *RequestRepository) UpdateStatus(id string, status request.Status, note string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if note != "" {
		updates["note"] = note
	}

	return r.db.Model(&requestDatamodel.ExpenseRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ListUsage projects the request set down to what the ledger's recompute
// needs.
func (r *RequestRepository) ListUsage() ([]project.RequestUsage, error) {
	var dms []*requestDatamodel.ExpenseRequest
	err := r.db.Select("project_id", "amount", "status").Find(&dms).Error
	if err != nil {
		return nil, err
	}

	usages := make([]project.RequestUsage, len(dms))
	for i, dm := range dms {
		usages[i] = project.RequestUsage{
			ProjectID: dm.ProjectID,
			Amount:    dm.Amount,
			Status:    dm.Status,
		}
	}
	return usages, nil
}
