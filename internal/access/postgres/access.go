package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/access"
	accessDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/access"
)

// AccessRequestRepository implements the access.Repository interface using GORM
type AccessRequestRepository struct {
	db *gorm.DB
}

func NewAccessRequestRepository(db *gorm.DB) access.Repository {
	return &AccessRequestRepository{db: db}
}

func (r *AccessRequestRepository) Create(req *access.AccessRequest) error {
	return r.db.Create(access.ToDataModel(req)).Error
}

func (r *AccessRequestRepository) GetByID(id string) (*access.AccessRequest, error) {
	var dm accessDatamodel.AccessRequest
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrAccessRequestNotFound
		}
		return nil, err
	}
	return access.FromDataModel(&dm), nil
}

func (r *AccessRequestRepository) GetAll() ([]*access.AccessRequest, error) {
	var dms []*accessDatamodel.AccessRequest
	err := r.db.Order("request_date ASC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return access.FromDataModelSlice(dms), nil
}

func (r *AccessRequestRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&accessDatamodel.AccessRequest{}).Count(&n).Error
	return n, err
}

// Delete removes by id; deleting an absent row is not an error.
func (r *AccessRequestRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&accessDatamodel.AccessRequest{}).Error
}
