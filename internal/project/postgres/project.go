package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tossaporn/school-budget/internal"
	projectDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/project"
	"github.com/tossaporn/school-budget/internal/project"
)

// ProjectRepository implements the project.Repository interface using GORM
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(p *project.Project) error {
	return r.db.Create(project.ToDataModel(p)).Error
}

func (r *ProjectRepository) GetByID(id string) (*project.Project, error) {
	var dm projectDatamodel.Project
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrProjectNotFound
		}
		return nil, err
	}
	return project.FromDataModel(&dm), nil
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var dms []*projectDatamodel.Project
	err := r.db.Order("created_at DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return project.FromDataModelSlice(dms), nil
}

func (r *ProjectRepository) UpdateUsedBudget(id string, used int64) error {
	return r.db.Model(&projectDatamodel.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"used_budget": used,
			"updated_at":  time.Now(),
		}).Error
}

func (r *ProjectRepository) UpdateStatus(id string, status project.Status) error {
	return r.db.Model(&projectDatamodel.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}
