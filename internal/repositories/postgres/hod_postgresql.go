package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type hodRepository struct {
	db *gorm.DB
}

func NewHODRepository(db *gorm.DB) repositories.HODRepository {
	return &hodRepository{db: db}
}

func (r *hodRepository) Create(ctx context.Context, tx *gorm.DB, hod *models.HOD) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(hod).Error; err != nil {
		return handleDBError(err, "create hod")
	}
	return nil
}

func (r *hodRepository) GetByID(ctx context.Context, id string) (*models.HOD, error) {
	var hod models.HOD
	if err := r.db.WithContext(ctx).First(&hod, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get hod by id")
	}
	return &hod, nil
}

func (r *hodRepository) Update(ctx context.Context, tx *gorm.DB, hod *models.HOD) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Save(hod).Error; err != nil {
		return handleDBError(err, "update hod")
	}
	return nil
}

func (r *hodRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.HOD{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check hod existence")
	}
	return count > 0, nil
}
