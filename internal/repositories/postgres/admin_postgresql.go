package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, tx *gorm.DB, admin *models.Admin) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return handleDBError(err, "create admin")
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get admin by id")
	}
	return &admin, nil
}

func (r *adminRepository) Update(ctx context.Context, tx *gorm.DB, admin *models.Admin) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Save(admin).Error; err != nil {
		return handleDBError(err, "update admin")
	}
	return nil
}

func (r *adminRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check admin existence")
	}
	return count > 0, nil
}
