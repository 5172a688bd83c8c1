package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) repositories.TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(teacher).Error; err != nil {
		return handleDBError(err, "create teacher")
	}
	return nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get teacher by id")
	}
	return &teacher, nil
}

func (r *teacherRepository) Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Save(teacher).Error; err != nil {
		return handleDBError(err, "update teacher")
	}
	return nil
}

func (r *teacherRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Teacher{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check teacher existence")
	}
	return count > 0, nil
}

func (r *teacherRepository) List(ctx context.Context, filters repositories.ListFilters) ([]*models.Teacher, int64, error) {
	var teachers []*models.Teacher
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Teacher{})
	query = applyListFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count teachers")
	}

	query = applyPagination(query, filters).Order("created_at DESC")
	if err := query.Find(&teachers).Error; err != nil {
		return nil, 0, handleDBError(err, "list teachers")
	}

	return teachers, total, nil
}

func (r *teacherRepository) ListByStatus(ctx context.Context, status models.RecordStatus) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, handleDBError(err, "list teachers by status")
	}
	return teachers, nil
}

func (r *teacherRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.RecordStatus, note *string) error {
	db := getDB(r.db, tx)
	updates := map[string]any{"status": status}
	if note != nil {
		updates["approval_note"] = *note
	}

	result := db.WithContext(ctx).
		Model(&models.Teacher{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return handleDBError(result.Error, "update teacher status")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "update teacher status")
	}
	return nil
}
