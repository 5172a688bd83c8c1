package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type lessonPlanRepository struct {
	db *gorm.DB
}

func NewLessonPlanRepository(db *gorm.DB) repositories.LessonPlanRepository {
	return &lessonPlanRepository{db: db}
}

func (r *lessonPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *models.LessonPlan) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(plan).Error; err != nil {
		return handleDBError(err, "create lesson plan")
	}
	return nil
}

func (r *lessonPlanRepository) GetByID(ctx context.Context, id uint) (*models.LessonPlan, error) {
	var plan models.LessonPlan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, handleDBError(err, "get lesson plan by id")
	}
	return &plan, nil
}

func (r *lessonPlanRepository) ListByTeacher(ctx context.Context, teacherID string, filters repositories.ListFilters) ([]*models.LessonPlan, int64, error) {
	var plans []*models.LessonPlan
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.LessonPlan{}).
		Where("teacher_id = ?", teacherID)
	if filters.Query != "" {
		query = query.Where("topic_name ILIKE ?", "%"+filters.Query+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count lesson plans")
	}

	query = applyPagination(query, filters).Order("created_at DESC")
	if err := query.Find(&plans).Error; err != nil {
		return nil, 0, handleDBError(err, "list lesson plans")
	}

	return plans, total, nil
}

func (r *lessonPlanRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	db := getDB(r.db, tx)
	result := db.WithContext(ctx).Delete(&models.LessonPlan{}, id)
	if result.Error != nil {
		return handleDBError(result.Error, "delete lesson plan")
	}
	if result.RowsAffected == 0 {
		return handleDBError(gorm.ErrRecordNotFound, "delete lesson plan")
	}
	return nil
}

func (r *lessonPlanRepository) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LessonPlan{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	if err != nil {
		return 0, handleDBError(err, "count lesson plans by teacher")
	}
	return count, nil
}
