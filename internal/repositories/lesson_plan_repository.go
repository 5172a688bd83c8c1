package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

// LessonPlanRepository owns persisted lesson plans.
type LessonPlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *models.LessonPlan) error
	GetByID(ctx context.Context, id uint) (*models.LessonPlan, error)
	ListByTeacher(ctx context.Context, teacherID string, filters ListFilters) ([]*models.LessonPlan, int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
}
