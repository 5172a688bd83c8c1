package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) repositories.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Create(student).Error; err != nil {
		return handleDBError(err, "create student")
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get student by id")
	}
	return &student, nil
}

func (r *studentRepository) Update(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	db := getDB(r.db, tx)
	if err := db.WithContext(ctx).Save(student).Error; err != nil {
		return handleDBError(err, "update student")
	}
	return nil
}

func (r *studentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, handleDBError(err, "check student existence")
	}
	return count > 0, nil
}

func (r *studentRepository) List(ctx context.Context, filters repositories.ListFilters) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Student{})
	query = applyListFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count students")
	}

	query = applyPagination(query, filters).Order("created_at DESC")
	if err := query.Find(&students).Error; err != nil {
		return nil, 0, handleDBError(err, "list students")
	}

	return students, total, nil
}
