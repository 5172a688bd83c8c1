package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

// ListFilters defines pagination and search filters for roster queries.
type ListFilters struct {
	Query  string // Search query for name or email
	Limit  int    // Page size
	Offset int    // Offset for pagination
}

// StudentRepository owns the students role table.
type StudentRepository interface {
	// Create inserts a new row; a duplicate primary key returns
	// ErrDuplicateKey, never an upsert.
	Create(ctx context.Context, tx *gorm.DB, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, tx *gorm.DB, student *models.Student) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filters ListFilters) ([]*models.Student, int64, error)
}

// TeacherRepository owns the teachers role table.
type TeacherRepository interface {
	Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filters ListFilters) ([]*models.Teacher, int64, error)
	ListByStatus(ctx context.Context, status models.RecordStatus) ([]*models.Teacher, error)

	// UpdateStatus transitions status and approval note only; no other column
	// is touched.
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.RecordStatus, note *string) error
}

// HODRepository owns the hods role table.
type HODRepository interface {
	Create(ctx context.Context, tx *gorm.DB, hod *models.HOD) error
	GetByID(ctx context.Context, id string) (*models.HOD, error)
	Update(ctx context.Context, tx *gorm.DB, hod *models.HOD) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// AdminRepository owns the admins role table.
type AdminRepository interface {
	Create(ctx context.Context, tx *gorm.DB, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	Update(ctx context.Context, tx *gorm.DB, admin *models.Admin) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
