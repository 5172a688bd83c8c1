package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
)

// DashboardRepository provides the aggregate queries behind the role
// dashboards.
type DashboardRepository interface {
	// Counts per role table
	GetRoleCounts(ctx context.Context, tx *gorm.DB) (map[models.Role]int64, error)

	// Teacher status breakdown (pending/approved/rejected)
	GetTeacherStatusCounts(ctx context.Context, tx *gorm.DB) (map[models.RecordStatus]int64, error)

	// Registrations per day over the trailing window
	GetRegistrationTrend(ctx context.Context, tx *gorm.DB, days int) ([]RegistrationTrendData, error)

	// Recently completed profiles across all role tables
	GetRecentRegistrations(ctx context.Context, tx *gorm.DB, limit int) ([]RecentRegistrationData, error)

	// Class size per standard, for the admin chart
	GetStudentsPerStandard(ctx context.Context, tx *gorm.DB) ([]StandardCountData, error)
}

// RegistrationTrendData is one day of the registration trend chart.
type RegistrationTrendData struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// RecentRegistrationData is one row of the recent-registrations widget.
type RecentRegistrationData struct {
	ID        string      `json:"id"`
	FullName  string      `json:"full_name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// StandardCountData is one bar of the students-per-standard chart.
type StandardCountData struct {
	Std   int   `json:"std"`
	Count int64 `json:"count"`
}
