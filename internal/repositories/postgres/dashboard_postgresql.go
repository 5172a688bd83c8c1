package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetRoleCounts(ctx context.Context, tx *gorm.DB) (map[models.Role]int64, error) {
	db := getDB(r.db, tx)
	counts := make(map[models.Role]int64, len(models.AllRoles))

	tables := []struct {
		role  models.Role
		model any
	}{
		{models.RoleStudent, &models.Student{}},
		{models.RoleTeacher, &models.Teacher{}},
		{models.RoleHOD, &models.HOD{}},
		{models.RoleAdmin, &models.Admin{}},
	}

	for _, table := range tables {
		var count int64
		if err := db.WithContext(ctx).Model(table.model).Count(&count).Error; err != nil {
			return nil, handleDBError(err, "count role table "+string(table.role))
		}
		counts[table.role] = count
	}

	return counts, nil
}

func (r *dashboardRepository) GetTeacherStatusCounts(ctx context.Context, tx *gorm.DB) (map[models.RecordStatus]int64, error) {
	db := getDB(r.db, tx)

	var rows []struct {
		Status models.RecordStatus
		Count  int64
	}
	err := db.WithContext(ctx).
		Model(&models.Teacher{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, handleDBError(err, "count teacher statuses")
	}

	counts := map[models.RecordStatus]int64{
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *dashboardRepository) GetRegistrationTrend(ctx context.Context, tx *gorm.DB, days int) ([]repositories.RegistrationTrendData, error) {
	db := getDB(r.db, tx)
	since := time.Now().AddDate(0, 0, -days)

	// Union across the four role tables keeps the trend role-agnostic.
	query := `
		SELECT date_trunc('day', created_at) AS date, COUNT(*) AS count
		FROM (
			SELECT created_at FROM students  WHERE created_at >= ? AND deleted_at IS NULL
			UNION ALL
			SELECT created_at FROM teachers  WHERE created_at >= ? AND deleted_at IS NULL
			UNION ALL
			SELECT created_at FROM hods      WHERE created_at >= ? AND deleted_at IS NULL
			UNION ALL
			SELECT created_at FROM admins    WHERE created_at >= ? AND deleted_at IS NULL
		) registrations
		GROUP BY 1
		ORDER BY 1`

	var trend []repositories.RegistrationTrendData
	if err := db.WithContext(ctx).Raw(query, since, since, since, since).Scan(&trend).Error; err != nil {
		return nil, handleDBError(err, "get registration trend")
	}
	return trend, nil
}

func (r *dashboardRepository) GetRecentRegistrations(ctx context.Context, tx *gorm.DB, limit int) ([]repositories.RecentRegistrationData, error) {
	db := getDB(r.db, tx)
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, full_name, role, created_at FROM (
			SELECT id, full_name, 'student' AS role, created_at FROM students WHERE deleted_at IS NULL
			UNION ALL
			SELECT id, full_name, 'teacher' AS role, created_at FROM teachers WHERE deleted_at IS NULL
			UNION ALL
			SELECT id, full_name, 'hod' AS role, created_at FROM hods WHERE deleted_at IS NULL
			UNION ALL
			SELECT id, full_name, 'admin' AS role, created_at FROM admins WHERE deleted_at IS NULL
		) registrations
		ORDER BY created_at DESC
		LIMIT ?`

	var recent []repositories.RecentRegistrationData
	if err := db.WithContext(ctx).Raw(query, limit).Scan(&recent).Error; err != nil {
		return nil, handleDBError(err, "get recent registrations")
	}
	return recent, nil
}

func (r *dashboardRepository) GetStudentsPerStandard(ctx context.Context, tx *gorm.DB) ([]repositories.StandardCountData, error) {
	db := getDB(r.db, tx)

	var rows []repositories.StandardCountData
	err := db.WithContext(ctx).
		Model(&models.Student{}).
		Select("std, COUNT(*) as count").
		Group("std").
		Order("std ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, handleDBError(err, "count students per standard")
	}
	return rows, nil
}
