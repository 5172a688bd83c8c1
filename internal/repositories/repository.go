package repositories

import "context"

// Repository aggregates every repository interface used by the service.
type Repository interface {
	// Role table set — one repository per role table.
	Student() StudentRepository
	Teacher() TeacherRepository
	HOD() HODRepository
	Admin() AdminRepository

	// Identity domain (read-mostly; owned by Casdoor)
	Identity() IdentityRepository

	// Lesson planning
	LessonPlan() LessonPlanRepository

	// Dashboard analytics
	Dashboard() DashboardRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}
