package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/repositories/casdoor"
)

// PostgreSQLRepository implements the main Repository interface.
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	// Repository instances
	student    repositories.StudentRepository
	teacher    repositories.TeacherRepository
	hod        repositories.HODRepository
	admin      repositories.AdminRepository
	identity   repositories.IdentityRepository
	lessonPlan repositories.LessonPlanRepository
	dashboard  repositories.DashboardRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB            *gorm.DB
	RedisClient   *redis.Client
	CasdoorConfig casdoor.CasdoorConfig
}

// NewPostgreSQLRepository creates a new repository manager with all
// sub-repositories wired.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	cacheManager := cache.NewCacheManager(config.RedisClient)

	repo := &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cacheManager,
	}

	repo.student = NewStudentRepository(config.DB)
	repo.teacher = NewTeacherRepository(config.DB)
	repo.hod = NewHODRepository(config.DB)
	repo.admin = NewAdminRepository(config.DB)
	repo.lessonPlan = NewLessonPlanRepository(config.DB)
	repo.dashboard = NewDashboardRepository(config.DB)

	// Identity repository talks to Casdoor
	repo.identity = casdoor.NewIdentityCasdoor(config.CasdoorConfig, config.RedisClient)

	return repo
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository { return r.student }

func (r *PostgreSQLRepository) Teacher() repositories.TeacherRepository { return r.teacher }

func (r *PostgreSQLRepository) HOD() repositories.HODRepository { return r.hod }

func (r *PostgreSQLRepository) Admin() repositories.AdminRepository { return r.admin }

func (r *PostgreSQLRepository) Identity() repositories.IdentityRepository { return r.identity }

func (r *PostgreSQLRepository) LessonPlan() repositories.LessonPlanRepository { return r.lessonPlan }

func (r *PostgreSQLRepository) Dashboard() repositories.DashboardRepository { return r.dashboard }

// WithTransaction runs fn inside a database transaction. The transactional
// Repository shares the identity repository since Casdoor sits outside the
// database transaction boundary.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:           tx,
			redisClient:  r.redisClient,
			cacheManager: r.cacheManager,
			student:      NewStudentRepository(tx),
			teacher:      NewTeacherRepository(tx),
			hod:          NewHODRepository(tx),
			admin:        NewAdminRepository(tx),
			lessonPlan:   NewLessonPlanRepository(tx),
			dashboard:    NewDashboardRepository(tx),
			identity:     r.identity,
		}
		return fn(txRepo)
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return sqlDB.PingContext(pingCtx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
