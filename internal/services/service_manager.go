package services

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/cache"
	"github.com/SAP-F-2025/school-management-service/internal/events"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
	"github.com/SAP-F-2025/school-management-service/internal/utils"
	"github.com/SAP-F-2025/school-management-service/internal/validator"
)

// ServiceManagerDeps bundles the dependencies every service draws from.
type ServiceManagerDeps struct {
	DB        *gorm.DB
	Repo      repositories.Repository
	Logger    utils.Logger
	Validator *validator.Validator
	Publisher events.EventPublisher
	Generator PlanGenerator
	Cache     *cache.CacheManager
	PINs      PINConfig
}

// serviceManager implements ServiceManager.
type serviceManager struct {
	deps ServiceManagerDeps

	roleResolver RoleResolverService
	profile      ProfileService
	navigation   NavigationService
	approval     ApprovalService
	lessonPlan   LessonPlanService
	dashboard    DashboardService
	roster       RosterService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(deps ServiceManagerDeps) ServiceManager {
	return &serviceManager{deps: deps}
}

// Initialize wires up all services.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.deps.Logger.Info("initializing service manager")

	sm.roleResolver = NewRoleResolverService(sm.deps.Repo, sm.deps.Logger)
	sm.profile = NewProfileService(sm.deps.Repo, sm.roleResolver, sm.deps.Publisher, sm.deps.Validator, sm.deps.Cache, sm.deps.Logger, sm.deps.PINs)
	sm.navigation = NewNavigationService(sm.roleResolver, sm.deps.Logger)
	sm.approval = NewApprovalService(sm.deps.Repo, sm.deps.Publisher, sm.deps.Validator, sm.deps.Cache, sm.deps.Logger)
	sm.lessonPlan = NewLessonPlanService(sm.deps.Repo, sm.deps.Generator, sm.deps.Validator, sm.deps.Logger)
	sm.dashboard = NewDashboardService(sm.deps.Repo, sm.roleResolver, sm.deps.Cache, sm.deps.Logger)
	sm.roster = NewRosterService(sm.deps.Repo, sm.deps.Logger)

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.deps.Logger.Info("service manager initialized")

	return nil
}

// Shutdown releases resources held by services.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("shutting down service manager")

	if sm.deps.Publisher != nil {
		if err := sm.deps.Publisher.Close(); err != nil {
			sm.deps.Logger.Warn("failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	return nil
}

// ===== SERVICE GETTERS =====

func (sm *serviceManager) RoleResolver() RoleResolverService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.roleResolver
}

func (sm *serviceManager) Profile() ProfileService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.profile
}

func (sm *serviceManager) Navigation() NavigationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.navigation
}

func (sm *serviceManager) Approval() ApprovalService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.approval
}

func (sm *serviceManager) LessonPlan() LessonPlanService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.lessonPlan
}

func (sm *serviceManager) Dashboard() DashboardService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.dashboard
}

func (sm *serviceManager) Roster() RosterService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.roster
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}
