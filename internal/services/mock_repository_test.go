package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/school-management-service/internal/models"
	"github.com/SAP-F-2025/school-management-service/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests. Per-table
// error hooks simulate infrastructure failures.
type mockRepository struct {
	mu sync.Mutex

	students map[string]*models.Student
	teachers map[string]*models.Teacher
	hods     map[string]*models.HOD
	admins   map[string]*models.Admin
	plans    map[uint]*models.LessonPlan
	roleTags map[string]models.Role

	nextPlanID uint

	// Error hooks; when set, the matching operation fails.
	studentErr  error
	teacherErr  error
	hodErr      error
	adminErr    error
	identityErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		students: map[string]*models.Student{},
		teachers: map[string]*models.Teacher{},
		hods:     map[string]*models.HOD{},
		admins:   map[string]*models.Admin{},
		plans:    map[uint]*models.LessonPlan{},
		roleTags: map[string]models.Role{},
	}
}

func (m *mockRepository) Student() repositories.StudentRepository  { return &mockStudentRepo{m} }
func (m *mockRepository) Teacher() repositories.TeacherRepository  { return &mockTeacherRepo{m} }
func (m *mockRepository) HOD() repositories.HODRepository          { return &mockHODRepo{m} }
func (m *mockRepository) Admin() repositories.AdminRepository      { return &mockAdminRepo{m} }
func (m *mockRepository) Identity() repositories.IdentityRepository {
	return &mockIdentityRepo{m}
}
func (m *mockRepository) LessonPlan() repositories.LessonPlanRepository {
	return &mockLessonPlanRepo{m}
}
func (m *mockRepository) Dashboard() repositories.DashboardRepository {
	return &mockDashboardRepo{m}
}

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== STUDENT =====

type mockStudentRepo struct{ m *mockRepository }

func (r *mockStudentRepo) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.studentErr != nil {
		return r.m.studentErr
	}
	if _, exists := r.m.students[student.ID]; exists {
		return repositories.ErrDuplicateKey
	}
	copied := *student
	r.m.students[student.ID] = &copied
	return nil
}

func (r *mockStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.studentErr != nil {
		return nil, r.m.studentErr
	}
	student, ok := r.m.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *mockStudentRepo) Update(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *student
	r.m.students[student.ID] = &copied
	return nil
}

func (r *mockStudentRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.studentErr != nil {
		return false, r.m.studentErr
	}
	_, ok := r.m.students[id]
	return ok, nil
}

func (r *mockStudentRepo) List(ctx context.Context, filters repositories.ListFilters) ([]*models.Student, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var list []*models.Student
	for _, s := range r.m.students {
		copied := *s
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

// ===== TEACHER =====

type mockTeacherRepo struct{ m *mockRepository }

func (r *mockTeacherRepo) Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.teacherErr != nil {
		return r.m.teacherErr
	}
	if _, exists := r.m.teachers[teacher.ID]; exists {
		return repositories.ErrDuplicateKey
	}
	copied := *teacher
	r.m.teachers[teacher.ID] = &copied
	return nil
}

func (r *mockTeacherRepo) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.teacherErr != nil {
		return nil, r.m.teacherErr
	}
	teacher, ok := r.m.teachers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *teacher
	return &copied, nil
}

func (r *mockTeacherRepo) Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.teachers[teacher.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *teacher
	r.m.teachers[teacher.ID] = &copied
	return nil
}

func (r *mockTeacherRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.teacherErr != nil {
		return false, r.m.teacherErr
	}
	_, ok := r.m.teachers[id]
	return ok, nil
}

func (r *mockTeacherRepo) List(ctx context.Context, filters repositories.ListFilters) ([]*models.Teacher, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var list []*models.Teacher
	for _, t := range r.m.teachers {
		copied := *t
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (r *mockTeacherRepo) ListByStatus(ctx context.Context, status models.RecordStatus) ([]*models.Teacher, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var list []*models.Teacher
	for _, t := range r.m.teachers {
		if t.Status == status {
			copied := *t
			list = append(list, &copied)
		}
	}
	return list, nil
}

func (r *mockTeacherRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.RecordStatus, note *string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	teacher, ok := r.m.teachers[id]
	if !ok {
		return repositories.ErrNotFound
	}
	teacher.Status = status
	teacher.ApprovalNote = note
	return nil
}

// ===== HOD =====

type mockHODRepo struct{ m *mockRepository }

func (r *mockHODRepo) Create(ctx context.Context, tx *gorm.DB, hod *models.HOD) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.hodErr != nil {
		return r.m.hodErr
	}
	if _, exists := r.m.hods[hod.ID]; exists {
		return repositories.ErrDuplicateKey
	}
	copied := *hod
	r.m.hods[hod.ID] = &copied
	return nil
}

func (r *mockHODRepo) GetByID(ctx context.Context, id string) (*models.HOD, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.hodErr != nil {
		return nil, r.m.hodErr
	}
	hod, ok := r.m.hods[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *hod
	return &copied, nil
}

func (r *mockHODRepo) Update(ctx context.Context, tx *gorm.DB, hod *models.HOD) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.hods[hod.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *hod
	r.m.hods[hod.ID] = &copied
	return nil
}

func (r *mockHODRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.hodErr != nil {
		return false, r.m.hodErr
	}
	_, ok := r.m.hods[id]
	return ok, nil
}

// ===== ADMIN =====

type mockAdminRepo struct{ m *mockRepository }

func (r *mockAdminRepo) Create(ctx context.Context, tx *gorm.DB, admin *models.Admin) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.adminErr != nil {
		return r.m.adminErr
	}
	if _, exists := r.m.admins[admin.ID]; exists {
		return repositories.ErrDuplicateKey
	}
	copied := *admin
	r.m.admins[admin.ID] = &copied
	return nil
}

func (r *mockAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.adminErr != nil {
		return nil, r.m.adminErr
	}
	admin, ok := r.m.admins[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *admin
	return &copied, nil
}

func (r *mockAdminRepo) Update(ctx context.Context, tx *gorm.DB, admin *models.Admin) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.admins[admin.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *admin
	r.m.admins[admin.ID] = &copied
	return nil
}

func (r *mockAdminRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.adminErr != nil {
		return false, r.m.adminErr
	}
	_, ok := r.m.admins[id]
	return ok, nil
}

// ===== IDENTITY =====

type mockIdentityRepo struct{ m *mockRepository }

func (r *mockIdentityRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	return &models.Identity{ID: id}, nil
}

func (r *mockIdentityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return nil, repositories.ErrNotFound
}

func (r *mockIdentityRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	return true, nil
}

func (r *mockIdentityRepo) SetRoleTag(ctx context.Context, id string, role models.Role) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.identityErr != nil {
		return r.m.identityErr
	}
	r.m.roleTags[id] = role
	return nil
}

// ===== LESSON PLAN =====

type mockLessonPlanRepo struct{ m *mockRepository }

func (r *mockLessonPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *models.LessonPlan) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextPlanID++
	plan.ID = r.m.nextPlanID
	copied := *plan
	r.m.plans[plan.ID] = &copied
	return nil
}

func (r *mockLessonPlanRepo) GetByID(ctx context.Context, id uint) (*models.LessonPlan, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	plan, ok := r.m.plans[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *plan
	return &copied, nil
}

func (r *mockLessonPlanRepo) ListByTeacher(ctx context.Context, teacherID string, filters repositories.ListFilters) ([]*models.LessonPlan, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var list []*models.LessonPlan
	for _, p := range r.m.plans {
		if p.TeacherID == teacherID {
			copied := *p
			list = append(list, &copied)
		}
	}
	return list, int64(len(list)), nil
}

func (r *mockLessonPlanRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.plans[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.m.plans, id)
	return nil
}

func (r *mockLessonPlanRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var count int64
	for _, p := range r.m.plans {
		if p.TeacherID == teacherID {
			count++
		}
	}
	return count, nil
}

// ===== DASHBOARD =====

type mockDashboardRepo struct{ m *mockRepository }

func (r *mockDashboardRepo) GetRoleCounts(ctx context.Context, tx *gorm.DB) (map[models.Role]int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return map[models.Role]int64{
		models.RoleStudent: int64(len(r.m.students)),
		models.RoleTeacher: int64(len(r.m.teachers)),
		models.RoleHOD:     int64(len(r.m.hods)),
		models.RoleAdmin:   int64(len(r.m.admins)),
	}, nil
}

func (r *mockDashboardRepo) GetTeacherStatusCounts(ctx context.Context, tx *gorm.DB) (map[models.RecordStatus]int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	counts := map[models.RecordStatus]int64{}
	for _, t := range r.m.teachers {
		counts[t.Status]++
	}
	return counts, nil
}

func (r *mockDashboardRepo) GetRegistrationTrend(ctx context.Context, tx *gorm.DB, days int) ([]repositories.RegistrationTrendData, error) {
	return nil, nil
}

func (r *mockDashboardRepo) GetRecentRegistrations(ctx context.Context, tx *gorm.DB, limit int) ([]repositories.RecentRegistrationData, error) {
	return nil, nil
}

func (r *mockDashboardRepo) GetStudentsPerStandard(ctx context.Context, tx *gorm.DB) ([]repositories.StandardCountData, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	counts := map[int]int64{}
	for _, s := range r.m.students {
		counts[s.Std]++
	}
	var data []repositories.StandardCountData
	for std, count := range counts {
		data = append(data, repositories.StandardCountData{Std: std, Count: count})
	}
	return data, nil
}
