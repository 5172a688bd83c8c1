package validator

import "time"

// CommonProfileFields are shared by every role completion request.
type CommonProfileFields struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
}

// SecurityQuestion is a question/answer pair stored for account recovery.
type SecurityQuestion struct {
	Question string `json:"question" validate:"required,max=255"`
	Answer   string `json:"answer" validate:"required,max=255"`
}

// CompleteStudentRequest completes a student profile. Stream is conditionally
// required (std 11 and 12 only); the rule lives in the business validator.
type CompleteStudentRequest struct {
	CommonProfileFields

	RollNo         string     `json:"roll_no" validate:"required,max=50"`
	Std            int        `json:"std" validate:"required,min=1,max=12"`
	Stream         *string    `json:"stream" validate:"omitempty,oneof=science commerce arts"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	ParentsName    string     `json:"parents_name" validate:"required,max=100"`
	ParentsNumber  string     `json:"parents_number" validate:"required,min=7,max=20"`
	Address        string     `json:"address" validate:"required,max=500"`
	PreviousSchool string     `json:"previous_school" validate:"omitempty,max=255"`
}

// CompleteTeacherRequest completes a teacher profile; the record starts
// pending until an HOD decides.
type CompleteTeacherRequest struct {
	CommonProfileFields

	SubjectExpertise     string             `json:"subject_expertise" validate:"required,max=100"`
	ExperienceYears      int                `json:"experience_years" validate:"min=0,max=60"`
	HighestQualification string             `json:"highest_qualification" validate:"required,max=100"`
	TeachingLevel        string             `json:"teaching_level" validate:"required,oneof=primary secondary higher_secondary"`
	Bio                  *string            `json:"bio" validate:"omitempty,max=1000"`
	SecurityQuestions    []SecurityQuestion `json:"security_questions" validate:"omitempty,max=3,dive"`
}

// CompleteHODRequest completes an HOD profile; gated by the HOD PIN.
type CompleteHODRequest struct {
	CommonProfileFields

	PIN                  string `json:"pin" validate:"required"`
	DepartmentExpertise  string `json:"department_expertise" validate:"required,max=100"`
	ExperienceYears      int    `json:"experience_years" validate:"min=0,max=60"`
	HighestQualification string `json:"highest_qualification" validate:"required,max=100"`
	VisionDepartment     string `json:"vision_department" validate:"omitempty,max=1000"`
}

// CompleteAdminRequest completes an admin profile; gated by the admin PIN.
type CompleteAdminRequest struct {
	CommonProfileFields

	PIN               string             `json:"pin" validate:"required"`
	AccessLevel       string             `json:"access_level" validate:"required,oneof=full limited readonly"`
	SecurityQuestions []SecurityQuestion `json:"security_questions" validate:"omitempty,max=3,dive"`
}

// UpdateProfileRequest mutates owner-editable fields of an existing record.
// Role, status and id are never owner-mutable.
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
}

// TeacherDecisionRequest is the HOD approval decision payload.
type TeacherDecisionRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=approved rejected"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
}

// GenerateLessonPlanRequest asks the generation endpoint for a plan.
type GenerateLessonPlanRequest struct {
	TemplateType    string `json:"template_type" validate:"required,oneof=standard detailed activity_based story_based"`
	TopicName       string `json:"topic_name" validate:"required,min=2,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=10,max=240"`
	Language        string `json:"language" validate:"required,max=50"`
}

// SaveLessonPlanRequest persists a previously generated plan.
type SaveLessonPlanRequest struct {
	GenerateLessonPlanRequest

	Sections map[string]interface{} `json:"sections" validate:"required"`
	Fallback bool                   `json:"fallback"`
}
