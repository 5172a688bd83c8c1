package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Teacher is the role record for teachers. New rows start pending and move to
// approved or rejected through an HOD decision; neither transition reverses.
type Teacher struct {
	ID          string       `json:"id" gorm:"primaryKey;size:255"`
	FullName    string       `json:"full_name" gorm:"not null;size:100"`
	Email       string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber string       `json:"phone_number" gorm:"size:20"`
	Gender      string       `json:"gender" gorm:"size:20"`
	Status      RecordStatus `json:"status" gorm:"not null;size:20;default:pending"`

	SubjectExpertise     string         `json:"subject_expertise" gorm:"not null;size:100"`
	ExperienceYears      int            `json:"experience_years"`
	HighestQualification string         `json:"highest_qualification" gorm:"size:100"`
	TeachingLevel        string         `json:"teaching_level" gorm:"size:50"`
	Bio                  *string        `json:"bio" gorm:"size:1000"`
	ApprovalNote         *string        `json:"approval_note" gorm:"size:500"`
	SecurityQuestions    datatypes.JSON `json:"security_questions,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Teacher) TableName() string {
	return "teachers"
}
