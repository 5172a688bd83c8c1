package models

import (
	"time"

	"gorm.io/gorm"
)

// HOD is the role record for heads of department.
type HOD struct {
	ID          string       `json:"id" gorm:"primaryKey;size:255"`
	FullName    string       `json:"full_name" gorm:"not null;size:100"`
	Email       string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber string       `json:"phone_number" gorm:"size:20"`
	Gender      string       `json:"gender" gorm:"size:20"`
	Status      RecordStatus `json:"status" gorm:"not null;size:20;default:active"`

	DepartmentExpertise  string `json:"department_expertise" gorm:"not null;size:100"`
	ExperienceYears      int    `json:"experience_years"`
	HighestQualification string `json:"highest_qualification" gorm:"size:100"`
	VisionDepartment     string `json:"vision_department" gorm:"size:1000"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (HOD) TableName() string {
	return "hods"
}
