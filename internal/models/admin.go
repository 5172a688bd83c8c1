package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Admin is the role record for administrators.
type Admin struct {
	ID          string       `json:"id" gorm:"primaryKey;size:255"`
	FullName    string       `json:"full_name" gorm:"not null;size:100"`
	Email       string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber string       `json:"phone_number" gorm:"size:20"`
	Gender      string       `json:"gender" gorm:"size:20"`
	Status      RecordStatus `json:"status" gorm:"not null;size:20;default:active"`

	AccessLevel       string         `json:"access_level" gorm:"not null;size:50"`
	SecurityQuestions datatypes.JSON `json:"security_questions,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Admin) TableName() string {
	return "admins"
}
