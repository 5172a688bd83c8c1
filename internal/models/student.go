package models

import (
	"time"

	"gorm.io/gorm"
)

// Student is the role record for students. The primary key is the Casdoor
// identity id; at most one row may exist per identity.
type Student struct {
	ID          string       `json:"id" gorm:"primaryKey;size:255"`
	FullName    string       `json:"full_name" gorm:"not null;size:100"`
	Email       string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber string       `json:"phone_number" gorm:"size:20"`
	Gender      string       `json:"gender" gorm:"size:20"`
	Status      RecordStatus `json:"status" gorm:"not null;size:20;default:active"`

	RollNo         string     `json:"roll_no" gorm:"size:50"`
	Std            int        `json:"std" gorm:"not null"`
	Stream         *string    `json:"stream" gorm:"size:50"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	ParentsName    string     `json:"parents_name" gorm:"size:100"`
	ParentsNumber  string     `json:"parents_number" gorm:"size:20"`
	Address        string     `json:"address" gorm:"size:500"`
	PreviousSchool string     `json:"previous_school" gorm:"size:255"`
	MessageCount   int        `json:"message_count" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Student) TableName() string {
	return "students"
}
