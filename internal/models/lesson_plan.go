package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonPlan is a generated (or fallback-synthesized) lesson plan owned by a
// teacher. Sections holds the semi-structured plan body as returned by the
// generation endpoint; every section is optional.
type LessonPlan struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	TeacherID string `json:"teacher_id" gorm:"not null;index;size:255"`

	TemplateType    string `json:"template_type" gorm:"not null;size:50"`
	TopicName       string `json:"topic_name" gorm:"not null;size:255"`
	DurationMinutes int    `json:"duration_minutes" gorm:"not null"`
	Language        string `json:"language" gorm:"not null;size:50"`

	Sections datatypes.JSON `json:"sections"`

	// Fallback marks plans synthesized locally after a generation failure.
	Fallback bool `json:"fallback" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (LessonPlan) TableName() string {
	return "lesson_plans"
}
