package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a student's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index;not null"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	OrderID          *uint      `json:"order_id" gorm:"index"`            // nil for free courses
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress         float64    `json:"progress" gorm:"default:0"`        // percentage 0-100
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}

const (
	EnrollmentEnrolled   = "ENROLLED"
	EnrollmentInProgress = "IN_PROGRESS"
	EnrollmentCompleted  = "COMPLETED"
)

// LessonCompletion marks one lesson done for one student
type LessonCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	LessonID  uint `json:"lesson_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}
