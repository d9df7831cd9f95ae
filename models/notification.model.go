package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationWelcome         = "WELCOME"
	NotificationEnrollment      = "ENROLLMENT"
	NotificationCoursePublished = "COURSE_PUBLISHED"
	NotificationCourseRejected  = "COURSE_REJECTED"
	NotificationPayoutCompleted = "PAYOUT_COMPLETED"
	NotificationCertificate     = "CERTIFICATE"
)

// Notification is the in-app counterpart of every email we send
type Notification struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Type      string         `json:"type" gorm:"not null"`
	Title     string         `json:"title"`
	Body      string         `json:"body" gorm:"type:text"`
	Data      datatypes.JSON `json:"data"` // type-specific payload (course id, order ref, ...)
	IsRead    bool           `json:"is_read" gorm:"default:false"`
	IsDeleted bool           `gorm:"default:false"`
}
