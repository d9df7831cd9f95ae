package course

import "gorm.io/gorm"

// Attachment is a downloadable file attached to a lesson
type Attachment struct {
	gorm.Model
	LessonID  uint   `json:"lesson_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	FileURL   string `json:"file_url" gorm:"not null"`
	FileSize  int64  `json:"file_size" gorm:"default:0"` // bytes
	IsDeleted bool   `gorm:"default:false"`
}
