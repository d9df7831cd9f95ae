package course

import "gorm.io/gorm"

// Subtitle is a caption track registered by URL on a video lesson.
// At most one subtitle per lesson should carry IsDefault.
type Subtitle struct {
	gorm.Model
	LessonID     uint   `json:"lesson_id" gorm:"index;not null"`
	LanguageCode string `json:"language_code" gorm:"size:10;not null"`
	LanguageName string `json:"language_name"`
	URL          string `json:"url" gorm:"not null"`
	IsDefault    bool   `json:"is_default" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
