package course

import "gorm.io/gorm"

const (
	LessonTypeVideo = "VIDEO"
	LessonTypeText  = "TEXT"
	LessonTypeQuiz  = "QUIZ"
)

// Lesson is an ordered unit within a section. Exactly one content payload
// is active per type: VideoURL for VIDEO, TextContent for TEXT, the
// QuizQuestion rows for QUIZ.
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Type        string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, TEXT, QUIZ
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	FreePreview bool   `json:"free_preview" gorm:"default:false"`
	Duration    int    `json:"duration" gorm:"default:0"` // seconds, video lessons only
	VideoURL    string `json:"video_url"`
	TextContent string `json:"text_content" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
