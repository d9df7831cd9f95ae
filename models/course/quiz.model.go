package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizQuestion belongs to a QUIZ lesson
type QuizQuestion struct {
	gorm.Model
	LessonID   uint   `json:"lesson_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"type:text;not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizOption is one answer choice for a question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt records a student's submission for a quiz lesson
type QuizAttempt struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	LessonID        uint           `json:"lesson_id" gorm:"index;not null"`
	SelectedOptions datatypes.JSON `json:"selected_options"` // question id -> chosen option ids
	Score           int            `json:"score"`
	MaxScore        int            `json:"max_score"`
	AttemptNumber   int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted       bool           `gorm:"default:false"`
}
