// Package courseapi is the boundary the course builder talks to when
// materializing a curriculum draft. The catalog may live in this service
// (gorm-backed Store) or behind a remote REST API (resty-backed Client);
// the builder only sees the Service interface.
package courseapi

import "context"

// Created is the server's answer to any create call
type Created struct {
	ID uint `json:"id"`
}

// CoursePayload is the validated, coerced course metadata
type CoursePayload struct {
	InstructorID     uint    `json:"instructor_id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"description"`
	CategoryID       uint    `json:"category_id"`
	LevelID          uint    `json:"level_id"`
	Language         string  `json:"language"`
	OriginalPrice    float64 `json:"original_price"`
	DiscountedPrice  float64 `json:"discounted_price"`
	Requirements     string  `json:"requirements"`
	Outcomes         string  `json:"outcomes"`
	IntroVideoURL    string  `json:"intro_video_url"`
}

type SectionPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type LessonPayload struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	OrderIndex  int    `json:"order_index"`
	FreePreview bool   `json:"free_preview"`
	VideoURL    string `json:"video_url"`
	TextContent string `json:"text_content"`
}

type OptionPayload struct {
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index"`
}

type QuestionPayload struct {
	Text       string          `json:"text"`
	OrderIndex int             `json:"order_index"`
	Options    []OptionPayload `json:"options"`
}

type AttachmentPayload struct {
	Name     string `json:"name"`
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size"`
}

type SubtitlePayload struct {
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
	URL          string `json:"url"`
	IsDefault    bool   `json:"is_default"`
}

// Service is the remote course catalog. Creates return the new entity id;
// deletes are void. Failures come back as plain errors carrying a
// human-readable message.
type Service interface {
	CreateCourse(ctx context.Context, payload CoursePayload) (*Created, error)
	UploadThumbnail(ctx context.Context, courseID uint, filePath string) (string, error)
	CreateSection(ctx context.Context, courseID uint, payload SectionPayload) (*Created, error)
	CreateLesson(ctx context.Context, courseID, sectionID uint, payload LessonPayload) (*Created, error)
	UploadLessonVideo(ctx context.Context, lessonID uint, filePath string) (string, error)
	CreateQuizQuestion(ctx context.Context, lessonID uint, payload QuestionPayload) (*Created, error)
	AddAttachment(ctx context.Context, lessonID uint, payload AttachmentPayload) (*Created, error)
	AddSubtitle(ctx context.Context, lessonID uint, payload SubtitlePayload) (*Created, error)
	DeleteCourse(ctx context.Context, courseID uint) error
	DeleteSection(ctx context.Context, sectionID uint) error
	DeleteLesson(ctx context.Context, lessonID uint) error
	DeleteQuizQuestion(ctx context.Context, questionID uint) error
}
