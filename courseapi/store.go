package courseapi

import (
	"context"
	"fmt"

	courseModels "lms/models/course"
	"lms/utils"

	"gorm.io/gorm"
)

// Store is the gorm-backed Service used when the catalog lives in this
// service. Uploaded files are already on local disk; "uploading" them just
// records their public URL on the entity.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCourse(ctx context.Context, payload CoursePayload) (*Created, error) {
	slug := payload.Slug
	if slug == "" {
		slug = utils.Slugify(payload.Title)
	}

	// Keep slugs unique by suffixing on collision
	var count int64
	s.db.WithContext(ctx).Model(&courseModels.Course{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		slug = slug + "-" + utils.RandomString(6)
	}

	course := courseModels.Course{
		InstructorID:     payload.InstructorID,
		Title:            payload.Title,
		Slug:             slug,
		ShortDescription: payload.ShortDescription,
		Description:      payload.Description,
		CategoryID:       payload.CategoryID,
		LevelID:          payload.LevelID,
		Language:         payload.Language,
		OriginalPrice:    payload.OriginalPrice,
		DiscountedPrice:  payload.DiscountedPrice,
		Requirements:     payload.Requirements,
		Outcomes:         payload.Outcomes,
		IntroVideoURL:    payload.IntroVideoURL,
		Status:           courseModels.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to create course: %v", err)
	}
	return &Created{ID: course.ID}, nil
}

func (s *Store) UploadThumbnail(ctx context.Context, courseID uint, filePath string) (string, error) {
	url := utils.GetFileURL(filePath)
	err := s.db.WithContext(ctx).Model(&courseModels.Course{}).
		Where("id = ?", courseID).
		Update("thumbnail_url", url).Error
	if err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %v", err)
	}
	return url, nil
}

func (s *Store) CreateSection(ctx context.Context, courseID uint, payload SectionPayload) (*Created, error) {
	section := courseModels.Section{
		CourseID:    courseID,
		Name:        payload.Name,
		Description: payload.Description,
		OrderIndex:  payload.OrderIndex,
	}
	if err := s.db.WithContext(ctx).Create(&section).Error; err != nil {
		return nil, fmt.Errorf("failed to create section: %v", err)
	}
	return &Created{ID: section.ID}, nil
}

func (s *Store) CreateLesson(ctx context.Context, courseID, sectionID uint, payload LessonPayload) (*Created, error) {
	lesson := courseModels.Lesson{
		CourseID:    courseID,
		SectionID:   sectionID,
		Title:       payload.Title,
		Type:        payload.Type,
		OrderIndex:  payload.OrderIndex,
		FreePreview: payload.FreePreview,
		VideoURL:    payload.VideoURL,
		TextContent: payload.TextContent,
	}
	if err := s.db.WithContext(ctx).Create(&lesson).Error; err != nil {
		return nil, fmt.Errorf("failed to create lesson: %v", err)
	}
	return &Created{ID: lesson.ID}, nil
}

func (s *Store) UploadLessonVideo(ctx context.Context, lessonID uint, filePath string) (string, error) {
	url := utils.GetFileURL(filePath)
	err := s.db.WithContext(ctx).Model(&courseModels.Lesson{}).
		Where("id = ?", lessonID).
		Update("video_url", url).Error
	if err != nil {
		return "", fmt.Errorf("failed to store lesson video: %v", err)
	}
	return url, nil
}

func (s *Store) CreateQuizQuestion(ctx context.Context, lessonID uint, payload QuestionPayload) (*Created, error) {
	question := courseModels.QuizQuestion{
		LessonID:   lessonID,
		Text:       payload.Text,
		OrderIndex: payload.OrderIndex,
	}

	tx := s.db.WithContext(ctx).Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create question: %v", err)
	}
	for i, opt := range payload.Options {
		option := courseModels.QuizOption{
			QuestionID: question.ID,
			Text:       opt.Text,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: i,
		}
		if err := tx.Create(&option).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create question option: %v", err)
		}
	}
	tx.Commit()

	return &Created{ID: question.ID}, nil
}

func (s *Store) AddAttachment(ctx context.Context, lessonID uint, payload AttachmentPayload) (*Created, error) {
	attachment := courseModels.Attachment{
		LessonID: lessonID,
		Name:     payload.Name,
		FileURL:  utils.GetFileURL(payload.FilePath),
		FileSize: payload.FileSize,
	}
	if err := s.db.WithContext(ctx).Create(&attachment).Error; err != nil {
		return nil, fmt.Errorf("failed to add attachment: %v", err)
	}
	return &Created{ID: attachment.ID}, nil
}

func (s *Store) AddSubtitle(ctx context.Context, lessonID uint, payload SubtitlePayload) (*Created, error) {
	subtitle := courseModels.Subtitle{
		LessonID:     lessonID,
		LanguageCode: payload.LanguageCode,
		LanguageName: payload.LanguageName,
		URL:          payload.URL,
		IsDefault:    payload.IsDefault,
	}

	tx := s.db.WithContext(ctx).Begin()
	if payload.IsDefault {
		// at most one default track per lesson
		if err := tx.Model(&courseModels.Subtitle{}).
			Where("lesson_id = ? AND is_deleted = ?", lessonID, false).
			Update("is_default", false).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to add subtitle: %v", err)
		}
	}
	if err := tx.Create(&subtitle).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to add subtitle: %v", err)
	}
	tx.Commit()

	return &Created{ID: subtitle.ID}, nil
}

func (s *Store) DeleteCourse(ctx context.Context, courseID uint) error {
	db := s.db.WithContext(ctx)
	tx := db.Begin()

	if err := tx.Model(&courseModels.Course{}).Where("id = ?", courseID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete course: %v", err)
	}
	if err := tx.Model(&courseModels.Section{}).Where("course_id = ?", courseID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete course sections: %v", err)
	}
	if err := tx.Model(&courseModels.Lesson{}).Where("course_id = ?", courseID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete course lessons: %v", err)
	}

	tx.Commit()
	return nil
}

func (s *Store) DeleteSection(ctx context.Context, sectionID uint) error {
	tx := s.db.WithContext(ctx).Begin()

	if err := tx.Model(&courseModels.Section{}).Where("id = ?", sectionID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete section: %v", err)
	}
	if err := tx.Model(&courseModels.Lesson{}).Where("section_id = ?", sectionID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete section lessons: %v", err)
	}

	tx.Commit()
	return nil
}

func (s *Store) DeleteLesson(ctx context.Context, lessonID uint) error {
	tx := s.db.WithContext(ctx).Begin()

	if err := tx.Model(&courseModels.Lesson{}).Where("id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete lesson: %v", err)
	}
	if err := tx.Model(&courseModels.QuizQuestion{}).Where("lesson_id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete lesson questions: %v", err)
	}
	if err := tx.Model(&courseModels.Attachment{}).Where("lesson_id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete lesson attachments: %v", err)
	}
	if err := tx.Model(&courseModels.Subtitle{}).Where("lesson_id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete lesson subtitles: %v", err)
	}

	tx.Commit()
	return nil
}

func (s *Store) DeleteQuizQuestion(ctx context.Context, questionID uint) error {
	tx := s.db.WithContext(ctx).Begin()

	if err := tx.Model(&courseModels.QuizQuestion{}).Where("id = ?", questionID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete question: %v", err)
	}
	if err := tx.Model(&courseModels.QuizOption{}).Where("question_id = ?", questionID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete question options: %v", err)
	}

	tx.Commit()
	return nil
}
