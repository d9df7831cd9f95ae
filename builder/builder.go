// Package builder materializes a curriculum draft against the course
// service: course first, then sections, lessons and their sub-entities in
// array order. Creation is strictly sequential because server-side order
// indices derive from array position.
package builder

import (
	"context"
	"fmt"
	"log"

	"lms/courseapi"
	"lms/draft"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"
)

// Build status values
const (
	StatusSuccess            = "SUCCESS"
	StatusInvalid            = "INVALID"
	StatusFailed             = "FAILED"
	StatusRolledBack         = "ROLLED_BACK"
	StatusRollbackIncomplete = "ROLLBACK_INCOMPLETE"
)

// Entity kinds tracked in the compensation log
const (
	KindCourse   = "course"
	KindSection  = "section"
	KindLesson   = "lesson"
	KindQuestion = "question"
)

// Warning records a best-effort step that failed without stopping the build
type Warning struct {
	Step    string `json:"step"`
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

// CreatedEntity is one compensation log record
type CreatedEntity struct {
	Kind  string `json:"kind"`
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// CompensationOutcome reports one rollback delete attempt
type CompensationOutcome struct {
	Entity  CreatedEntity `json:"entity"`
	Deleted bool          `json:"deleted"`
	Error   string        `json:"error,omitempty"`
}

// Result is the full build report
type Result struct {
	Status        string                `json:"status"`
	CourseID      uint                  `json:"course_id,omitempty"`
	FieldErrors   map[string]string     `json:"field_errors,omitempty"`
	Created       []CreatedEntity       `json:"created,omitempty"`
	Warnings      []Warning             `json:"warnings,omitempty"`
	FailedStep    string                `json:"failed_step,omitempty"`
	Error         string                `json:"error,omitempty"`
	Compensations []CompensationOutcome `json:"compensations,omitempty"`
}

// fatalError aborts the walk; the step tells the report where it died
type fatalError struct {
	step string
	err  error
}

func (e *fatalError) Error() string { return e.err.Error() }

// Builder runs draft builds against a course service
type Builder struct {
	svc courseapi.Service
}

func New(svc courseapi.Service) *Builder {
	return &Builder{svc: svc}
}

// Build validates the form, creates the course and walks the curriculum
// top-down, depth-first. Structural creations (course, section, lesson,
// question) are fatal on failure; media steps (thumbnail, video,
// attachment, subtitle) are best-effort and only produce warnings. On a
// fatal failure no further creation calls are issued and every entity in
// the compensation log is deleted once, in reverse creation order, the
// course last.
func (b *Builder) Build(ctx context.Context, instructorID uint, form draft.CourseForm, curriculum draft.Curriculum) *Result {
	result := &Result{}

	// Step 1: validate metadata before any network activity
	payload, fieldErrors := courseValidator.ValidateCourseForm(form)
	if fieldErrors != nil {
		result.Status = StatusInvalid
		result.FieldErrors = fieldErrors
		return result
	}
	payload.InstructorID = instructorID

	// Step 2: create the course. Nothing to roll back if this fails.
	created, err := b.svc.CreateCourse(ctx, *payload)
	if err != nil {
		log.Printf("[COURSE-BUILDER] course creation failed: %v", err)
		result.Status = StatusFailed
		result.FailedStep = KindCourse
		result.Error = err.Error()
		return result
	}
	result.CourseID = created.ID
	result.Created = append(result.Created, CreatedEntity{Kind: KindCourse, ID: created.ID, Label: payload.Title})
	log.Printf("[COURSE-BUILDER] course %d created (%s)", created.ID, payload.Slug)

	// Step 3: thumbnail is secondary media, best-effort
	if form.ThumbnailFile != "" {
		if _, err := b.svc.UploadThumbnail(ctx, created.ID, form.ThumbnailFile); err != nil {
			result.warn("thumbnail", payload.Title, err)
		}
	}

	// Step 4: walk the curriculum
	if err := b.walk(ctx, created.ID, curriculum, result); err != nil {
		fatal := err.(*fatalError)
		log.Printf("[COURSE-BUILDER] fatal failure at %s: %v", fatal.step, fatal.err)
		result.Status = StatusFailed
		result.FailedStep = fatal.step
		result.Error = fatal.err.Error()
		b.compensate(ctx, result)
		return result
	}

	result.Status = StatusSuccess
	log.Printf("[COURSE-BUILDER] course %d built: %d sections, %d lessons, %d warnings",
		created.ID, len(curriculum.Sections), curriculum.LessonCount(), len(result.Warnings))
	return result
}

// walk creates sections and lessons in array order, returning a fatalError
// at the first structural failure
func (b *Builder) walk(ctx context.Context, courseID uint, curriculum draft.Curriculum, result *Result) error {
	for i, section := range curriculum.Sections {
		createdSection, err := b.svc.CreateSection(ctx, courseID, courseapi.SectionPayload{
			Name:        section.Name,
			Description: section.Description,
			OrderIndex:  i,
		})
		if err != nil {
			return &fatalError{step: KindSection, err: err}
		}
		result.Created = append(result.Created, CreatedEntity{Kind: KindSection, ID: createdSection.ID, Label: section.Name})

		for j, lesson := range section.Lessons {
			if err := b.buildLesson(ctx, courseID, createdSection.ID, j, lesson, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) buildLesson(ctx context.Context, courseID, sectionID uint, orderIndex int, lesson draft.Lesson, result *Result) error {
	createdLesson, err := b.svc.CreateLesson(ctx, courseID, sectionID, courseapi.LessonPayload{
		Title:       lesson.Title,
		Type:        lesson.Type,
		OrderIndex:  orderIndex,
		FreePreview: lesson.FreePreview,
		VideoURL:    lesson.VideoURL,
		TextContent: lesson.TextContent,
	})
	if err != nil {
		return &fatalError{step: KindLesson, err: err}
	}
	result.Created = append(result.Created, CreatedEntity{Kind: KindLesson, ID: createdLesson.ID, Label: lesson.Title})

	// Video file upload is best-effort; the lesson persists without it
	if lesson.Type == courseModels.LessonTypeVideo && lesson.VideoFile != "" {
		if _, err := b.svc.UploadLessonVideo(ctx, createdLesson.ID, lesson.VideoFile); err != nil {
			result.warn("video", lesson.Title, err)
		}
	}

	// Quiz questions are structural, fatal on failure
	if lesson.Type == courseModels.LessonTypeQuiz {
		for k, question := range lesson.Questions {
			options := make([]courseapi.OptionPayload, len(question.Options))
			for m, opt := range question.Options {
				options[m] = courseapi.OptionPayload{Text: opt.Text, IsCorrect: opt.IsCorrect, OrderIndex: m}
			}
			createdQuestion, err := b.svc.CreateQuizQuestion(ctx, createdLesson.ID, courseapi.QuestionPayload{
				Text:       question.Text,
				OrderIndex: k,
				Options:    options,
			})
			if err != nil {
				return &fatalError{step: KindQuestion, err: err}
			}
			result.Created = append(result.Created, CreatedEntity{Kind: KindQuestion, ID: createdQuestion.ID, Label: question.Text})
		}
	}

	for _, attachment := range lesson.Attachments {
		_, err := b.svc.AddAttachment(ctx, createdLesson.ID, courseapi.AttachmentPayload{
			Name:     attachment.Name,
			FilePath: attachment.FilePath,
			FileSize: attachment.FileSize,
		})
		if err != nil {
			result.warn("attachment", attachment.Name, err)
		}
	}

	for _, subtitle := range lesson.Subtitles {
		_, err := b.svc.AddSubtitle(ctx, createdLesson.ID, courseapi.SubtitlePayload{
			LanguageCode: subtitle.LanguageCode,
			LanguageName: subtitle.LanguageName,
			URL:          subtitle.URL,
			IsDefault:    subtitle.IsDefault,
		})
		if err != nil {
			result.warn("subtitle", subtitle.LanguageCode, err)
		}
	}

	return nil
}

// compensate walks the created-entity log in reverse, deleting each entity
// once. No retries. Media rows die with their parent lesson, so only
// structural entities are logged.
func (b *Builder) compensate(ctx context.Context, result *Result) {
	incomplete := false

	for i := len(result.Created) - 1; i >= 0; i-- {
		entity := result.Created[i]

		var err error
		switch entity.Kind {
		case KindQuestion:
			err = b.svc.DeleteQuizQuestion(ctx, entity.ID)
		case KindLesson:
			err = b.svc.DeleteLesson(ctx, entity.ID)
		case KindSection:
			err = b.svc.DeleteSection(ctx, entity.ID)
		case KindCourse:
			err = b.svc.DeleteCourse(ctx, entity.ID)
		}

		outcome := CompensationOutcome{Entity: entity, Deleted: err == nil}
		if err != nil {
			incomplete = true
			outcome.Error = err.Error()
			log.Printf("[COURSE-BUILDER] rollback of %s %d failed: %v", entity.Kind, entity.ID, err)
		}
		result.Compensations = append(result.Compensations, outcome)
	}

	if incomplete {
		result.Status = StatusRollbackIncomplete
		result.Error = fmt.Sprintf("%s (rollback incomplete, delete course %d manually)", result.Error, result.CourseID)
	} else {
		result.Status = StatusRolledBack
	}
}

func (r *Result) warn(step, entity string, err error) {
	log.Printf("[COURSE-BUILDER] %s failed for %q: %v", step, entity, err)
	r.Warnings = append(r.Warnings, Warning{Step: step, Entity: entity, Message: err.Error()})
}
