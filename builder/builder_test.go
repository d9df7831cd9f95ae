package builder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lms/courseapi"
	"lms/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records every call and can be told to fail specific steps
type fakeService struct {
	nextID uint
	calls  []string

	failCreateCourse   bool
	failSectionAt      int // 1-based section create call count, 0 disables
	failQuestion       bool
	failVideoUpload    bool
	failAttachment     bool
	failDeleteOfCourse bool

	sectionCreates int
}

func newFakeService() *fakeService {
	return &fakeService{}
}

func (f *fakeService) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeService) create() *courseapi.Created {
	f.nextID++
	return &courseapi.Created{ID: f.nextID}
}

func (f *fakeService) CreateCourse(ctx context.Context, payload courseapi.CoursePayload) (*courseapi.Created, error) {
	if f.failCreateCourse {
		return nil, errors.New("catalog unavailable")
	}
	created := f.create()
	f.record("create course %d", created.ID)
	return created, nil
}

func (f *fakeService) UploadThumbnail(ctx context.Context, courseID uint, filePath string) (string, error) {
	f.record("upload thumbnail %d", courseID)
	return "/uploads/thumb.png", nil
}

func (f *fakeService) CreateSection(ctx context.Context, courseID uint, payload courseapi.SectionPayload) (*courseapi.Created, error) {
	f.sectionCreates++
	if f.failSectionAt > 0 && f.sectionCreates == f.failSectionAt {
		return nil, errors.New("section rejected")
	}
	created := f.create()
	f.record("create section %d order %d", created.ID, payload.OrderIndex)
	return created, nil
}

func (f *fakeService) CreateLesson(ctx context.Context, courseID, sectionID uint, payload courseapi.LessonPayload) (*courseapi.Created, error) {
	created := f.create()
	f.record("create lesson %d order %d", created.ID, payload.OrderIndex)
	return created, nil
}

func (f *fakeService) UploadLessonVideo(ctx context.Context, lessonID uint, filePath string) (string, error) {
	if f.failVideoUpload {
		return "", errors.New("upload timed out")
	}
	f.record("upload video %d", lessonID)
	return "/uploads/video.mp4", nil
}

func (f *fakeService) CreateQuizQuestion(ctx context.Context, lessonID uint, payload courseapi.QuestionPayload) (*courseapi.Created, error) {
	if f.failQuestion {
		return nil, errors.New("question rejected")
	}
	created := f.create()
	f.record("create question %d", created.ID)
	return created, nil
}

func (f *fakeService) AddAttachment(ctx context.Context, lessonID uint, payload courseapi.AttachmentPayload) (*courseapi.Created, error) {
	if f.failAttachment {
		return nil, errors.New("attachment too large")
	}
	created := f.create()
	f.record("add attachment %d", created.ID)
	return created, nil
}

func (f *fakeService) AddSubtitle(ctx context.Context, lessonID uint, payload courseapi.SubtitlePayload) (*courseapi.Created, error) {
	created := f.create()
	f.record("add subtitle %d", created.ID)
	return created, nil
}

func (f *fakeService) DeleteCourse(ctx context.Context, courseID uint) error {
	if f.failDeleteOfCourse {
		return errors.New("delete refused")
	}
	f.record("delete course %d", courseID)
	return nil
}

func (f *fakeService) DeleteSection(ctx context.Context, sectionID uint) error {
	f.record("delete section %d", sectionID)
	return nil
}

func (f *fakeService) DeleteLesson(ctx context.Context, lessonID uint) error {
	f.record("delete lesson %d", lessonID)
	return nil
}

func (f *fakeService) DeleteQuizQuestion(ctx context.Context, questionID uint) error {
	f.record("delete question %d", questionID)
	return nil
}

func validForm() draft.CourseForm {
	return draft.CourseForm{
		Title:         "Practical Testing",
		CategoryID:    1,
		LevelID:       1,
		Language:      "en",
		OriginalPrice: "100",
	}
}

func twoSectionCurriculum() draft.Curriculum {
	c := draft.Curriculum{}
	first := c.AddSection("Basics", "")
	second := c.AddSection("Beyond", "")
	c.AddLesson(first.ID, draft.Lesson{Title: "Welcome", Type: "TEXT", TextContent: "hi"})
	c.AddLesson(first.ID, draft.Lesson{Title: "Setup", Type: "VIDEO", VideoFile: "/tmp/setup.mp4"})
	c.AddLesson(second.ID, draft.Lesson{
		Title: "Checkpoint",
		Type:  "QUIZ",
		Questions: []draft.Question{
			{Text: "2+2?", Options: []draft.Option{{Text: "4", IsCorrect: true}, {Text: "5"}}},
		},
	})
	return c
}

func TestBuildSuccess(t *testing.T) {
	svc := newFakeService()
	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusSuccess, result.Status)
	assert.NotZero(t, result.CourseID)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Compensations)

	// course, 2 sections, 3 lessons, 1 question
	require.Len(t, result.Created, 7)
	assert.Equal(t, KindCourse, result.Created[0].Kind)
	assert.Equal(t, KindQuestion, result.Created[6].Kind)
}

func TestBuildInvalidFormMakesNoCalls(t *testing.T) {
	svc := newFakeService()
	result := New(svc).Build(context.Background(), 7, draft.CourseForm{}, twoSectionCurriculum())

	assert.Equal(t, StatusInvalid, result.Status)
	assert.NotEmpty(t, result.FieldErrors)
	assert.Empty(t, svc.calls)
	assert.Empty(t, result.Created)
}

func TestBuildCourseCreateFailure(t *testing.T) {
	svc := newFakeService()
	svc.failCreateCourse = true

	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, KindCourse, result.FailedStep)
	// Nothing was created, nothing to compensate
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Compensations)
	assert.Empty(t, svc.calls)
}

func TestBuildVideoUploadFailureIsWarning(t *testing.T) {
	svc := newFakeService()
	svc.failVideoUpload = true

	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "video", result.Warnings[0].Step)
	assert.Equal(t, "Setup", result.Warnings[0].Entity)
}

func TestBuildAttachmentFailureIsWarning(t *testing.T) {
	svc := newFakeService()
	svc.failAttachment = true

	curriculum := draft.Curriculum{}
	sec := curriculum.AddSection("Basics", "")
	curriculum.AddLesson(sec.ID, draft.Lesson{
		Title:       "Reading",
		Type:        "TEXT",
		TextContent: "notes",
		Attachments: []draft.Attachment{{Name: "notes.pdf", FilePath: "/tmp/notes.pdf"}},
	})

	result := New(svc).Build(context.Background(), 7, validForm(), curriculum)

	assert.Equal(t, StatusSuccess, result.Status)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "attachment", result.Warnings[0].Step)
}

func TestBuildSectionFailureRollsBackInReverse(t *testing.T) {
	svc := newFakeService()
	svc.failSectionAt = 2 // first section and its lessons go through

	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusRolledBack, result.Status)
	assert.Equal(t, KindSection, result.FailedStep)

	// course, first section, its two lessons
	require.Len(t, result.Created, 4)
	require.Len(t, result.Compensations, 4)

	// Reverse creation order, course deleted last
	assert.Equal(t, KindLesson, result.Compensations[0].Entity.Kind)
	assert.Equal(t, KindLesson, result.Compensations[1].Entity.Kind)
	assert.Equal(t, KindSection, result.Compensations[2].Entity.Kind)
	assert.Equal(t, KindCourse, result.Compensations[3].Entity.Kind)
	for _, outcome := range result.Compensations {
		assert.True(t, outcome.Deleted)
	}

	// No creation calls after the failed section
	last := svc.calls[len(svc.calls)-1]
	assert.Contains(t, last, "delete course")
}

func TestBuildQuestionFailureIsFatal(t *testing.T) {
	svc := newFakeService()
	svc.failQuestion = true

	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusRolledBack, result.Status)
	assert.Equal(t, KindQuestion, result.FailedStep)
	assert.NotEmpty(t, result.Compensations)
	assert.Equal(t, KindCourse, result.Compensations[len(result.Compensations)-1].Entity.Kind)
}

func TestBuildRollbackIncomplete(t *testing.T) {
	svc := newFakeService()
	svc.failSectionAt = 2
	svc.failDeleteOfCourse = true

	result := New(svc).Build(context.Background(), 7, validForm(), twoSectionCurriculum())

	assert.Equal(t, StatusRollbackIncomplete, result.Status)

	courseOutcome := result.Compensations[len(result.Compensations)-1]
	assert.Equal(t, KindCourse, courseOutcome.Entity.Kind)
	assert.False(t, courseOutcome.Deleted)
	assert.Contains(t, result.Error, fmt.Sprintf("delete course %d manually", result.CourseID))
}
