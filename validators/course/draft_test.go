package courseValidator

import (
	"testing"

	"lms/draft"

	"github.com/stretchr/testify/assert"
)

func TestValidateLessonText(t *testing.T) {
	errors := validateLesson(&draft.Lesson{Title: "Reading", Type: "TEXT", TextContent: "notes"})
	assert.Empty(t, errors)

	errors = validateLesson(&draft.Lesson{Title: "Reading", Type: "TEXT"})
	assert.Contains(t, errors, "text_content")
}

func TestValidateLessonUnknownType(t *testing.T) {
	errors := validateLesson(&draft.Lesson{Title: "X", Type: "AUDIO"})
	assert.Contains(t, errors, "type")
}

func TestValidateLessonMissingTitle(t *testing.T) {
	errors := validateLesson(&draft.Lesson{Type: "VIDEO"})
	assert.Contains(t, errors, "title")
}

func TestValidateQuizLessonRules(t *testing.T) {
	quiz := func(questions ...draft.Question) *draft.Lesson {
		return &draft.Lesson{Title: "Checkpoint", Type: "QUIZ", Questions: questions}
	}

	errors := validateLesson(quiz())
	assert.Equal(t, "Quiz lessons need at least one question!", errors["questions"])

	errors = validateLesson(quiz(draft.Question{Text: "Q", Options: []draft.Option{{Text: "a", IsCorrect: true}}}))
	assert.Equal(t, "Every question needs at least two options!", errors["questions"])

	errors = validateLesson(quiz(draft.Question{Text: "Q", Options: []draft.Option{{Text: "a"}, {Text: "b"}}}))
	assert.Equal(t, "Every question needs at least one correct option!", errors["questions"])

	errors = validateLesson(quiz(draft.Question{Text: "Q", Options: []draft.Option{{Text: "a", IsCorrect: true}, {Text: "b"}}}))
	assert.Empty(t, errors)
}

func TestValidateLessonSubtitleRules(t *testing.T) {
	lesson := &draft.Lesson{
		Title: "Setup", Type: "VIDEO",
		Subtitles: []draft.Subtitle{{LanguageCode: "en"}},
	}
	errors := validateLesson(lesson)
	assert.Contains(t, errors, "subtitles")

	lesson.Subtitles = []draft.Subtitle{
		{LanguageCode: "en", URL: "https://cdn/en.vtt", IsDefault: true},
		{LanguageCode: "vi", URL: "https://cdn/vi.vtt", IsDefault: true},
	}
	errors = validateLesson(lesson)
	assert.Equal(t, "Only one subtitle can be the default!", errors["subtitles"])

	lesson.Subtitles[1].IsDefault = false
	errors = validateLesson(lesson)
	assert.Empty(t, errors)
}
