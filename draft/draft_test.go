package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSectionAssignsContiguousIndices(t *testing.T) {
	c := &Curriculum{}

	first := c.AddSection("Intro", "")
	second := c.AddSection("Basics", "")
	third := c.AddSection("Advanced", "")

	assert.Equal(t, 0, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)
	assert.Equal(t, 2, third.OrderIndex)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDeleteSectionReindexesRemaining(t *testing.T) {
	c := &Curriculum{}
	c.AddSection("A", "")
	b := c.AddSection("B", "")
	c.AddSection("C", "")

	require.NoError(t, c.DeleteSection(b.ID))

	require.Len(t, c.Sections, 2)
	assert.Equal(t, "A", c.Sections[0].Name)
	assert.Equal(t, 0, c.Sections[0].OrderIndex)
	assert.Equal(t, "C", c.Sections[1].Name)
	assert.Equal(t, 1, c.Sections[1].OrderIndex)
}

func TestDeleteSectionCascades(t *testing.T) {
	c := &Curriculum{}
	sec := c.AddSection("A", "")

	_, err := c.AddLesson(sec.ID, Lesson{Title: "L1", Type: "TEXT", TextContent: "hello"})
	require.NoError(t, err)
	_, err = c.AddLesson(sec.ID, Lesson{Title: "L2", Type: "TEXT", TextContent: "world"})
	require.NoError(t, err)
	assert.Equal(t, 2, c.LessonCount())

	require.NoError(t, c.DeleteSection(sec.ID))

	assert.Empty(t, c.Sections)
	assert.Equal(t, 0, c.LessonCount())
}

func TestAddLessonAssignsIDAndIndexPerSection(t *testing.T) {
	c := &Curriculum{}
	first := c.AddSection("A", "")
	second := c.AddSection("B", "")

	l1, err := c.AddLesson(first.ID, Lesson{Title: "L1", Type: "TEXT"})
	require.NoError(t, err)
	l2, err := c.AddLesson(first.ID, Lesson{Title: "L2", Type: "TEXT"})
	require.NoError(t, err)
	l3, err := c.AddLesson(second.ID, Lesson{Title: "L3", Type: "TEXT"})
	require.NoError(t, err)

	assert.Equal(t, 0, l1.OrderIndex)
	assert.Equal(t, 1, l2.OrderIndex)
	// Indices restart per section
	assert.Equal(t, 0, l3.OrderIndex)

	assert.NotEmpty(t, l1.ID)
	assert.NotEqual(t, l1.ID, l2.ID)
}

func TestAddLessonUnknownSection(t *testing.T) {
	c := &Curriculum{}
	_, err := c.AddLesson("sec-missing", Lesson{Title: "L", Type: "TEXT"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddLessonStampsChildren(t *testing.T) {
	c := &Curriculum{}
	sec := c.AddSection("A", "")

	lesson, err := c.AddLesson(sec.ID, Lesson{
		Title: "Quiz",
		Type:  "QUIZ",
		Questions: []Question{
			{Text: "Q1", Options: []Option{{Text: "yes", IsCorrect: true}, {Text: "no"}}},
		},
		Attachments: []Attachment{{Name: "slides.pdf"}},
		Subtitles:   []Subtitle{{LanguageCode: "en", URL: "https://cdn/subs.vtt"}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lesson.Questions[0].ID)
	assert.NotEmpty(t, lesson.Attachments[0].ID)
	assert.NotEmpty(t, lesson.Subtitles[0].ID)
}

func TestUpdateLessonKeepsIdentityAndPosition(t *testing.T) {
	c := &Curriculum{}
	sec := c.AddSection("A", "")
	original, err := c.AddLesson(sec.ID, Lesson{Title: "Old", Type: "TEXT", TextContent: "old"})
	require.NoError(t, err)
	_, err = c.AddLesson(sec.ID, Lesson{Title: "Other", Type: "TEXT"})
	require.NoError(t, err)

	err = c.UpdateLesson(original.ID, Lesson{Title: "New", Type: "VIDEO", VideoURL: "https://cdn/v.mp4"})
	require.NoError(t, err)

	updated, found := c.FindLesson(original.ID)
	require.True(t, found)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "VIDEO", updated.Type)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, 0, updated.OrderIndex)
}

func TestDeleteLessonReindexesWithinSection(t *testing.T) {
	c := &Curriculum{}
	sec := c.AddSection("A", "")
	c.AddLesson(sec.ID, Lesson{Title: "L1", Type: "TEXT"})
	l2, _ := c.AddLesson(sec.ID, Lesson{Title: "L2", Type: "TEXT"})
	c.AddLesson(sec.ID, Lesson{Title: "L3", Type: "TEXT"})

	require.NoError(t, c.DeleteLesson(l2.ID))

	section, found := c.FindSection(sec.ID)
	require.True(t, found)
	require.Len(t, section.Lessons, 2)
	assert.Equal(t, "L1", section.Lessons[0].Title)
	assert.Equal(t, 0, section.Lessons[0].OrderIndex)
	assert.Equal(t, "L3", section.Lessons[1].Title)
	assert.Equal(t, 1, section.Lessons[1].OrderIndex)
}

func TestNewTempIDCarriesPrefix(t *testing.T) {
	id := NewTempID("sec")
	assert.Regexp(t, `^sec-\d+-[a-z0-9]{6}$`, id)
}
