package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOpenGetDiscard(t *testing.T) {
	store := NewStore()

	d := store.Open(7)
	assert.NotEmpty(t, d.Token)
	assert.Equal(t, uint(7), d.InstructorID)

	got, ok := store.Get(d.Token)
	require.True(t, ok)
	assert.Same(t, d, got)

	store.Discard(d.Token)
	_, ok = store.Get(d.Token)
	assert.False(t, ok)
}

func TestStoreGetUnknownToken(t *testing.T) {
	store := NewStore()
	_, ok := store.Get("drf-0-aaaaaa")
	assert.False(t, ok)
}

func TestDraftSetThumbnailSurvivesFormUpdate(t *testing.T) {
	store := NewStore()
	d := store.Open(7)

	d.SetThumbnail("/uploads/t.png")
	assert.Equal(t, "/uploads/t.png", d.GetForm().ThumbnailFile)

	// The controller carries the staged file over when metadata is re-saved
	form := d.GetForm()
	form.Title = "New Title"
	d.SetForm(form)
	assert.Equal(t, "/uploads/t.png", d.GetForm().ThumbnailFile)
}

func TestDraftSetLessonVideo(t *testing.T) {
	store := NewStore()
	d := store.Open(7)

	sec := d.AddSection("A", "")
	lesson, err := d.AddLesson(sec.ID, Lesson{Title: "L", Type: "VIDEO"})
	require.NoError(t, err)

	require.NoError(t, d.SetLessonVideo(lesson.ID, "/uploads/v.mp4"))

	snap := d.Snapshot()
	assert.Equal(t, "/uploads/v.mp4", snap.Sections[0].Lessons[0].VideoFile)

	assert.ErrorIs(t, d.SetLessonVideo("les-missing", "/x"), ErrNotFound)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	store := NewStore()
	d := store.Open(7)

	sec := d.AddSection("A", "")
	_, err := d.AddLesson(sec.ID, Lesson{
		Title: "Quiz",
		Type:  "QUIZ",
		Questions: []Question{
			{Text: "Q1", Options: []Option{{Text: "yes", IsCorrect: true}, {Text: "no"}}},
		},
	})
	require.NoError(t, err)

	snap := d.Snapshot()

	// Mutating the snapshot must not leak back into the draft
	snap.Sections[0].Name = "changed"
	snap.Sections[0].Lessons[0].Questions[0].Text = "changed"
	snap.Sections[0].Lessons[0].Questions[0].Options[0].Text = "changed"

	fresh := d.Snapshot()
	assert.Equal(t, "A", fresh.Sections[0].Name)
	assert.Equal(t, "Q1", fresh.Sections[0].Lessons[0].Questions[0].Text)
	assert.Equal(t, "yes", fresh.Sections[0].Lessons[0].Questions[0].Options[0].Text)
}
