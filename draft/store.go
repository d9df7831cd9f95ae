package draft

import (
	"sync"
)

// Draft is one authoring session: course metadata plus the staged
// curriculum tree. Owned by a single instructor; the mutex only guards
// against concurrent HTTP requests from the same session.
type Draft struct {
	Token        string
	InstructorID uint

	mu         sync.RWMutex
	Form       CourseForm
	Curriculum Curriculum
}

// Store is the in-memory registry of open drafts, keyed by draft token.
// Drafts never touch the database; they are discarded after a successful
// build or an explicit discard.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// Open creates a fresh draft for an instructor and returns it
func (s *Store) Open(instructorID uint) *Draft {
	d := &Draft{
		Token:        NewTempID("drf"),
		InstructorID: instructorID,
	}
	s.mu.Lock()
	s.drafts[d.Token] = d
	s.mu.Unlock()
	return d
}

// Get returns the draft for a token, if it exists
func (s *Store) Get(token string) (*Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[token]
	return d, ok
}

// Discard drops a draft from the registry
func (s *Store) Discard(token string) {
	s.mu.Lock()
	delete(s.drafts, token)
	s.mu.Unlock()
}

// SetForm replaces the course metadata on the draft
func (d *Draft) SetForm(form CourseForm) {
	d.mu.Lock()
	d.Form = form
	d.mu.Unlock()
}

// GetForm returns a copy of the course metadata
func (d *Draft) GetForm() CourseForm {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Form
}

// AddSection appends a section to the draft curriculum
func (d *Draft) AddSection(name, description string) Section {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.AddSection(name, description)
}

// UpdateSection updates a section by temp id
func (d *Draft) UpdateSection(id, name, description string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.UpdateSection(id, name, description)
}

// DeleteSection removes a section and its subtree
func (d *Draft) DeleteSection(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.DeleteSection(id)
}

// AddLesson appends a lesson to a section
func (d *Draft) AddLesson(sectionID string, lesson Lesson) (Lesson, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.AddLesson(sectionID, lesson)
}

// UpdateLesson replaces a lesson by temp id
func (d *Draft) UpdateLesson(id string, lesson Lesson) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.UpdateLesson(id, lesson)
}

// DeleteLesson removes a lesson and its sub-entities
func (d *Draft) DeleteLesson(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Curriculum.DeleteLesson(id)
}

// SetThumbnail stages an uploaded thumbnail file on the form
func (d *Draft) SetThumbnail(path string) {
	d.mu.Lock()
	d.Form.ThumbnailFile = path
	d.mu.Unlock()
}

// SetLessonVideo stages an uploaded video file on a VIDEO lesson
func (d *Draft) SetLessonVideo(lessonID, path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	lesson, ok := d.Curriculum.FindLesson(lessonID)
	if !ok {
		return ErrNotFound
	}
	lesson.VideoFile = path
	return nil
}

// AddLessonAttachment stages an uploaded file as a lesson attachment
func (d *Draft) AddLessonAttachment(lessonID string, attachment Attachment) (Attachment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lesson, ok := d.Curriculum.FindLesson(lessonID)
	if !ok {
		return Attachment{}, ErrNotFound
	}
	if attachment.ID == "" {
		attachment.ID = NewTempID("att")
	}
	lesson.Attachments = append(lesson.Attachments, attachment)
	return attachment, nil
}

// Snapshot returns a deep copy of the curriculum for a build walk, so the
// orchestrator never races with further edits.
func (d *Draft) Snapshot() Curriculum {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := Curriculum{Sections: make([]Section, len(d.Curriculum.Sections))}
	for i, sec := range d.Curriculum.Sections {
		cp := sec
		cp.Lessons = make([]Lesson, len(sec.Lessons))
		for j, les := range sec.Lessons {
			lcp := les
			lcp.Questions = append([]Question(nil), les.Questions...)
			for k := range lcp.Questions {
				lcp.Questions[k].Options = append([]Option(nil), les.Questions[k].Options...)
			}
			lcp.Attachments = append([]Attachment(nil), les.Attachments...)
			lcp.Subtitles = append([]Subtitle(nil), les.Subtitles...)
			cp.Lessons[j] = lcp
		}
		out.Sections[i] = cp
	}
	return out
}
