package draft

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrNotFound = errors.New("draft node not found")

const tempIDChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewTempID builds a client-local identifier for a not-yet-persisted node:
// prefix + millisecond timestamp + random suffix. Collision-resistant within
// a single authoring session, never reused once the node is promoted to a
// server id.
func NewTempID(prefix string) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = tempIDChars[rng.Intn(len(tempIDChars))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// CourseForm is the instructor-entered metadata for a draft course.
// Prices arrive as strings from the form layer and are coerced by the
// course validator before a build.
type CourseForm struct {
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	CategoryID       uint   `json:"category_id"`
	LevelID          uint   `json:"level_id"`
	Language         string `json:"language"`
	OriginalPrice    string `json:"original_price"`
	DiscountedPrice  string `json:"discounted_price"`
	Requirements     string `json:"requirements"`
	Outcomes         string `json:"outcomes"`
	ThumbnailFile    string `json:"thumbnail_file"` // local upload path, optional
	IntroVideoURL    string `json:"intro_video_url"`
}

// Question is a quiz question under a QUIZ lesson
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option is one answer choice; at least one per question should be correct
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Attachment is a downloadable file staged on a lesson
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FilePath string `json:"file_path"` // local upload path
	FileSize int64  `json:"file_size"`
}

// Subtitle is a caption track registered by URL
type Subtitle struct {
	ID           string `json:"id"`
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
	URL          string `json:"url"`
	IsDefault    bool   `json:"is_default"`
}

// Lesson is an ordered unit within a section. Exactly one content payload
// is meaningful per type: VideoURL/VideoFile for VIDEO, TextContent for
// TEXT, Questions for QUIZ.
type Lesson struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        string       `json:"type"` // VIDEO, TEXT, QUIZ
	OrderIndex  int          `json:"order_index"`
	FreePreview bool         `json:"free_preview"`
	VideoURL    string       `json:"video_url"`
	VideoFile   string       `json:"video_file"` // local upload path, uploaded during build
	TextContent string       `json:"text_content"`
	Questions   []Question   `json:"questions"`
	Attachments []Attachment `json:"attachments"`
	Subtitles   []Subtitle   `json:"subtitles"`
}

// Section is an ordered chapter holding lessons
type Section struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	OrderIndex  int      `json:"order_index"`
	Lessons     []Lesson `json:"lessons"`
}

// Curriculum is the in-memory staging tree for one course draft. All state
// is client-side; nothing here touches the network. Nodes carry temporary
// ids until the build promotes them to server-assigned ids.
type Curriculum struct {
	Sections []Section `json:"sections"`
}

// AddSection appends a section with a fresh temp id. Its order index equals
// the section count before the add, keeping indices zero-based contiguous.
func (c *Curriculum) AddSection(name, description string) Section {
	sec := Section{
		ID:          NewTempID("sec"),
		Name:        name,
		Description: description,
		OrderIndex:  len(c.Sections),
	}
	c.Sections = append(c.Sections, sec)
	return sec
}

// UpdateSection replaces the name/description of the section matching id
func (c *Curriculum) UpdateSection(id, name, description string) error {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			if name != "" {
				c.Sections[i].Name = name
			}
			c.Sections[i].Description = description
			return nil
		}
	}
	return ErrNotFound
}

// DeleteSection removes a section and its entire subtree, then reindexes
// the remaining sections so order stays contiguous.
func (c *Curriculum) DeleteSection(id string) error {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			c.Sections = append(c.Sections[:i], c.Sections[i+1:]...)
			c.reindexSections()
			return nil
		}
	}
	return ErrNotFound
}

// AddLesson appends a lesson to the section matching sectionID, assigning a
// fresh temp id and the next order index within that section.
func (c *Curriculum) AddLesson(sectionID string, lesson Lesson) (Lesson, error) {
	for i := range c.Sections {
		if c.Sections[i].ID == sectionID {
			lesson.ID = NewTempID("les")
			lesson.OrderIndex = len(c.Sections[i].Lessons)
			stampLessonChildren(&lesson)
			c.Sections[i].Lessons = append(c.Sections[i].Lessons, lesson)
			return lesson, nil
		}
	}
	return Lesson{}, ErrNotFound
}

// UpdateLesson replaces the lesson matching id, keeping its id and position
func (c *Curriculum) UpdateLesson(id string, lesson Lesson) error {
	for i := range c.Sections {
		for j := range c.Sections[i].Lessons {
			if c.Sections[i].Lessons[j].ID == id {
				lesson.ID = id
				lesson.OrderIndex = c.Sections[i].Lessons[j].OrderIndex
				stampLessonChildren(&lesson)
				c.Sections[i].Lessons[j] = lesson
				return nil
			}
		}
	}
	return ErrNotFound
}

// DeleteLesson removes the lesson matching id together with its questions,
// attachments and subtitles, then reindexes its section's lessons.
func (c *Curriculum) DeleteLesson(id string) error {
	for i := range c.Sections {
		for j := range c.Sections[i].Lessons {
			if c.Sections[i].Lessons[j].ID == id {
				c.Sections[i].Lessons = append(c.Sections[i].Lessons[:j], c.Sections[i].Lessons[j+1:]...)
				for k := range c.Sections[i].Lessons {
					c.Sections[i].Lessons[k].OrderIndex = k
				}
				return nil
			}
		}
	}
	return ErrNotFound
}

// FindSection returns the section matching id
func (c *Curriculum) FindSection(id string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// FindLesson returns the lesson matching id
func (c *Curriculum) FindLesson(id string) (*Lesson, bool) {
	for i := range c.Sections {
		for j := range c.Sections[i].Lessons {
			if c.Sections[i].Lessons[j].ID == id {
				return &c.Sections[i].Lessons[j], true
			}
		}
	}
	return nil, false
}

// LessonCount counts lessons across all sections
func (c *Curriculum) LessonCount() int {
	n := 0
	for i := range c.Sections {
		n += len(c.Sections[i].Lessons)
	}
	return n
}

func (c *Curriculum) reindexSections() {
	for i := range c.Sections {
		c.Sections[i].OrderIndex = i
	}
}

// stampLessonChildren gives temp ids to sub-entities that arrived without one
func stampLessonChildren(lesson *Lesson) {
	for i := range lesson.Questions {
		if lesson.Questions[i].ID == "" {
			lesson.Questions[i].ID = NewTempID("qst")
		}
	}
	for i := range lesson.Attachments {
		if lesson.Attachments[i].ID == "" {
			lesson.Attachments[i].ID = NewTempID("att")
		}
	}
	for i := range lesson.Subtitles {
		if lesson.Subtitles[i].ID == "" {
			lesson.Subtitles[i].ID = NewTempID("sub")
		}
	}
}
