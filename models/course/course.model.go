package course

import "gorm.io/gorm"

const (
	StatusDraft     = "DRAFT"
	StatusPending   = "PENDING" // submitted, waiting for admin review
	StatusPublished = "PUBLISHED"
	StatusRejected  = "REJECTED"
	StatusArchived  = "ARCHIVED"
)

// Course represents a marketplace course
type Course struct {
	gorm.Model
	InstructorID     uint    `json:"instructor_id" gorm:"index;not null"`
	Title            string  `json:"title" gorm:"not null"`
	Slug             string  `json:"slug" gorm:"uniqueIndex;not null"` // derived from title
	ShortDescription string  `json:"short_description"`
	Description      string  `json:"description" gorm:"type:text"`
	CategoryID       uint    `json:"category_id" gorm:"index"`
	LevelID          uint    `json:"level_id" gorm:"index"`
	Language         string  `json:"language" gorm:"default:'en'"`
	OriginalPrice    float64 `json:"original_price" gorm:"default:0"`
	DiscountedPrice  float64 `json:"discounted_price" gorm:"default:0"` // 0 means no discount
	Requirements     string  `json:"requirements" gorm:"type:text"`
	Outcomes         string  `json:"outcomes" gorm:"type:text"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	IntroVideoURL    string  `json:"intro_video_url"`
	Status           string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PENDING, PUBLISHED, REJECTED, ARCHIVED
	RejectionReason  string  `json:"rejection_reason"`
	Rating           float64 `json:"rating" gorm:"default:0"`
	RatingCount      int     `json:"rating_count" gorm:"default:0"`
	EnrollmentCount  int     `json:"enrollment_count" gorm:"default:0"`
	IsDeleted        bool    `gorm:"default:false"`
}

// EffectivePrice is what the student actually pays
func (c *Course) EffectivePrice() float64 {
	if c.DiscountedPrice > 0 && c.DiscountedPrice < c.OriginalPrice {
		return c.DiscountedPrice
	}
	return c.OriginalPrice
}

// Category is a catalog facet (e.g. "Programming", "Design")
type Category struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique;not null"`
	Slug      string `json:"slug" gorm:"uniqueIndex;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

// Level is a catalog facet (e.g. "Beginner", "Advanced")
type Level struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
