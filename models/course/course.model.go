package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lifecycle states of a course
const (
	StateDraft     = "draft"
	StatePublished = "published"
	StateArchived  = "archived"
)

// Course is the aggregate root: one row per course, with all nested content
// (sections -> lectures -> resources) stored on the row as JSONB so every
// lifecycle write is a single atomic document write.
type Course struct {
	gorm.Model
	OwnerID uint   `json:"owner_id" gorm:"index;not null"`
	Slug    string `json:"slug" gorm:"uniqueIndex"`

	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Description  string  `json:"description" gorm:"type:text"`
	Category     string  `json:"category" gorm:"index"`
	Level        string  `json:"level" gorm:"index"`
	Language     string  `json:"language" gorm:"index"`
	Visibility   string  `json:"visibility"`
	Price        float64 `json:"price" gorm:"default:0"`
	Currency     string  `json:"currency"`
	ThumbnailURL string  `json:"thumbnail_url"`

	Tags             datatypes.JSONSlice[string] `json:"tags"`
	LearningOutcomes datatypes.JSONSlice[string] `json:"learning_outcomes"`
	Prerequisites    datatypes.JSONSlice[string] `json:"prerequisites"`
	TargetAudience   datatypes.JSONSlice[string] `json:"target_audience"`
	Requirements     datatypes.JSONSlice[string] `json:"requirements"`

	Promo    Promo     `json:"promo" gorm:"serializer:json;type:jsonb"`
	Features Features  `json:"features" gorm:"serializer:json;type:jsonb"`
	Sections []Section `json:"sections" gorm:"serializer:json;type:jsonb"`

	// Derived from Sections on every write, never accepted from a caller.
	TotalSections        int   `json:"total_sections" gorm:"default:0"`
	TotalLectures        int   `json:"total_lectures" gorm:"default:0"`
	TotalDurationSeconds int64 `json:"total_duration_seconds" gorm:"default:0"`

	State       string     `json:"state" gorm:"default:'draft';index"`
	PublishedAt *time.Time `json:"published_at"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false"`
}

// Promo is an optional time-boxed discount on the course price.
type Promo struct {
	Enabled            bool       `json:"enabled"`
	DiscountPercentage float64    `json:"discount_percentage"` // 0-100
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
}

// Features are per-course toggles for platform functionality.
type Features struct {
	EnableCertificate bool `json:"enable_certificate"`
	EnableQA          bool `json:"enable_qa"`
	EnableReviews     bool `json:"enable_reviews"`
	EnableDownloads   bool `json:"enable_downloads"`
	EnableDiscussions bool `json:"enable_discussions"`
}

// RecomputeStats rederives the totals from the nested sections. Must be
// called after every structural mutation; the stored totals are never
// trusted from input.
func (c *Course) RecomputeStats() {
	c.TotalSections = len(c.Sections)
	c.TotalLectures = 0
	c.TotalDurationSeconds = 0
	for _, section := range c.Sections {
		c.TotalLectures += len(section.Lectures)
		for _, lecture := range section.Lectures {
			c.TotalDurationSeconds += lecture.DurationSeconds
		}
	}
}

// IsPublished reports whether the course is live in the public catalog.
func (c *Course) IsPublished() bool {
	return c.State == StatePublished && !c.IsDeleted
}
