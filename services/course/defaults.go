package courseService

import (
	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// Defaults is the single table of field fallbacks used by every normalizer.
// Create and update paths both read from here, so a field can never default
// differently depending on which path touched it.
var Defaults = struct {
	Title        string
	Subtitle     string
	Description  string
	Category     string
	Level        string
	Language     string
	Visibility   string
	Price        float64
	Currency     string
	ThumbnailURL string
	ContentType  string
	Features     courseModels.Features
}{
	Title:        "",
	Subtitle:     "",
	Description:  "",
	Category:     "Uncategorized",
	Level:        "Beginner",
	Language:     "English",
	Visibility:   "public",
	Price:        0,
	Currency:     "USD",
	ThumbnailURL: "",
	ContentType:  courseModels.ContentTypeVideo,
	Features: courseModels.Features{
		EnableCertificate: true,
		EnableQA:          true,
		EnableReviews:     true,
		EnableDownloads:   false,
		EnableDiscussions: true,
	},
}

// maxLectureDurationSeconds caps a single lecture at 24 hours. Anything
// larger is malformed input, not a real lecture.
const maxLectureDurationSeconds = 24 * 60 * 60

// validContentTypes guards the lecture content type; unknown values fall
// back to video.
var validContentTypes = map[string]bool{
	courseModels.ContentTypeVideo:    true,
	courseModels.ContentTypeArticle:  true,
	courseModels.ContentTypeQuiz:     true,
	courseModels.ContentTypeResource: true,
}

// validLevels and validVisibilities whitelist the scalar enums; anything
// else falls back to the default.
var validLevels = map[string]bool{
	"Beginner":     true,
	"Intermediate": true,
	"Advanced":     true,
	"All Levels":   true,
}

var validVisibilities = map[string]bool{
	"public":   true,
	"unlisted": true,
	"private":  true,
}
