package course

// Content types a lecture can hold
const (
	ContentTypeVideo    = "video"
	ContentTypeArticle  = "article"
	ContentTypeQuiz     = "quiz"
	ContentTypeResource = "resource"
)

// Resource is a single piece of downloadable/linkable material inside a lecture.
type Resource struct {
	Kind        string `json:"kind"`
	Locator     string `json:"locator"`
	DisplayName string `json:"display_name"`
}

// Lecture is one unit of consumable content inside a section.
// VideoReference is an opaque handle issued by the media service; this
// backend stores and forwards it without interpreting its shape.
type Lecture struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ContentType     string     `json:"content_type"`
	DurationSeconds int64      `json:"duration_seconds"`
	VideoReference  string     `json:"video_reference"`
	ArticleBody     string     `json:"article_body"`
	Resources       []Resource `json:"resources"`
	Order           int        `json:"order"`
	IsFreePreview   bool       `json:"is_free_preview"`
}

// Section is an ordered group of lectures. Order is assigned by position
// when the payload is normalized, never trusted from input.
type Section struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lectures    []Lecture `json:"lectures"`
	Order       int       `json:"order"`
}
