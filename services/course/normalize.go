package courseService

import (
	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// Content normalizers. These compose the primitive sanitizers into structural
// ones: whatever shape the wire payload had, the output is a canonical,
// fully-typed document. Nothing downstream of this file ever sees a nil or a
// wrongly-typed field.

// NormalizeResource coerces one resource entry.
func NormalizeResource(v interface{}) courseModels.Resource {
	obj := SafeObject(v)
	return courseModels.Resource{
		Kind:        SafeString(obj["kind"], ""),
		Locator:     SafeString(obj["locator"], ""),
		DisplayName: SafeString(obj["display_name"], ""),
	}
}

// NormalizeLecture coerces one lecture entry. Order is assigned from the
// lecture's position in its section, never read from the payload. Unknown
// content types fall back to video.
func NormalizeLecture(v interface{}, position int) courseModels.Lecture {
	obj := SafeObject(v)

	contentType := SafeString(obj["content_type"], Defaults.ContentType)
	if !validContentTypes[contentType] {
		contentType = Defaults.ContentType
	}

	// Clamp on the float: a huge value would overflow the int64 conversion
	// and come out negative.
	duration := SafeNumber(obj["duration_seconds"], SafeNumber(obj["duration"], 0))
	if duration < 0 {
		duration = 0
	}
	if duration > maxLectureDurationSeconds {
		duration = maxLectureDurationSeconds
	}

	rawResources := SafeArray(obj["resources"])
	resources := make([]courseModels.Resource, 0, len(rawResources))
	for _, raw := range rawResources {
		resources = append(resources, NormalizeResource(raw))
	}

	return courseModels.Lecture{
		Title:           SafeString(obj["title"], ""),
		Description:     SafeString(obj["description"], ""),
		ContentType:     contentType,
		DurationSeconds: int64(duration),
		VideoReference:  SafeString(obj["video_reference"], ""),
		ArticleBody:     SafeString(obj["article_body"], ""),
		Resources:       resources,
		Order:           position,
		IsFreePreview:   SafeBool(obj["is_free_preview"], false),
	}
}

// NormalizeSection coerces one section entry and its lectures.
func NormalizeSection(v interface{}, position int) courseModels.Section {
	obj := SafeObject(v)

	rawLectures := SafeArray(obj["lectures"])
	lectures := make([]courseModels.Lecture, 0, len(rawLectures))
	for i, raw := range rawLectures {
		lectures = append(lectures, NormalizeLecture(raw, i))
	}

	return courseModels.Section{
		Title:       SafeString(obj["title"], ""),
		Description: SafeString(obj["description"], ""),
		Lectures:    lectures,
		Order:       position,
	}
}

// NormalizeSections coerces the whole sections array.
func NormalizeSections(v interface{}) []courseModels.Section {
	rawSections := SafeArray(v)
	sections := make([]courseModels.Section, 0, len(rawSections))
	for i, raw := range rawSections {
		sections = append(sections, NormalizeSection(raw, i))
	}
	return sections
}

func normalizePromo(v interface{}) courseModels.Promo {
	obj := SafeObject(v)

	pct := SafeNumber(obj["discount_percentage"], 0)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return courseModels.Promo{
		Enabled:            SafeBool(obj["enabled"], false),
		DiscountPercentage: pct,
		StartDate:          SafeTime(obj["start_date"]),
		EndDate:            SafeTime(obj["end_date"]),
	}
}

func normalizeFeatures(v interface{}) courseModels.Features {
	obj := SafeObject(v)
	return courseModels.Features{
		EnableCertificate: SafeBool(obj["enable_certificate"], Defaults.Features.EnableCertificate),
		EnableQA:          SafeBool(obj["enable_qa"], Defaults.Features.EnableQA),
		EnableReviews:     SafeBool(obj["enable_reviews"], Defaults.Features.EnableReviews),
		EnableDownloads:   SafeBool(obj["enable_downloads"], Defaults.Features.EnableDownloads),
		EnableDiscussions: SafeBool(obj["enable_discussions"], Defaults.Features.EnableDiscussions),
	}
}

func normalizeLevel(v interface{}) string {
	level := SafeString(v, Defaults.Level)
	if !validLevels[level] {
		return Defaults.Level
	}
	return level
}

func normalizeVisibility(v interface{}) string {
	visibility := SafeString(v, Defaults.Visibility)
	if !validVisibilities[visibility] {
		return Defaults.Visibility
	}
	return visibility
}

func normalizePrice(v interface{}) float64 {
	price := SafeNumber(v, Defaults.Price)
	if price < 0 {
		price = Defaults.Price
	}
	return price
}

// NewCourse builds a canonical draft course from an untrusted payload. Every
// field is normalized, the owner is stamped from the authenticated caller,
// and the lifecycle fields are forced regardless of what the payload said.
func NewCourse(ownerID uint, payload map[string]interface{}) *courseModels.Course {
	payload = SafeObject(payload)

	c := &courseModels.Course{
		OwnerID:      ownerID,
		Title:        SafeString(payload["title"], Defaults.Title),
		Subtitle:     SafeString(payload["subtitle"], Defaults.Subtitle),
		Description:  SafeString(payload["description"], Defaults.Description),
		Category:     SafeString(payload["category"], Defaults.Category),
		Level:        normalizeLevel(payload["level"]),
		Language:     SafeString(payload["language"], Defaults.Language),
		Visibility:   normalizeVisibility(payload["visibility"]),
		Price:        normalizePrice(payload["price"]),
		Currency:     SafeString(payload["currency"], Defaults.Currency),
		ThumbnailURL: SafeString(payload["thumbnail_url"], Defaults.ThumbnailURL),

		Tags:             SafeStringSlice(payload["tags"]),
		LearningOutcomes: SafeStringSlice(payload["learning_outcomes"]),
		Prerequisites:    SafeStringSlice(payload["prerequisites"]),
		TargetAudience:   SafeStringSlice(payload["target_audience"]),
		Requirements:     SafeStringSlice(payload["requirements"]),

		Promo:    normalizePromo(payload["promo"]),
		Features: normalizeFeatures(payload["features"]),
		Sections: NormalizeSections(payload["sections"]),

		State:       courseModels.StateDraft,
		PublishedAt: nil,
		IsDeleted:   false,
	}

	c.RecomputeStats()
	return c
}

// ApplyUpdate merges a partial payload into an existing course. Only keys
// present in the payload are touched; lifecycle, ownership and derived-stat
// fields are never read from it, so the generic update path cannot flip
// state or reassign an owner. Derived stats are recomputed unconditionally.
func ApplyUpdate(c *courseModels.Course, payload map[string]interface{}) {
	payload = SafeObject(payload)

	if v, ok := payload["title"]; ok {
		c.Title = SafeString(v, Defaults.Title)
	}
	if v, ok := payload["subtitle"]; ok {
		c.Subtitle = SafeString(v, Defaults.Subtitle)
	}
	if v, ok := payload["description"]; ok {
		c.Description = SafeString(v, Defaults.Description)
	}
	if v, ok := payload["category"]; ok {
		c.Category = SafeString(v, Defaults.Category)
	}
	if v, ok := payload["level"]; ok {
		c.Level = normalizeLevel(v)
	}
	if v, ok := payload["language"]; ok {
		c.Language = SafeString(v, Defaults.Language)
	}
	if v, ok := payload["visibility"]; ok {
		c.Visibility = normalizeVisibility(v)
	}
	if v, ok := payload["price"]; ok {
		c.Price = normalizePrice(v)
	}
	if v, ok := payload["currency"]; ok {
		c.Currency = SafeString(v, Defaults.Currency)
	}
	if v, ok := payload["thumbnail_url"]; ok {
		c.ThumbnailURL = SafeString(v, Defaults.ThumbnailURL)
	}
	if v, ok := payload["tags"]; ok {
		c.Tags = SafeStringSlice(v)
	}
	if v, ok := payload["learning_outcomes"]; ok {
		c.LearningOutcomes = SafeStringSlice(v)
	}
	if v, ok := payload["prerequisites"]; ok {
		c.Prerequisites = SafeStringSlice(v)
	}
	if v, ok := payload["target_audience"]; ok {
		c.TargetAudience = SafeStringSlice(v)
	}
	if v, ok := payload["requirements"]; ok {
		c.Requirements = SafeStringSlice(v)
	}
	if v, ok := payload["promo"]; ok {
		c.Promo = normalizePromo(v)
	}
	if v, ok := payload["features"]; ok {
		c.Features = normalizeFeatures(v)
	}
	if v, ok := payload["sections"]; ok {
		c.Sections = NormalizeSections(v)
	}

	c.RecomputeStats()
}
