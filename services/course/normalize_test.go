package courseService

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

func TestNewCourseMinimalPayload(t *testing.T) {
	course := NewCourse(7, map[string]interface{}{
		"title":       "DSA in Java",
		"description": "Master data structures.",
	})

	assert.Equal(t, uint(7), course.OwnerID)
	assert.Equal(t, "DSA in Java", course.Title)
	assert.Equal(t, "Master data structures.", course.Description)
	assert.Equal(t, courseModels.StateDraft, course.State)
	assert.Nil(t, course.PublishedAt)
	assert.False(t, course.IsDeleted)
	assert.Empty(t, course.Sections)
	assert.True(t, course.Features.EnableCertificate)
	assert.Equal(t, "Uncategorized", course.Category)
	assert.Equal(t, "Beginner", course.Level)
	assert.Equal(t, "English", course.Language)
	assert.Equal(t, "USD", course.Currency)
	assert.Zero(t, course.TotalSections)
	assert.Zero(t, course.TotalLectures)
	assert.Zero(t, course.TotalDurationSeconds)
}

func TestNewCourseNeverPanicsOnGarbage(t *testing.T) {
	payloads := []map[string]interface{}{
		nil,
		{},
		{"title": nil, "sections": nil, "promo": nil, "features": nil},
		{"title": 12, "description": true, "price": "free", "tags": "go"},
		{"sections": "not an array", "promo": []interface{}{"not an object"}},
		{"sections": []interface{}{nil, "junk", 42, map[string]interface{}{"lectures": "nope"}}},
		{"sections": []interface{}{map[string]interface{}{
			"lectures": []interface{}{map[string]interface{}{"resources": map[string]interface{}{"kind": "pdf"}}},
		}}},
		{"unknown_key": map[string]interface{}{"deep": []interface{}{nil}}},
	}

	for _, payload := range payloads {
		course := NewCourse(1, payload)
		require.NotNil(t, course)
		assert.Equal(t, courseModels.StateDraft, course.State)
		// A malformed resources object must not survive as a one-element list
		for _, section := range course.Sections {
			for _, lecture := range section.Lectures {
				assert.NotNil(t, lecture.Resources)
			}
		}
	}
}

func TestNewCourseCannotSmuggleLifecycleFields(t *testing.T) {
	course := NewCourse(3, map[string]interface{}{
		"title":        "Sneaky",
		"state":        "published",
		"published_at": "2026-01-01T00:00:00Z",
		"is_deleted":   true,
		"owner_id":     99,
		"total_lectures": 1000,
	})

	assert.Equal(t, courseModels.StateDraft, course.State)
	assert.Nil(t, course.PublishedAt)
	assert.False(t, course.IsDeleted)
	assert.Equal(t, uint(3), course.OwnerID)
	assert.Zero(t, course.TotalLectures)
}

func TestNormalizeLecture(t *testing.T) {
	lecture := NormalizeLecture(map[string]interface{}{
		"title":            "  Welcome  ",
		"content_type":     "hologram",
		"duration_seconds": float64(-10),
		"order":            float64(42), // ignored, position wins
		"resources": []interface{}{
			map[string]interface{}{"kind": "pdf", "locator": "cdn://abc", "display_name": "Slides"},
			"junk",
		},
	}, 3)

	assert.Equal(t, "Welcome", lecture.Title)
	assert.Equal(t, courseModels.ContentTypeVideo, lecture.ContentType) // unknown type falls back
	assert.Zero(t, lecture.DurationSeconds)                            // negatives clamp to zero
	assert.Equal(t, 3, lecture.Order)
	require.Len(t, lecture.Resources, 2)
	assert.Equal(t, "pdf", lecture.Resources[0].Kind)
	assert.Equal(t, courseModels.Resource{}, lecture.Resources[1])
}

func TestNormalizeLectureDurationAlias(t *testing.T) {
	lecture := NormalizeLecture(map[string]interface{}{"duration": float64(300)}, 0)
	assert.Equal(t, int64(300), lecture.DurationSeconds)

	// the canonical key wins over the alias
	lecture = NormalizeLecture(map[string]interface{}{
		"duration_seconds": float64(120),
		"duration":         float64(300),
	}, 0)
	assert.Equal(t, int64(120), lecture.DurationSeconds)
}

// An absurdly large duration must clamp, not overflow into a negative
// int64 on conversion.
func TestNormalizeLectureCapsHugeDurations(t *testing.T) {
	lecture := NormalizeLecture(map[string]interface{}{"duration_seconds": 1e30}, 0)
	assert.Equal(t, int64(24*60*60), lecture.DurationSeconds)
	assert.GreaterOrEqual(t, lecture.DurationSeconds, int64(0))

	lecture = NormalizeLecture(map[string]interface{}{"duration_seconds": "9e99"}, 0)
	assert.Equal(t, int64(24*60*60), lecture.DurationSeconds)
}

func TestNormalizeSectionsAssignsOrderByPosition(t *testing.T) {
	sections := NormalizeSections([]interface{}{
		map[string]interface{}{"title": "B", "order": float64(9)},
		map[string]interface{}{"title": "A", "order": float64(0)},
	})

	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].Order)
	assert.Equal(t, 1, sections[1].Order)
	assert.Equal(t, "B", sections[0].Title)
}

func TestStringArrayFieldsDropEmptyEntries(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{
		"title":             "T",
		"tags":              []interface{}{"go", "", "  ", nil, "backend"},
		"learning_outcomes": []interface{}{" build APIs ", ""},
	})

	assert.Equal(t, []string{"go", "backend"}, []string(course.Tags))
	assert.Equal(t, []string{"build APIs"}, []string(course.LearningOutcomes))
}

func TestNormalizePromoClampsDiscount(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{
		"title": "T",
		"promo": map[string]interface{}{
			"enabled":             "TRUE",
			"discount_percentage": float64(250),
			"start_date":          "2026-06-01T00:00:00Z",
			"end_date":            "not a date",
		},
	})

	assert.True(t, course.Promo.Enabled)
	assert.Equal(t, float64(100), course.Promo.DiscountPercentage)
	assert.NotNil(t, course.Promo.StartDate)
	assert.Nil(t, course.Promo.EndDate)
}

func TestApplyUpdateOnlyTouchesPresentFields(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{
		"title":       "Original",
		"description": "Original description here.",
		"category":    "Programming",
	})

	ApplyUpdate(course, map[string]interface{}{
		"subtitle": "New subtitle",
	})

	assert.Equal(t, "Original", course.Title)
	assert.Equal(t, "Original description here.", course.Description)
	assert.Equal(t, "Programming", course.Category)
	assert.Equal(t, "New subtitle", course.Subtitle)
}

func TestApplyUpdatePresentNullResetsToDefault(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{
		"title":    "Original",
		"category": "Programming",
	})

	ApplyUpdate(course, map[string]interface{}{"category": nil})

	assert.Equal(t, Defaults.Category, course.Category)
}

func TestApplyUpdateIgnoresLifecycleFields(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{"title": "T"})

	ApplyUpdate(course, map[string]interface{}{
		"state":          "published",
		"published_at":   "2026-01-01T00:00:00Z",
		"is_deleted":     true,
		"owner_id":       42,
		"total_lectures": 50,
	})

	assert.Equal(t, courseModels.StateDraft, course.State)
	assert.Nil(t, course.PublishedAt)
	assert.False(t, course.IsDeleted)
	assert.Equal(t, uint(1), course.OwnerID)
	assert.Zero(t, course.TotalLectures)
}

func TestApplyUpdateRecomputesStats(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{"title": "T"})

	ApplyUpdate(course, map[string]interface{}{
		"sections": []interface{}{
			map[string]interface{}{
				"title": "Intro",
				"lectures": []interface{}{
					map[string]interface{}{"title": "Welcome", "duration_seconds": float64(300)},
					map[string]interface{}{"title": "Setup", "duration_seconds": float64(200)},
				},
			},
			map[string]interface{}{
				"title": "Basics",
				"lectures": []interface{}{
					map[string]interface{}{"title": "Variables", "duration_seconds": float64(500)},
				},
			},
		},
	})

	assert.Equal(t, 2, course.TotalSections)
	assert.Equal(t, 3, course.TotalLectures)
	assert.Equal(t, int64(1000), course.TotalDurationSeconds)
}

/// Normalization is idempotent: feeding a normalized course back through the
// normalizer changes nothing.
func TestNormalizationIdempotent(t *testing.T) {
	first := NewCourse(5, map[string]interface{}{
		"title":             "  Go Backend Engineering ",
		"description":       "From zero to production.",
		"category":          "Programming",
		"price":             float64(49.99),
		"tags":              []interface{}{"go", " backend "},
		"learning_outcomes": []interface{}{"a", "b", "c"},
		"promo":             map[string]interface{}{"enabled": true, "discount_percentage": float64(30)},
		"sections": []interface{}{
			map[string]interface{}{
				"title": "Intro",
				"lectures": []interface{}{
					map[string]interface{}{
						"title":            "Welcome",
						"content_type":     "video",
						"duration_seconds": float64(300),
						"video_reference":  "vid-123",
						"is_free_preview":  true,
						"resources": []interface{}{
							map[string]interface{}{"kind": "pdf", "locator": "cdn://x", "display_name": "Notes"},
						},
					},
				},
			},
		},
	})

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &roundTripped))

	second := NewCourse(5, roundTripped)

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Description, second.Description)
	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, first.Price, second.Price)
	assert.Equal(t, first.Tags, second.Tags)
	assert.Equal(t, first.LearningOutcomes, second.LearningOutcomes)
	assert.Equal(t, first.Promo, second.Promo)
	assert.Equal(t, first.Features, second.Features)
	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.TotalSections, second.TotalSections)
	assert.Equal(t, first.TotalLectures, second.TotalLectures)
	assert.Equal(t, first.TotalDurationSeconds, second.TotalDurationSeconds)
}
