package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

func readyCourse() *courseModels.Course {
	course := NewCourse(1, map[string]interface{}{
		"title":             "Go Backend Engineering",
		"description":       "A complete course on building backends in Go.",
		"category":          "Programming",
		"thumbnail_url":     "https://cdn.edemy.io/thumbs/go.png",
		"learning_outcomes": []interface{}{"build APIs", "ship services", "test everything"},
		"sections": []interface{}{
			map[string]interface{}{
				"title": "Intro",
				"lectures": []interface{}{
					map[string]interface{}{"title": "Welcome", "duration_seconds": float64(300)},
				},
			},
		},
	})
	return course
}

func errorFields(r Readiness) []string {
	fields := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestValidateReadinessPasses(t *testing.T) {
	result := ValidateReadiness(readyCourse())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateReadinessReportsEveryDeficiencyAtOnce(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{"title": "x"})

	result := ValidateReadiness(course)

	assert.False(t, result.IsValid)
	assert.ElementsMatch(t,
		[]string{"title", "description", "category", "learning_outcomes", "sections", "thumbnail_url"},
		errorFields(result),
	)
}

// A course with a valid category and thumbnail but a 2-char title, short
// description, too few outcomes and no sections fails with exactly those
// four field errors.
func TestValidateReadinessShortContent(t *testing.T) {
	course := NewCourse(1, map[string]interface{}{
		"title":         "ab",
		"description":   "too short",
		"category":      "Programming",
		"thumbnail_url": "https://cdn.edemy.io/thumbs/x.png",
	})

	result := ValidateReadiness(course)

	require.False(t, result.IsValid)
	assert.ElementsMatch(t,
		[]string{"title", "description", "learning_outcomes", "sections"},
		errorFields(result),
	)
	assert.Len(t, result.Errors, 4)
}

func TestValidateReadinessDefaultCategoryRejected(t *testing.T) {
	course := readyCourse()
	course.Category = Defaults.Category

	result := ValidateReadiness(course)

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"category"}, errorFields(result))
}

// One empty section disqualifies the whole course with a single aggregate
// error on the sections field, however many sections are empty.
func TestValidateReadinessEmptySectionFailsWholeCourse(t *testing.T) {
	course := readyCourse()
	course.Sections = append(course.Sections,
		courseModels.Section{Title: "Empty A", Order: 1},
		courseModels.Section{Title: "Empty B", Order: 2},
	)

	result := ValidateReadiness(course)

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"sections"}, errorFields(result))
	assert.Len(t, result.Errors, 1)
}

// Minimum lengths count characters, not bytes: a 2-character multibyte
// title is still too short even though it is 6 bytes long.
func TestValidateReadinessCountsRunesNotBytes(t *testing.T) {
	course := readyCourse()
	course.Title = "日本"

	result := ValidateReadiness(course)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"title"}, errorFields(result))

	course.Title = "日本語"
	result = ValidateReadiness(course)
	assert.True(t, result.IsValid)
}

func TestValidateReadinessBoundaryLengths(t *testing.T) {
	course := readyCourse()
	course.Title = "abc" // exactly 3
	course.Description = "1234567890" // exactly 10

	result := ValidateReadiness(course)
	assert.True(t, result.IsValid)
}
