package courseService

import (
	"fmt"
	"unicode/utf8"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// FieldError tags one publish-blocking deficiency with the field it belongs
// to, so a client form can highlight every problem in one round trip.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Readiness is the verdict of the publish-eligibility check.
type Readiness struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

// ValidateReadiness decides whether a course may be published. Every check
// runs; the result carries the complete list of deficiencies rather than the
// first one found.
func ValidateReadiness(c *courseModels.Course) Readiness {
	var errs []FieldError

	// Length minimums count characters, not bytes, so multibyte titles are
	// measured the way a human would.
	if utf8.RuneCountInString(c.Title) < 3 {
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at least 3 characters long!"})
	}

	if utf8.RuneCountInString(c.Description) < 10 {
		errs = append(errs, FieldError{Field: "description", Message: "Description must be at least 10 characters long!"})
	}

	if c.Category == "" || c.Category == Defaults.Category {
		errs = append(errs, FieldError{Field: "category", Message: "Category must be set before publishing!"})
	}

	if len(c.LearningOutcomes) < 3 {
		errs = append(errs, FieldError{Field: "learning_outcomes", Message: "At least 3 learning outcomes are required!"})
	}

	if len(c.Sections) == 0 {
		errs = append(errs, FieldError{Field: "sections", Message: "At least one section is required!"})
	} else {
		emptySections := 0
		for _, section := range c.Sections {
			if len(section.Lectures) == 0 {
				emptySections++
			}
		}
		// One aggregate error for the whole course, however many sections are empty.
		if emptySections > 0 {
			errs = append(errs, FieldError{
				Field:   "sections",
				Message: fmt.Sprintf("Every section needs at least one lecture (%d empty)!", emptySections),
			})
		}
	}

	if c.ThumbnailURL == "" {
		errs = append(errs, FieldError{Field: "thumbnail_url", Message: "A course thumbnail is required!"})
	}

	return Readiness{IsValid: len(errs) == 0, Errors: errs}
}
