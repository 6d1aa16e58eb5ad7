package courseService

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	courseModels "github.com/zalakuldip2011/edemy-sub001/models/course"
)

// LifecycleService owns every state-changing operation on a course. Content
// mutation (Create/Update) and lifecycle transitions (Publish/Unpublish/
// Delete) are separate operation families: the generic update path can never
// flip state, and the transition paths never touch content.
type LifecycleService struct {
	repo CourseRepository
}

func NewLifecycleService(repo CourseRepository) *LifecycleService {
	return &LifecycleService{repo: repo}
}

// Create normalizes the payload into a draft course owned by ownerID. No
// readiness check runs here: a course may be saved at any level of
// incompleteness.
func (s *LifecycleService) Create(ctx context.Context, ownerID uint, payload map[string]interface{}) (*courseModels.Course, error) {
	course := NewCourse(ownerID, payload)

	slug, err := s.slugFor(ctx, course.Title)
	if err != nil {
		return nil, err
	}
	course.Slug = slug

	if err := s.repo.Insert(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Update merges a normalized partial payload into the stored course. The
// slug is generated once at create time and never regenerated here, even
// when the title changes.
func (s *LifecycleService) Update(ctx context.Context, id, callerID uint, payload map[string]interface{}) (*courseModels.Course, error) {
	course, err := s.ownedCourse(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	ApplyUpdate(course, payload)

	if err := s.repo.Replace(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Publish runs the readiness checklist and, only if every check passes,
// flips the course live. A failed checklist comes back as *NotReadyError
// carrying the full deficiency list; nothing is persisted in that case.
func (s *LifecycleService) Publish(ctx context.Context, id, callerID uint) (*courseModels.Course, error) {
	course, err := s.ownedCourse(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	readiness := ValidateReadiness(course)
	if !readiness.IsValid {
		return nil, &NotReadyError{Errors: readiness.Errors}
	}

	now := time.Now()
	course.State = courseModels.StatePublished
	course.PublishedAt = &now

	if err := s.repo.Replace(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Unpublish returns the course to draft. Moving away from published is
// always permitted, whatever the content looks like.
func (s *LifecycleService) Unpublish(ctx context.Context, id, callerID uint) (*courseModels.Course, error) {
	course, err := s.ownedCourse(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	course.State = courseModels.StateDraft
	course.PublishedAt = nil

	if err := s.repo.Replace(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete soft-deletes the course: it is forced to archived and disappears
// from every listing, but the row stays for audit and for already-enrolled
// students.
func (s *LifecycleService) Delete(ctx context.Context, id, callerID uint) (*courseModels.Course, error) {
	course, err := s.ownedCourse(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	course.IsDeleted = true
	course.State = courseModels.StateArchived
	course.PublishedAt = nil

	if err := s.repo.Replace(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// ownedCourse loads a live course and enforces ownership. Soft-deleted
// courses are not found as far as mutation is concerned.
func (s *LifecycleService) ownedCourse(ctx context.Context, id, callerID uint) (*courseModels.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil || course.IsDeleted {
		return nil, ErrCourseNotFound
	}
	if course.OwnerID != callerID {
		return nil, ErrNotCourseOwner
	}
	return course, nil
}

// slugFor derives a slug from the title, appending an incrementing suffix
// until the candidate is actually free. A prefix count is not enough: an
// existing "go-2" from the title "Go 2" must not collide with the second
// course titled "Go".
func (s *LifecycleService) slugFor(ctx context.Context, title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "course"
	}

	candidate := base
	for n := 2; ; n++ {
		taken, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
