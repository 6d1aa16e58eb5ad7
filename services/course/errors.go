package courseService

import "errors"

// Terminal client errors. Neither is ever retried: the caller either has the
// wrong id or is not the owner.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotCourseOwner = errors.New("caller does not own this course")
)

// NotReadyError is returned by Publish when the readiness checklist failed.
// It is expected and recoverable: the caller fixes the listed fields and
// retries the same operation.
type NotReadyError struct {
	Errors []FieldError
}

func (e *NotReadyError) Error() string {
	return "course is not ready to publish"
}

// AsNotReady unwraps err into a *NotReadyError if that is what it is.
func AsNotReady(err error) (*NotReadyError, bool) {
	var nre *NotReadyError
	if errors.As(err, &nre) {
		return nre, true
	}
	return nil, false
}
