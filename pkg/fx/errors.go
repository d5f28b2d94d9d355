package fx

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a required composition argument that was absent.
// Index is the offending slot when Param names a slice, and -1 otherwise.
type ValidationError struct {
	Param string
	Index int
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("fx: %s[%d] must not be nil", e.Param, e.Index)
	}
	return fmt.Sprintf("fx: %s must not be nil", e.Param)
}

// IsValidationError returns true if err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Failure is an execution failure carrying a caller-chosen cause of type E:
// an error code, a structured diagnostic, another error, and so on.
type Failure[E any] struct {
	Cause      E
	id         uuid.UUID
	occurredAt time.Time
}

// Fail wraps cause into an error suitable for returning from a fallible effect.
func Fail[E any](cause E) error {
	return &Failure[E]{
		Cause:      cause,
		id:         uuid.New(),
		occurredAt: time.Now().UTC(),
	}
}

func (f *Failure[E]) Error() string {
	return fmt.Sprintf("execution failure: %v", f.Cause)
}

// Unwrap exposes the cause when it is itself an error.
func (f *Failure[E]) Unwrap() error {
	if err, ok := any(f.Cause).(error); ok {
		return err
	}
	return nil
}

func (f *Failure[E]) Id() uuid.UUID {
	return f.id
}

func (f *Failure[E]) OccurredAt() time.Time {
	return f.occurredAt
}

// CauseOf extracts the typed cause from err, looking through wrapping.
func CauseOf[E any](err error) (E, bool) {
	var f *Failure[E]
	if errors.As(err, &f) {
		return f.Cause, true
	}
	var zero E
	return zero, false
}

// FailureId returns the id of the first Failure found in err's chain. Only the
// concrete cause types are unknown here, so the lookup goes through an interface.
func FailureId(err error) (uuid.UUID, bool) {
	var identified interface {
		error
		Id() uuid.UUID
	}
	if errors.As(err, &identified) {
		return identified.Id(), true
	}
	return uuid.Nil, false
}

// Catch runs compose and returns the ValidationError it panicked with, if any.
// Other panics are re-raised.
func Catch(compose func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ve, ok := r.(*ValidationError)
			if !ok {
				panic(r)
			}
			err = ve
		}
	}()
	compose()
	return nil
}
