package sum

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of
// type E. E is an ordinary value, not necessarily an error.
// Like Option, it is immutable: combinators construct a new Result or
// return the untouched input.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	success   bool
}

// Success constructs a successful Result. E comes first so the failure
// type can be named while T is inferred: Success[string](42).
func Success[E, T any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure constructs a failed Result: Failure[int]("parse error").
func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		success:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) IsSuccess() bool {
	return r.success
}

func (r Result[T, E]) IsFailure() bool {
	return !r.success
}

// IsSuccessAnd reports success with the value satisfying pred.
func (r Result[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return r.success && pred(r.value)
}

// IsFailureAnd reports failure with the error satisfying pred.
func (r Result[T, E]) IsFailureAnd(pred func(E) bool) bool {
	return !r.success && pred(r.failure)
}

// Get returns the success value and whether the result succeeded.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.success
}

// Ok converts to an Option of the success value, discarding the failure.
func (r Result[T, E]) Ok() Option[T] {
	if r.success {
		return Present(r.value)
	}
	return Absent[T]()
}

// Err converts to an Option of the failure value, discarding the success.
func (r Result[T, E]) Err() Option[E] {
	if r.success {
		return Absent[E]()
	}
	return Present(r.failure)
}

// Unwrap returns the success value, panicking with a rendering of the
// failure payload otherwise.
func (r Result[T, E]) Unwrap() T {
	if !r.success {
		panic("called Unwrap on a failure Result: " + Render(r.failure))
	}
	return r.value
}

// UnwrapErr returns the failure value, panicking with a rendering of the
// success payload otherwise.
func (r Result[T, E]) UnwrapErr() E {
	if r.success {
		panic("called UnwrapErr on a success Result: " + Render(r.value))
	}
	return r.failure
}

// Expect returns the success value, panicking with msg plus the rendered
// failure payload otherwise.
func (r Result[T, E]) Expect(msg string) T {
	if !r.success {
		panic(msg + ": " + Render(r.failure))
	}
	return r.value
}

// ExpectErr returns the failure value, panicking with msg plus the
// rendered success payload otherwise.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.success {
		panic(msg + ": " + Render(r.value))
	}
	return r.failure
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.success {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or f applied to the failure.
// f is invoked only on failure.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.success {
		return r.value
	}
	return f(r.failure)
}

// IntoOk extracts the success value from a Result whose failure variant is
// statically unreachable. It does not validate: on a failure it returns
// the zero value of T.
func (r Result[T, E]) IntoOk() T {
	return r.value
}

// IntoErr is the dual of IntoOk for the failure value.
func (r Result[T, E]) IntoErr() E {
	return r.failure
}

// And returns other if the result is a success, otherwise the result
// itself.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.success {
		return other
	}
	return r
}

// Or returns the result itself if it is a success, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.success {
		return r
	}
	return other
}

// Inspect invokes f on the success value and returns the result
// unchanged. The callback runs synchronously, exactly once, before
// return, and only on a success.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.success {
		f(r.value)
	}
	return r
}

// InspectErr is the failure-side dual of Inspect.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.success {
		f(r.failure)
	}
	return r
}
