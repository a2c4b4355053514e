package sum

import (
	"time"

	"github.com/google/uuid"
)

// Option holds either a present value of type T or nothing.
// It is a value type: combinators return a new Option (or the untouched
// input when nothing changed), never mutate the receiver.
type Option[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Present[T any](v T) Option[T] {
	return Option[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Absent[T any]() Option[T] {
	return Option[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Option[T]) Id() uuid.UUID {
	return o.id
}

func (o Option[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value, panicking if the option is absent.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on an absent Option")
	}
	return o.value
}

// Expect returns the value, panicking with exactly msg if absent.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value if present; f is invoked only when absent.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

// And returns second if the option is present, otherwise the option itself.
func (o Option[T]) And(second Option[T]) Option[T] {
	if o.present {
		return second
	}
	return o
}

// Or returns the option itself if present, otherwise def.
func (o Option[T]) Or(def Option[T]) Option[T] {
	if o.present {
		return o
	}
	return def
}

// OrElse returns the option itself if present; f is invoked only when absent.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return f()
}

// Filter keeps the option only when present and pred holds.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	if !o.present {
		return o
	}
	return Absent[T]()
}

// Inspect invokes f on the value when present and returns the option
// unchanged. The callback runs synchronously, exactly once, before return.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.present {
		f(o.value)
	}
	return o
}
