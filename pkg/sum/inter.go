package sum

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the surface collaborators consume when they only need the
// contained value plus a presence flag. Both Option[T] and Result[T, E]
// satisfy it.
type Provider[T any] interface {
	// Get returns the contained value and whether it is populated
	Get() (T, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Identified exposes the per-container identity metadata. Two containers
// with equal Id are the same container value passed through no-op
// combinators.
type Identified interface {
	Id() uuid.UUID
	CreatedAt() time.Time
}

var (
	_ Provider[int] = Option[int]{}
	_ Provider[int] = Result[int, string]{}
	_ Identified    = Option[int]{}
	_ Identified    = Result[int, string]{}
)
