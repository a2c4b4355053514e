package chain

import (
	"github.com/ib-77/sum/pkg/sum"
)

// Chain wraps a sum.Result to enable fluent same-type composition.
type Chain[T, E any] struct {
	res sum.Result[T, E]
}

func Start[T, E any](r sum.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue starts a chain from a successful value: FromValue[string](42).
func FromValue[E, T any](v T) Chain[T, E] {
	return Start(sum.Success[E](v))
}

func (c Chain[T, E]) Result() sum.Result[T, E] {
	return c.res
}

// Then composes functions that already return sum.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) sum.Result[T, E]) Chain[T, E] {
	v, ok := c.res.Get()
	if !ok {
		return c
	}
	return Chain[T, E]{res: onSuccess(v)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	v, ok := c.res.Get()
	if !ok {
		return c
	}
	return Chain[T, E]{res: sum.Success[E](onSuccess(v))}
}

// While keeps applying onSuccess for as long as the chain succeeds and
// cond holds on the current value.
func (c Chain[T, E]) While(onSuccess func(t T) sum.Result[T, E],
	cond func(t T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Get()
		if !ok || !cond(v) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first succeeding chain of the receiver and alternative,
// preferring the receiver; when both fail the receiver is returned.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the receiver's failure if any, otherwise required.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.IntoErr())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.IntoOk())
	}
	return c
}

// Try composes a function following the (value, error) convention into a
// Chain over error failures.
func Try[T any](c Chain[T, error], try func(t T) (T, error)) Chain[T, error] {
	v, ok := c.Result().Get()
	if !ok {
		return c
	}

	u, err := try(v)
	if err != nil {
		return Start(sum.Failure[T](err))
	}
	return Start(sum.Success[error](u))
}

// Finally collapses the chain to a final value via the matching handler.
func Finally[T, E, U any](c Chain[T, E],
	onSuccess func(t T) U,
	onFailure func(e E) U) U {

	if v, ok := c.res.Get(); ok {
		return onSuccess(v)
	}
	return onFailure(c.res.IntoErr())
}
