package res

import (
	"github.com/ib-77/sum/pkg/sum"
)

// Of bridges from Go's (value, error) convention: a nil error yields a
// success, anything else a failure carrying the error.
func Of[T any](v T, err error) sum.Result[T, error] {
	if sum.IsNil(err) {
		return sum.Success[error](v)
	}
	return sum.Failure[T](err)
}

// Tuple is the inverse of Of, collapsing back to (value, error).
func Tuple[T any](r sum.Result[T, error]) (T, error) {
	if v, ok := r.Get(); ok {
		return v, nil
	}
	return r.IntoOk(), r.IntoErr()
}

// Map transforms the success value; a failure passes through and f is
// never invoked.
func Map[T, U, E any](r sum.Result[T, E], f func(T) U) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return sum.Success[E](f(v))
	}
	return sum.Failure[U](r.IntoErr())
}

// MapErr transforms the failure value; a success passes through and f is
// never invoked.
func MapErr[T, E, F any](r sum.Result[T, E], f func(E) F) sum.Result[T, F] {
	if v, ok := r.Get(); ok {
		return sum.Success[F](v)
	}
	return sum.Failure[T](f(r.IntoErr()))
}

// MapOr transforms the success value, substituting def on failure. The
// outcome is always a success: defaulting wraps, it does not unwrap.
func MapOr[T, U, E any](r sum.Result[T, E], def U, f func(T) U) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return sum.Success[E](f(v))
	}
	return sum.Success[E](def)
}

// MapOrElse is MapOr with the default computed from the failure value;
// exactly one of onErr and onOk is invoked, and the outcome is always a
// success.
func MapOrElse[T, U, E any](r sum.Result[T, E], onErr func(E) U, onOk func(T) U) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return sum.Success[E](onOk(v))
	}
	return sum.Success[E](onErr(r.IntoErr()))
}

// AndThen sequences a dependent fallible computation, short-circuiting on
// failure without invoking f.
func AndThen[T, U, E any](r sum.Result[T, E], f func(T) sum.Result[U, E]) sum.Result[U, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	return sum.Failure[U](r.IntoErr())
}

// OrElse recovers from a failure via f, which may change the failure
// type; a success passes through unchanged in value.
func OrElse[T, E, F any](r sum.Result[T, E], f func(E) sum.Result[T, F]) sum.Result[T, F] {
	if v, ok := r.Get(); ok {
		return sum.Success[F](v)
	}
	return f(r.IntoErr())
}

// Flatten collapses a nested result by one level; a failure in either
// layer yields a single failure.
func Flatten[T, E any](r sum.Result[sum.Result[T, E], E]) sum.Result[T, E] {
	if inner, ok := r.Get(); ok {
		return inner
	}
	return sum.Failure[T](r.IntoErr())
}

// Transpose distributes a result of an option into an option of a
// result: Success(absent) becomes absent, Success(present) becomes a
// present success, a failure becomes a present failure. Exact dual of
// opt.Transpose.
func Transpose[T, E any](r sum.Result[sum.Option[T], E]) sum.Option[sum.Result[T, E]] {
	inner, ok := r.Get()
	if !ok {
		return sum.Present(sum.Failure[T](r.IntoErr()))
	}
	if v, present := inner.Get(); present {
		return sum.Present(sum.Success[E](v))
	}
	return sum.Absent[sum.Result[T, E]]()
}
