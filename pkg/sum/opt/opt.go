package opt

import (
	"github.com/ib-77/sum/pkg/sum"
)

// FromNullable bridges from Go's nil-pointer representation of absence.
func FromNullable[T any](p *T) sum.Option[T] {
	if p == nil {
		return sum.Absent[T]()
	}
	return sum.Present(*p)
}

// FromAny bridges from an interface value, treating typed nils (pointer,
// map, slice, chan, func) as absent.
func FromAny(v any) sum.Option[any] {
	if sum.IsNil(v) {
		return sum.Absent[any]()
	}
	return sum.Present(v)
}

// Map transforms the present value; an absent input stays absent and f is
// never invoked.
func Map[T, U any](o sum.Option[T], f func(T) U) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return sum.Present(f(v))
	}
	return sum.Absent[U]()
}

// MapOr transforms the present value, substituting def when absent. The
// outcome is always present: defaulting wraps, it does not unwrap.
func MapOr[T, U any](o sum.Option[T], def U, f func(T) U) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return sum.Present(f(v))
	}
	return sum.Present(def)
}

// MapOrElse is MapOr with a lazily computed default; onAbsent is invoked
// only when the input is absent.
func MapOrElse[T, U any](o sum.Option[T], onAbsent func() U, f func(T) U) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return sum.Present(f(v))
	}
	return sum.Present(onAbsent())
}

// Match applies onPresent to the value or substitutes absent, wrapping
// either outcome in a present option (same policy as MapOr).
func Match[T, U any](o sum.Option[T], onPresent func(T) U, absent U) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return sum.Present(onPresent(v))
	}
	return sum.Present(absent)
}

// AndThen sequences a dependent computation, short-circuiting to absent
// without invoking f when the input is absent.
func AndThen[T, U any](o sum.Option[T], f func(T) sum.Option[U]) sum.Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return sum.Absent[U]()
}

// Flatten removes one level of nesting, returning the inner option
// unchanged. An absent outer stays absent.
func Flatten[T any](o sum.Option[sum.Option[T]]) sum.Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return sum.Absent[T]()
}

// Zip pairs two options, present only when both are. The receiver-side
// option is checked first.
func Zip[T, U any](o sum.Option[T], other sum.Option[U]) sum.Option[sum.Pair[T, U]] {
	v, ok := o.Get()
	if !ok {
		return sum.Absent[sum.Pair[T, U]]()
	}
	w, ok := other.Get()
	if !ok {
		return sum.Absent[sum.Pair[T, U]]()
	}
	return sum.Present(sum.PairOf(v, w))
}

// ZipWith is Zip with the pair fused through f; f is invoked only when
// both inputs are present.
func ZipWith[T, U, V any](o sum.Option[T], other sum.Option[U], f func(T, U) V) sum.Option[V] {
	v, ok := o.Get()
	if !ok {
		return sum.Absent[V]()
	}
	w, ok := other.Get()
	if !ok {
		return sum.Absent[V]()
	}
	return sum.Present(f(v, w))
}

// Unzip splits an option of a pair into a pair of options, both absent
// when the input is.
func Unzip[T, U any](o sum.Option[sum.Pair[T, U]]) (sum.Option[T], sum.Option[U]) {
	if p, ok := o.Get(); ok {
		return sum.Present(p.First), sum.Present(p.Second)
	}
	return sum.Absent[T](), sum.Absent[U]()
}

// OkOr bridges to Result, supplying err for the absent case.
func OkOr[T, E any](o sum.Option[T], err E) sum.Result[T, E] {
	if v, ok := o.Get(); ok {
		return sum.Success[E](v)
	}
	return sum.Failure[T](err)
}

// OkOrElse is OkOr with a lazily computed failure value.
func OkOrElse[T, E any](o sum.Option[T], f func() E) sum.Result[T, E] {
	if v, ok := o.Get(); ok {
		return sum.Success[E](v)
	}
	return sum.Failure[T](f())
}

// Transpose distributes an option of a result into a result of an option:
// absent becomes Success(absent), an inner success becomes
// Success(present), an inner failure stays a failure.
func Transpose[T, E any](o sum.Option[sum.Result[T, E]]) sum.Result[sum.Option[T], E] {
	inner, ok := o.Get()
	if !ok {
		return sum.Success[E](sum.Absent[T]())
	}
	if v, success := inner.Get(); success {
		return sum.Success[E](sum.Present(v))
	}
	return sum.Failure[sum.Option[T]](inner.IntoErr())
}
