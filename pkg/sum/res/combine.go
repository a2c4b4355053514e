package res

import (
	"github.com/ib-77/sum/pkg/sum"
)

// Combine aggregates many results into one: all successes yield a
// success of the values in input order; otherwise the failure of the
// first failing input, scanned left to right. Fail-fast, first error
// wins, no accumulation.
//
// Mixed value types aggregate with T = any.
func Combine[T, E any](rs ...sum.Result[T, E]) sum.Result[[]T, E] {
	values := make([]T, 0, len(rs))

	for _, r := range rs {
		v, ok := r.Get()
		if !ok {
			return sum.Failure[[]T](r.IntoErr())
		}
		values = append(values, v)
	}

	return sum.Success[E](values)
}

// Combine2 is the positionally-typed two-input form of Combine.
func Combine2[T1, T2, E any](r1 sum.Result[T1, E], r2 sum.Result[T2, E]) sum.Result[sum.Pair[T1, T2], E] {
	v1, ok := r1.Get()
	if !ok {
		return sum.Failure[sum.Pair[T1, T2]](r1.IntoErr())
	}
	v2, ok := r2.Get()
	if !ok {
		return sum.Failure[sum.Pair[T1, T2]](r2.IntoErr())
	}
	return sum.Success[E](sum.PairOf(v1, v2))
}

// Combine3 is the positionally-typed three-input form of Combine.
func Combine3[T1, T2, T3, E any](r1 sum.Result[T1, E], r2 sum.Result[T2, E],
	r3 sum.Result[T3, E]) sum.Result[sum.Triple[T1, T2, T3], E] {

	v1, ok := r1.Get()
	if !ok {
		return sum.Failure[sum.Triple[T1, T2, T3]](r1.IntoErr())
	}
	v2, ok := r2.Get()
	if !ok {
		return sum.Failure[sum.Triple[T1, T2, T3]](r2.IntoErr())
	}
	v3, ok := r3.Get()
	if !ok {
		return sum.Failure[sum.Triple[T1, T2, T3]](r3.IntoErr())
	}
	return sum.Success[E](sum.TripleOf(v1, v2, v3))
}
