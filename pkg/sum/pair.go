package sum

// Pair groups two values of independent types, produced by Zip and
// positionally-typed aggregation.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Triple is the three-value counterpart of Pair.
type Triple[T, U, V any] struct {
	First  T
	Second U
	Third  V
}

func PairOf[T, U any](first T, second U) Pair[T, U] {
	return Pair[T, U]{First: first, Second: second}
}

func TripleOf[T, U, V any](first T, second U, third V) Triple[T, U, V] {
	return Triple[T, U, V]{First: first, Second: second, Third: third}
}
