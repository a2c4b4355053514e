// Package res contains the generic combinators over sum.Result[T, E]
// whose callbacks or outcomes introduce new type parameters.
//
// Highlights:
// - Of/Tuple: bridge to and from Go's (value, error) convention
// - Map/MapErr: transform the success or failure side
// - MapOr/MapOrElse: transform with a default, always wrapping in a success
// - AndThen: sequence a dependent fallible computation
// - OrElse: recover from a failure, possibly changing the failure type
// - Flatten: collapse Result[Result[T, E], E] by one level
// - Transpose: distribute Result[Option[T], E] into Option[Result[T, E]]
// - Combine/Combine2/Combine3: fail-fast, first-error-wins aggregation
package res
