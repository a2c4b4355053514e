// Package opt contains the generic combinators over sum.Option[T] whose
// callbacks or outcomes introduce new type parameters.
//
// Highlights:
// - FromNullable/FromAny: bridge from nil-based representations of absence
// - Map/MapOr/MapOrElse/Match: transform the present value (defaulting wraps)
// - AndThen: sequence a dependent computation, short-circuiting on absent
// - Flatten: collapse Option[Option[T]] by one level
// - Zip/ZipWith/Unzip: pair two options or split an option of a pair
// - OkOr/OkOrElse: bridge to sum.Result, naming the error for absence
// - Transpose: distribute Option[Result[T, E]] into Result[Option[T], E]
package opt
