// Package sum defines two immutable two-variant containers: Option[T]
// (a value that may be absent) and Result[T, E] (a computation that may
// fail with an ordinary failure value E), together with their same-type
// combinators and the bridges between them.
//
// Highlights:
// - Present/Absent, Success/Failure: construct containers
// - IsPresent/IsAbsent, IsSuccess/IsFailure: exhaustive variant tests
// - Unwrap/Expect and their Err duals: extract or panic with a rendered payload
// - And/Or/OrElse/Filter: same-type composition, returning the untouched
//   input container when no transformation applies
// - Inspect/InspectErr: synchronous side effects on the matching variant
// - Ok/Err: convert a Result into an Option of either side
//
// Combinators that introduce new type parameters (Map, AndThen, Zip,
// Transpose, Combine, ...) live in the opt and res subpackages, since Go
// methods cannot be generic over new parameters.
package sum
