// Package chain provides a minimal fluent Chain[T, E] for synchronous
// same-type composition of sum.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Try: compose result-returning or error-returning functions
// - Map: transform the successful value
// - While: repeat a step while a condition holds on the current value
// - Or/And: pick between chains by success/failure
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Chain is ideal where lightweight synchronous chaining improves
// readability over branching on each intermediate result.
package chain
