// Package chain provides a fluent Chain[T, E] for synchronous composition
// of rail.Result values.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain
// - Then/Map/MapFailure (methods): same-type steps
// - Then/Map/Try (functions): steps that switch the payload type
// - Ensure: trigger side effects without changing the result
// - Match: reduce to a concrete value via total two-way dispatch
//
// Steps that change the payload type are package functions taking the chain
// as first argument, since methods cannot add type parameters.
package chain
