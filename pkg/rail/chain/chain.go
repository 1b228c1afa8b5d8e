package chain

import (
	"github.com/rail-go/rail/pkg/rail"
	"github.com/rail-go/rail/pkg/rail/solo"
)

// Chain wraps a rail.Result to enable fluent pipeline composition
type Chain[T, E any] struct {
	result rail.Result[T, E]
}

// Start creates a new chain from a rail.Result
func Start[T, E any](result rail.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(rail.Success[T, E](value))
}

// Result returns the underlying rail.Result
func (c Chain[T, E]) Result() rail.Result[T, E] {
	return c.result
}

// Then composes a function that already returns a rail.Result, keeping the
// payload type. A failed chain short-circuits without invoking onSuccess.
func (c Chain[T, E]) Then(onSuccess func(t T) rail.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: solo.Switch(c.result, onSuccess)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	return Chain[T, E]{result: solo.Map(c.result, onSuccess)}
}

// MapFailure transforms the failure payload, keeping its type
func (c Chain[T, E]) MapFailure(onFailure func(e E) E) Chain[T, E] {
	return Chain[T, E]{result: solo.MapFailure(c.result, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil callbacks are safe.
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	return Chain[T, E]{result: solo.DoubleTee(c.result, onSuccess, onFailure)}
}

// Then chains a function that switches the payload type
func Then[In, Out, E any](c Chain[In, E], onSuccess func(In) rail.Result[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{result: solo.Switch(c.result, onSuccess)}
}

// Map chains a pure transformation to a new payload type
func Map[In, Out, E any](c Chain[In, E], onSuccess func(In) Out) Chain[Out, E] {
	return Chain[Out, E]{result: solo.Map(c.result, onSuccess)}
}

// Try chains a function that returns (Out, error)
func Try[In, Out any](c Chain[In, error], onTry func(In) (Out, error)) Chain[Out, error] {
	return Chain[Out, error]{result: solo.Try(c.result, onTry)}
}

// Match collapses the chain to a final value, delegating to solo.Match
func Match[T, E, Out any](c Chain[T, E],
	onSuccess func(T) Out,
	onFailure func(E) Out) Out {
	return solo.Match(c.result, onSuccess, onFailure)
}
