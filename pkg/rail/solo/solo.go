package solo

import (
	"errors"

	"github.com/rail-go/rail/pkg/rail"
)

func Succeed[T, E any](value T) rail.Result[T, E] {
	return rail.Success[T, E](value)
}

func Fail[T, E any](failure E) rail.Result[T, E] {
	return rail.Failure[T, E](failure)
}

// Map transforms the success payload and rewraps it; a failure passes
// through untouched, metadata included. onSuccess must not signal failure
// itself: a result-shaped return belongs in Switch.
func Map[In, Out, E any](input rail.Result[In, E],
	onSuccess func(r In) Out) rail.Result[Out, E] {

	if input.IsSuccess() {
		return rail.Success[Out, E](onSuccess(input.Value()))
	}
	return rail.FailureFrom[In, Out](input)
}

// MapFailure is the mirror of Map on the failure side; a success passes
// through untouched.
func MapFailure[T, E, F any](input rail.Result[T, E],
	onFailure func(e E) F) rail.Result[T, F] {

	if input.IsFailure() {
		return rail.Failure[T, F](onFailure(input.Failure()))
	}
	return rail.SuccessFrom[T, E, F](input)
}

// Switch is the sequencing primitive: on success it hands the payload to
// onSuccess and returns that Result directly, flattening instead of nesting;
// on failure it short-circuits without invoking onSuccess.
func Switch[In, Out, E any](input rail.Result[In, E],
	onSuccess func(r In) rail.Result[Out, E]) rail.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rail.FailureFrom[In, Out](input)
}

// Match collapses the Result to a plain value, invoking exactly one of the
// two callbacks. This is the terminal consumption form: both outcomes must
// be handled at the call site.
func Match[T, E, Out any](input rail.Result[T, E],
	onSuccess func(r T) Out,
	onFailure func(e E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Failure())
}

// Try adapts an ordinary (Out, error) function into the pipeline: a non-nil
// error becomes the failure variant.
func Try[In, Out any](input rail.Result[In, error],
	onTryExecute func(r In) (Out, error)) rail.Result[Out, error] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Value())
		if err != nil {
			return rail.Failure[Out, error](err)
		}

		return rail.Success[Out, error](out)
	}

	return rail.FailureFrom[In, Out](input)
}

// Validate gates a success payload on a predicate, failing with the given
// payload when the predicate rejects it.
func Validate[T, E any](input rail.Result[T, E],
	valid func(in T) bool, failure E) rail.Result[T, E] {

	if input.IsSuccess() && !valid(input.Value()) {
		return rail.Failure[T, E](failure)
	}
	return input
}

// ValidateAll runs every check against the same successful input and joins
// the collected failures via errors.Join. With breakOnError the first
// failing check wins.
func ValidateAll[T any](input rail.Result[T, error],
	breakOnError bool, // exit on first error
	checks ...func(in rail.Result[T, error]) rail.Result[T, error]) rail.Result[T, error] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, check := range checks {
		if out := check(input); out.IsFailure() {
			errs = append(errs, rail.Errors(out.Failure())...)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return rail.Failure[T, error](errors.Join(errs...))
	}
	return input
}

// Tee triggers a side effect on success without changing the result.
func Tee[T, E any](input rail.Result[T, E],
	onSuccess func(r T)) rail.Result[T, E] {

	if input.IsSuccess() && onSuccess != nil {
		onSuccess(input.Value())
	}

	return input
}

// DoubleTee triggers a side effect for whichever variant is populated,
// without changing the result. Nil callbacks are skipped.
func DoubleTee[T, E any](input rail.Result[T, E],
	onSuccess func(r T),
	onFailure func(e E)) rail.Result[T, E] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Value())
		}
	} else {
		if onFailure != nil {
			onFailure(input.Failure())
		}
	}

	return input
}
