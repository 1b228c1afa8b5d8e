package rail

import (
	"time"

	"github.com/google/uuid"
)

// Result is an immutable two-variant container: it holds either a success
// payload of type T or a failure payload of type E, never both. The two
// payload types are independent and caller-supplied.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](failure E) Result[T, E] {
	return Result[T, E]{
		failure:   failure,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a failure Result to a new success payload type,
// keeping the failure payload and the provenance metadata of the original.
// Panics if from holds the success variant.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if from.isSuccess {
		panic("rail: FailureFrom on success Result")
	}
	return Result[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		failure:   from.failure,
	}
}

// SuccessFrom re-types a success Result to a new failure payload type,
// keeping the success payload and the provenance metadata of the original.
// Panics if from holds the failure variant.
func SuccessFrom[T, E, F any](from Result[T, E]) Result[T, F] {
	if !from.isSuccess {
		panic("rail: SuccessFrom on failure Result")
	}
	return Result[T, F]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     from.value,
		isSuccess: true,
	}
}

// Value returns the success payload. Reading the payload of a failure
// Result is a programmer error and panics.
func (r Result[T, E]) Value() T {
	if !r.isSuccess {
		panic("rail: Value on failure Result")
	}
	return r.value
}

// Failure returns the failure payload. Reading the payload of a success
// Result is a programmer error and panics.
func (r Result[T, E]) Failure() E {
	if r.isSuccess {
		panic("rail: Failure on success Result")
	}
	return r.failure
}

// Get narrows to the success payload without panicking.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// GetFailure narrows to the failure payload without panicking.
func (r Result[T, E]) GetFailure() (E, bool) {
	return r.failure, !r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Do invokes exactly one of the two callbacks depending on the variant.
func (r Result[T, E]) Do(onSuccess func(T), onFailure func(E)) {
	if r.isSuccess {
		onSuccess(r.value)
	} else {
		onFailure(r.failure)
	}
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
