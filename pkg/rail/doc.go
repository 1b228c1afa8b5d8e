// Package rail provides Result[T, E], an immutable container holding either
// a success payload T or a failure payload E.
//
// A Result is created by Success or Failure, inspected through
// IsSuccess/IsFailure or the narrowing Get/GetFailure pair, and consumed by
// Do or by the combinators in the solo and chain subpackages. Reading the
// wrong variant's payload via Value/Failure panics: expected failures travel
// as the failure variant, misuse of the container does not.
//
// Every Result carries a uuid id and a UTC creation time. Combinators that
// pass a variant through unchanged preserve this metadata (see FailureFrom
// and SuccessFrom); combinators that produce a new payload mint fresh
// metadata.
package rail
