package rail

import "time"

// Inspector exposes variant inspection without payload access.
type Inspector interface {
	// IsSuccess returns true if the success variant is populated
	IsSuccess() bool
	// IsFailure returns true if the failure variant is populated
	IsFailure() bool
}

// Provider exposes the success payload of a result-like value.
type Provider[T any] interface {
	Inspector
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
