// Package solo provides package-level combinators over rail.Result values:
// - Succeed/Fail: lift a payload into a Result
// - Map/MapFailure: transform one side, pass the other through
// - Switch: compose result-returning functions (flattening bind)
// - Match: collapse to a plain value with total two-way dispatch
// - Try: adapt ordinary (value, error) functions
// - Validate/ValidateAll: predicate gates with error joining
// - Tee/DoubleTee: side effects that leave the result unchanged
//
// Type-changing combinators live here as free functions because Go methods
// cannot introduce new type parameters.
package solo
