package rail

// Errors flattens err into its joined components: an errors.Join aggregate
// unwraps to its parts, any other error becomes a single-element slice.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
