package fx

// RequireNotNil returns a *ValidationError naming param when value is nil.
func RequireNotNil(param string, value any) error {
	if IsNil(value) {
		return &ValidationError{Param: param, Index: -1}
	}
	return nil
}

// RequireEntriesNotNil scans every entry of values and reports the first nil
// slot. A nil slice is the same as an empty one: variadic callers cannot tell
// them apart.
func RequireEntriesNotNil[T any](param string, values []T) error {
	for i, v := range values {
		if IsNil(v) {
			return &ValidationError{Param: param, Index: i}
		}
	}
	return nil
}

// MustNotBeNil is the panic-on-failure variant of RequireNotNil, used by
// fluent composition operators.
func MustNotBeNil(param string, value any) {
	if err := RequireNotNil(param, value); err != nil {
		panic(err)
	}
}

// MustEntriesNotBeNil is the panic-on-failure variant of RequireEntriesNotNil.
func MustEntriesNotBeNil[T any](param string, values []T) {
	if err := RequireEntriesNotNil(param, values); err != nil {
		panic(err)
	}
}
