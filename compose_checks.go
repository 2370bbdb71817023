package validate

// All returns a check that passes when every given check passes. With no
// checks it always passes.
func All[V any](checks ...func(V) bool) func(V) bool {
	return func(v V) bool {
		for _, check := range checks {
			if !check(v) {
				return false
			}
		}
		return true
	}
}

// Any returns a check that passes when at least one given check passes. With
// no checks it always fails.
func Any[V any](checks ...func(V) bool) func(V) bool {
	return func(v V) bool {
		for _, check := range checks {
			if check(v) {
				return true
			}
		}
		return false
	}
}

// Not returns a check that inverts the given check.
func Not[V any](check func(V) bool) func(V) bool {
	return func(v V) bool { return !check(v) }
}
