package validate

// NotEmptySlice reports whether the slice has at least one element.
func NotEmptySlice[E any](s []E) bool {
	return len(s) > 0
}

// MinItems returns a check that passes when the slice has at least min
// elements.
func MinItems[E any](min int) func([]E) bool {
	return func(s []E) bool { return len(s) >= min }
}

// MaxItems returns a check that passes when the slice has at most max
// elements.
func MaxItems[E any](max int) func([]E) bool {
	return func(s []E) bool { return len(s) <= max }
}

// ExactItems returns a check that passes when the slice has exactly n
// elements.
func ExactItems[E any](n int) func([]E) bool {
	return func(s []E) bool { return len(s) == n }
}

// Each returns a check that passes when every element of the slice passes
// check. An empty slice passes; combine with NotEmptySlice to require
// elements.
func Each[E any](check func(E) bool) func([]E) bool {
	return func(s []E) bool {
		for _, e := range s {
			if !check(e) {
				return false
			}
		}
		return true
	}
}

// NotEmptyMap reports whether the map has at least one entry.
func NotEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) > 0
}

// MinKeys returns a check that passes when the map has at least min entries.
func MinKeys[K comparable, V any](min int) func(map[K]V) bool {
	return func(m map[K]V) bool { return len(m) >= min }
}

// MaxKeys returns a check that passes when the map has at most max entries.
func MaxKeys[K comparable, V any](max int) func(map[K]V) bool {
	return func(m map[K]V) bool { return len(m) <= max }
}
