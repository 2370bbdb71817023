package validate

import "strings"

// OneOf returns a check that passes when the value equals one of the allowed
// values.
func OneOf[V comparable](allowed ...V) func(V) bool {
	return func(v V) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// NoneOf returns a check that passes when the value equals none of the
// forbidden values.
func NoneOf[V comparable](forbidden ...V) func(V) bool {
	return func(v V) bool {
		for _, f := range forbidden {
			if v == f {
				return false
			}
		}
		return true
	}
}

// OneOfFold returns a case-insensitive variant of OneOf for strings.
func OneOfFold(allowed ...string) func(string) bool {
	return func(s string) bool {
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return true
			}
		}
		return false
	}
}

// NoneOfFold returns a case-insensitive variant of NoneOf for strings.
func NoneOfFold(forbidden ...string) func(string) bool {
	return func(s string) bool {
		for _, f := range forbidden {
			if strings.EqualFold(s, f) {
				return false
			}
		}
		return true
	}
}
