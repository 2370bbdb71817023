package validate

// Numeric constrains the built-in numeric types accepted by the numeric
// checks.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns a check that passes when the value is at least min.
func Min[T Numeric](min T) func(T) bool {
	return func(v T) bool { return v >= min }
}

// Max returns a check that passes when the value is at most max.
func Max[T Numeric](max T) func(T) bool {
	return func(v T) bool { return v <= max }
}

// Between returns a check that passes when the value is within [min, max].
func Between[T Numeric](min, max T) func(T) bool {
	return func(v T) bool { return v >= min && v <= max }
}

// Positive reports whether v is greater than zero.
func Positive[T Numeric](v T) bool {
	return v > 0
}

// NonNegative reports whether v is zero or greater.
func NonNegative[T Numeric](v T) bool {
	return v >= 0
}

// NonZero reports whether v differs from the zero value of its type.
func NonZero[T comparable](v T) bool {
	var zero T
	return v != zero
}
