package validate

import (
	"regexp"
	"strings"
	"unicode"
)

// NotEmpty reports whether s contains at least one non-whitespace character.
func NotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen returns a check that passes when the string is at least min bytes
// long.
func MinLen(min int) func(string) bool {
	return func(s string) bool { return len(s) >= min }
}

// MaxLen returns a check that passes when the string is at most max bytes
// long.
func MaxLen(max int) func(string) bool {
	return func(s string) bool { return len(s) <= max }
}

// ExactLen returns a check that passes when the string is exactly n bytes
// long.
func ExactLen(n int) func(string) bool {
	return func(s string) bool { return len(s) == n }
}

// LenBetween returns a check that passes when the string length is within
// [min, max] bytes.
func LenBetween(min, max int) func(string) bool {
	return func(s string) bool { return len(s) >= min && len(s) <= max }
}

// HasPrefix returns a check that passes when the string starts with prefix.
func HasPrefix(prefix string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// HasSuffix returns a check that passes when the string ends with suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(s string) bool { return strings.HasSuffix(s, suffix) }
}

// Matches returns a check that passes when the string matches pattern. The
// pattern is compiled once, when the check is built; an invalid pattern
// panics, mirroring regexp.MustCompile.
func Matches(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return func(s string) bool { return re.MatchString(s) }
}

// NoWhitespace reports whether s contains no whitespace characters.
func NoWhitespace(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsSpace)
}

// ASCIIOnly reports whether s consists entirely of ASCII characters.
func ASCIIOnly(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// ContainsUppercase reports whether s contains at least one uppercase letter.
func ContainsUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

// ContainsLowercase reports whether s contains at least one lowercase letter.
func ContainsLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

// ContainsDigit reports whether s contains at least one decimal digit.
func ContainsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// Alphanumeric reports whether s is non-empty and consists only of ASCII
// letters and digits.
func Alphanumeric(s string) bool {
	return alphanumericRegex.MatchString(s)
}

// Alpha reports whether s is non-empty and consists only of ASCII letters.
func Alpha(s string) bool {
	return alphaRegex.MatchString(s)
}

// NumericString reports whether s is non-empty and consists only of decimal
// digits.
func NumericString(s string) bool {
	return numericStringRegex.MatchString(s)
}

var (
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)
