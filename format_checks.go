package validate

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Phone number regex - international format with optional country code.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// DNS label: alphanumeric with inner hyphens, no edge hyphens.
var hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// Email reports whether s is a valid email address for typical web use:
// RFC 5322 parseable in bare-address form, with a non-empty local part and a
// dotted domain.
func Email(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	// Reject display-name forms such as "John <john@example.com>".
	if addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot, not at either edge, and no empty
	// labels in between.
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URL reports whether s is an absolute URL with a scheme and host.
func URL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// URLWithScheme returns a check that passes when the string is an absolute
// URL using one of the given schemes.
func URLWithScheme(schemes ...string) func(string) bool {
	return func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}
		u, err := url.ParseRequestURI(s)
		if err != nil {
			return false
		}
		return slices.Contains(schemes, u.Scheme)
	}
}

// Phone reports whether s is a valid international phone number in E.164
// format. Spaces and dashes are stripped before matching.
func Phone(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

// IP reports whether s is a valid IPv4 or IPv6 address.
func IP(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return net.ParseIP(s) != nil
}

// IPv4 reports whether s is a valid IPv4 address.
func IPv4(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IPv6 reports whether s is a valid IPv6 address, including IPv4-mapped
// forms.
func IPv6(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	return ip.To4() == nil || strings.Contains(s, ":")
}

// MAC reports whether s is a valid MAC address in a form accepted by
// net.ParseMAC, such as AA:BB:CC:DD:EE:FF or AA-BB-CC-DD-EE-FF.
func MAC(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := net.ParseMAC(s)
	return err == nil
}

// Hostname reports whether s is a valid DNS domain name: at most 253 bytes,
// two or more dot-separated labels of up to 63 alphanumeric-or-hyphen
// characters without edge hyphens, ending in an alphabetic TLD of at least
// two characters.
func Hostname(s string) bool {
	if strings.TrimSpace(s) == "" || len(s) > 253 {
		return false
	}
	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > 63 || !hostnameLabelRegex.MatchString(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	return len(tld) >= 2 && alphaRegex.MatchString(tld)
}

// Subdomain reports whether s is a valid single DNS label: up to 63
// alphanumeric-or-hyphen characters without edge hyphens.
func Subdomain(s string) bool {
	return len(s) > 0 && len(s) <= 63 && hostnameLabelRegex.MatchString(s)
}

// LanguageTag reports whether s is a well-formed BCP 47 language tag, such as
// "en", "en-US", or "zh-Hans".
func LanguageTag(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

// CurrencyCode reports whether s is a recognized ISO 4217 currency code.
// Matching is case-insensitive: "usd" and "USD" both pass.
func CurrencyCode(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := currency.ParseISO(s)
	return err == nil
}
