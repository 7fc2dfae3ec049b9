package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var wsRe = regexp.MustCompile(`\s+`)
var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)
var multiDash = regexp.MustCompile(`\-+`)
var nonDigit = regexp.MustCompile(`[^0-9]+`)
var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeNameLower collapses whitespace and lowercases. Category filter
// matching runs both sides through this.
func NormalizeNameLower(s string) string {
	s = strings.TrimSpace(s)
	s = wsRe.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// Slugify turns a display name into a stable document id. Arabic-only names
// produce an empty slug; callers fall back to a generated id.
func Slugify(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	t := norm.NFKD.String(name)
	b := make([]rune, 0, len(t))
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b = append(b, unicode.ToLower(r))
			continue
		}
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			b = append(b, '-')
		}
	}
	out := string(b)
	out = nonSlug.ReplaceAllString(out, "-")
	out = multiDash.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// NormalizePhone strips everything but digits and prefixes a single +.
// Empty input stays empty, it never becomes a bare "+".
func NormalizePhone(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return ""
	}
	return "+" + digits
}

// PhoneDigits returns just the digits of a phone number, as wa.me expects.
func PhoneDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// ValidHHMM reports whether s is a 24h HH:MM time string.
func ValidHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}
