package validators

import (
	"regexp"
	"strings"
)

var hslTriple = regexp.MustCompile(`^\d{1,3}(\.\d+)?\s+\d{1,3}(\.\d+)?%\s+\d{1,3}(\.\d+)?%$`)

// IsHSLTriple matches theme tokens like "25 95% 53%".
func IsHSLTriple(v string) bool {
	return hslTriple.MatchString(strings.TrimSpace(v))
}

func IsDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Digits drops everything but 0-9.
func Digits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
