// Package validate holds the pure input checks shared by handlers and services.
package validate

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required reports whether s contains any non-whitespace characters.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s has the shape local@domain.tld.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password checks the general password rule (4 to 20 characters).
// Returns ok and a human-readable reason when not ok.
func Password(s string) (bool, string) {
	if len([]rune(s)) < 4 {
		return false, "パスワードは4文字以上である必要があります"
	}
	if len([]rune(s)) > 20 {
		return false, "パスワードは20文字以下である必要があります"
	}
	return true, ""
}

// RegisterPasswordMinLen is the stricter minimum enforced at registration.
const RegisterPasswordMinLen = 6

// RegisterPassword checks the registration password rule.
func RegisterPassword(s string) bool {
	return len([]rune(s)) >= RegisterPasswordMinLen
}

// Truncate shortens s to maxLen runes, appending an ellipsis when cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
