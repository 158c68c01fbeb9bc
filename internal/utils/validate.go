package utils

import (
	"unicode"
)

// IsValidQuery rejects query text the engine should not bother with:
// over-long input and control characters. Empty text is valid; it just
// produces no suggestions.
func IsValidQuery(query string, maxLen int) bool {
	if maxLen > 0 && len(query) > maxLen {
		return false
	}
	for _, r := range query {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
