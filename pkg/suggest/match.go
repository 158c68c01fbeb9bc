package suggest

import (
	"strings"

	"github.com/bastiangx/narrowserve/pkg/roster"
)

// PhraseMatch reports whether any whitespace-separated word of phrase
// starts with query. Both sides compare case-insensitively, so "tes"
// matches "Stream Test" at the word boundary but not "hostess". The
// empty query matches everything.
func PhraseMatch(phrase, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, word := range strings.Fields(phrase) {
		if strings.HasPrefix(strings.ToLower(word), q) {
			return true
		}
	}
	return false
}

// PersonMatch matches a person by name or, failing that, by email.
func PersonMatch(p roster.Person, query string) bool {
	return PhraseMatch(p.FullName, query) || PhraseMatch(p.Email, query)
}

// StreamMatch matches a stream by its name.
func StreamMatch(name, query string) bool {
	return PhraseMatch(name, query)
}
