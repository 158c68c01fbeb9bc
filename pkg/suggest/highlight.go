package suggest

import (
	"html"
	"strings"

	"github.com/bastiangx/narrowserve/pkg/roster"
)

// highlightPhrase escapes phrase and wraps the matched query prefix of
// each matching word in <strong> markup. The output is what the
// typeahead widget renders, so everything untrusted passes through
// html.EscapeString.
func highlightPhrase(query, phrase string) string {
	q := strings.ToLower(query)
	words := strings.Split(phrase, " ")
	for i, word := range words {
		if q != "" && strings.HasPrefix(strings.ToLower(word), q) {
			n := len(q)
			words[i] = "<strong>" + html.EscapeString(word[:n]) + "</strong>" + html.EscapeString(word[n:])
			continue
		}
		words[i] = html.EscapeString(word)
	}
	return strings.Join(words, " ")
}

// highlightPerson renders "Full Name <email>" with both parts
// highlighted against the query.
func highlightPerson(query string, p roster.Person) string {
	return highlightPhrase(query, p.FullName) + " &lt;" + highlightPhrase(query, p.Email) + "&gt;"
}
