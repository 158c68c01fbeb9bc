package suggest

import (
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/narrowserve/pkg/narrow"
	"github.com/bastiangx/narrowserve/pkg/operators"
	"github.com/bastiangx/narrowserve/pkg/roster"
)

// DefaultSourceCap is how many labels each of the stream, recipient and
// sender sources may contribute to one suggestion list.
const DefaultSourceCap = 4

// ParseFunc turns raw query text into structured operators.
type ParseFunc func(text string) []operators.Operator

// CompareFunc orders two people by relevance; negative means a ranks
// before b. Both person sources use the same comparator.
type CompareFunc func(a, b roster.Person) int

// Resolution is what selecting a suggestion produces: the text the
// narrowing call left in the query field, and whether the field should
// lose focus.
type Resolution struct {
	Text string
	Blur bool
}

// Engine generates, ranks and resolves search suggestions. All methods
// are safe for concurrent use; each call runs atomically under one
// lock, so a rebuild never interleaves with a suggestion query.
type Engine struct {
	mu        sync.Mutex
	cat       *catalog
	parse     ParseFunc
	narrower  narrow.Narrower
	compare   CompareFunc
	sourceCap int
}

// NewEngine creates an engine with an empty catalog, the default
// operator parser and the fallback person comparator.
func NewEngine(narrower narrow.Narrower) *Engine {
	return &Engine{
		cat:       newCatalog(nil, nil),
		parse:     operators.Parse,
		narrower:  narrower,
		compare:   CompareByName,
		sourceCap: DefaultSourceCap,
	}
}

// SetSourceCap overrides the per-source suggestion cap.
func (e *Engine) SetSourceCap(n int) {
	if n < 1 {
		return
	}
	e.mu.Lock()
	e.sourceCap = n
	e.mu.Unlock()
}

// SetParser overrides the operator parser.
func (e *Engine) SetParser(fn ParseFunc) {
	e.mu.Lock()
	e.parse = fn
	e.mu.Unlock()
}

// SetComparator overrides the person relevance comparator.
func (e *Engine) SetComparator(cmp CompareFunc) {
	e.mu.Lock()
	e.compare = cmp
	e.mu.Unlock()
}

// Rebuild replaces the catalog from the current roster. The new arena
// is built off to the side and swapped in under the lock, so a
// suggestion query never observes a half-built catalog.
func (e *Engine) Rebuild(streams []string, people []roster.Person) {
	cat := newCatalog(streams, people)
	e.mu.Lock()
	e.cat = cat
	e.mu.Unlock()
	log.Debugf("catalog rebuilt: %d streams, %d people", len(streams), len(people))
}

// Suggest returns the ranked labels for one keystroke's query text.
// The operators candidate leads, followed by up to sourceCap streams,
// recipients and senders, in that fixed priority order. Text the
// parser finds no operators in yields no suggestions at all.
func (e *Engine) Suggest(query string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	// The previous operators entry is keyed by the previous raw text,
	// which is stale now.
	e.cat.dropOperators()

	ops := e.parse(query)
	if len(ops) == 0 {
		return nil
	}

	cand := Candidate{
		Action:      ActionOperators,
		Query:       query,
		Operators:   ops,
		Description: html.EscapeString(operators.Describe(ops)),
	}
	cand.Label = makeLabel(&cand)
	e.cat.setOperators(cand)

	matched := e.cat.matchSet(query)

	result := make([]string, 0, 1+3*e.sourceCap)
	result = append(result, cand.Label)
	result = append(result, e.streamSuggestions(query, matched)...)
	result = append(result, e.personSuggestions(query, ActionPrivateMessage, matched)...)
	result = append(result, e.personSuggestions(query, ActionSender, matched)...)
	return result
}

// streamSuggestions filters stream candidates against the query and
// decorates each with a highlighted description. Streams were sorted
// at rebuild time, so catalog order is already the final order.
func (e *Engine) streamSuggestions(query string, matched map[int]bool) []string {
	labels := make([]string, 0, e.sourceCap)
	for idx := range e.cat.entries {
		if len(labels) == e.sourceCap {
			break
		}
		cand := &e.cat.entries[idx]
		if cand.Action != ActionStream || !matched[idx] {
			continue
		}
		cand.Description = "Narrow to stream " + highlightPhrase(query, cand.Stream)
		labels = append(labels, cand.Label)
	}
	return labels
}

// personSuggestions filters one person variant against the query,
// orders survivors with the relevance comparator, caps them and
// decorates the winners.
func (e *Engine) personSuggestions(query string, action Action, matched map[int]bool) []string {
	var idxs []int
	for idx := range e.cat.entries {
		if e.cat.entries[idx].Action == action && matched[idx] {
			idxs = append(idxs, idx)
		}
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		return e.compare(e.cat.entries[idxs[i]].Person, e.cat.entries[idxs[j]].Person) < 0
	})
	if len(idxs) > e.sourceCap {
		idxs = idxs[:e.sourceCap]
	}

	prefix := "Narrow to private messages with "
	if action == ActionSender {
		prefix = "Narrow to messages sent by "
	}

	labels := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		cand := &e.cat.entries[idx]
		cand.Description = prefix + highlightPerson(query, cand.Person)
		labels = append(labels, cand.Label)
	}
	return labels
}

// Description returns the rendered markup for a label. This is the
// typeahead widget's highlighter callback.
func (e *Engine) Description(label string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cand, ok := e.cat.lookup(label)
	if !ok {
		return "", false
	}
	return cand.Description, true
}

// Resolve dispatches the narrow behind a selected label and reports
// the text the narrow left in the field. An unknown label comes back
// as literal text with no narrow and no blur.
func (e *Engine) Resolve(label string) Resolution {
	e.mu.Lock()
	found, ok := e.cat.lookup(label)
	if !ok {
		e.mu.Unlock()
		log.Warnf("resolving unknown label %q", label)
		return Resolution{Text: label}
	}
	cand := *found
	e.mu.Unlock()

	opts := narrow.Options{Trigger: "search"}
	var text string
	switch cand.Action {
	case ActionStream:
		text = e.narrower.By("stream", cand.Stream, opts)
	case ActionPrivateMessage:
		text = e.narrower.By("pm-with", cand.Person.Email, opts)
	case ActionSender:
		text = e.narrower.By("sender", cand.Person.Email, opts)
	case ActionOperators:
		text = e.narrower.Activate(cand.Operators, opts)
	}
	return Resolution{Text: text, Blur: true}
}

// CompareByName is the fallback relevance comparator: alphabetical by
// full name, email as the tie-break.
func CompareByName(a, b roster.Person) int {
	if c := strings.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName)); c != 0 {
		return c
	}
	return strings.Compare(a.Email, b.Email)
}
