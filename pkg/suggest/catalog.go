package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/narrowserve/pkg/operators"
	"github.com/bastiangx/narrowserve/pkg/roster"
)

// Action is the closed set of candidate variants.
type Action int

const (
	ActionOperators Action = iota
	ActionStream
	ActionPrivateMessage
	ActionSender
)

func (a Action) String() string {
	switch a {
	case ActionOperators:
		return "operators"
	case ActionStream:
		return "stream"
	case ActionPrivateMessage:
		return "private_message"
	case ActionSender:
		return "sender"
	}
	return "unknown"
}

// Candidate is one suggestion the engine can offer. Exactly one payload
// field is meaningful for a given Action: Stream for ActionStream,
// Person for the two person variants, Query and Operators for
// ActionOperators. Description is recomputed per query since it embeds
// highlighted match fragments.
type Candidate struct {
	Action      Action
	Stream      string
	Person      roster.Person
	Query       string
	Operators   []operators.Operator
	Label       string
	Description string
}

// makeLabel derives the candidate's unique string key. The operators
// variant is keyed by the raw query text, so its label changes with
// every keystroke; the roster variants are stable until rebuild.
func makeLabel(c *Candidate) string {
	switch c.Action {
	case ActionStream:
		return "stream:" + c.Stream
	case ActionPrivateMessage:
		return "pm-with:" + c.Person.Email
	case ActionSender:
		return "sender:" + c.Person.Email
	}
	return c.Query
}

// catalog is the arena of candidates plus the label and word indexes.
// Slot 0 always holds the operators candidate. Rebuilds construct a
// fresh catalog and swap it in wholesale; nothing here is patched
// incrementally except the operators slot.
type catalog struct {
	entries []Candidate
	byLabel map[string]int

	// words maps every lowercased word of a candidate's phrases
	// (stream-name words, person-name words, the whole email) to the
	// indices of the candidates carrying it. Prefix retrieval over this
	// trie implements the word-prefix semantics of PhraseMatch.
	words *patricia.Trie

	// shadowed remembers the roster entry whose label the current
	// operators candidate took over, -1 when none. Query text that
	// spells out a roster label would otherwise orphan that entry.
	shadowed int
}

func newCatalog(streams []string, people []roster.Person) *catalog {
	names := append(streams[:0:0], streams...)
	sort.Strings(names)

	cat := &catalog{
		byLabel:  make(map[string]int, 1+len(names)+2*len(people)),
		words:    patricia.NewTrie(),
		shadowed: -1,
	}

	// Slot 0 is reserved for the operators candidate, filled per query.
	cat.entries = append(cat.entries, Candidate{Action: ActionOperators})

	for _, name := range names {
		cat.add(Candidate{Action: ActionStream, Stream: name}, name)
	}
	for _, p := range people {
		cat.add(Candidate{Action: ActionPrivateMessage, Person: p}, p.FullName, p.Email)
	}
	for _, p := range people {
		cat.add(Candidate{Action: ActionSender, Person: p}, p.FullName, p.Email)
	}
	return cat
}

func (c *catalog) add(cand Candidate, phrases ...string) {
	idx := len(c.entries)
	cand.Label = makeLabel(&cand)
	if _, dup := c.byLabel[cand.Label]; dup {
		// Two people sharing an email collide here. Upstream leaves the
		// precedence unspecified; the map keeps the later entry.
		log.Warnf("duplicate suggestion label %q", cand.Label)
	}
	c.entries = append(c.entries, cand)
	c.byLabel[cand.Label] = idx
	for _, phrase := range phrases {
		for _, word := range strings.Fields(strings.ToLower(phrase)) {
			c.index(word, idx)
		}
	}
}

// index appends idx to the posting list for word.
func (c *catalog) index(word string, idx int) {
	prefix := patricia.Prefix(word)
	if item := c.words.Get(prefix); item != nil {
		posting := item.([]int)
		if posting[len(posting)-1] != idx {
			c.words.Set(prefix, append(posting, idx))
		}
		return
	}
	c.words.Insert(prefix, []int{idx})
}

// matchSet returns the indices of candidates with at least one indexed
// word starting with query. The empty query selects every candidate.
func (c *catalog) matchSet(query string) map[int]bool {
	set := make(map[int]bool)
	err := c.words.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(p patricia.Prefix, item patricia.Item) error {
		for _, idx := range item.([]int) {
			set[idx] = true
		}
		return nil
	})
	if err != nil {
		log.Errorf("visiting word index: %v", err)
	}
	return set
}

// dropOperators removes the stale operators label left by the previous
// query, restoring any roster mapping that label had shadowed.
func (c *catalog) dropOperators() {
	if label := c.entries[0].Label; label != "" {
		if c.shadowed >= 0 {
			c.byLabel[label] = c.shadowed
		} else {
			delete(c.byLabel, label)
		}
	}
	c.shadowed = -1
	c.entries[0] = Candidate{Action: ActionOperators}
}

// setOperators installs a fresh operators candidate into slot 0.
func (c *catalog) setOperators(cand Candidate) {
	if prev, ok := c.byLabel[cand.Label]; ok && prev != 0 {
		c.shadowed = prev
	}
	c.entries[0] = cand
	c.byLabel[cand.Label] = 0
}

func (c *catalog) lookup(label string) (*Candidate, bool) {
	idx, ok := c.byLabel[label]
	if !ok {
		return nil, false
	}
	return &c.entries[idx], true
}
