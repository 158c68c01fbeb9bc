package suggest

import (
	"testing"

	"github.com/bastiangx/narrowserve/pkg/roster"
)

var testPeople = []roster.Person{
	{FullName: "Alice A", Email: "alice@x.com"},
	{FullName: "Bob B", Email: "bob@x.com"},
}

func catalogLabels(c *catalog) []string {
	labels := make([]string, 0, len(c.entries))
	for i := range c.entries {
		labels = append(labels, c.entries[i].Label)
	}
	return labels
}

func TestCatalogLayout(t *testing.T) {
	cat := newCatalog([]string{"random", "general"}, testPeople)

	expected := []string{
		"", // operators slot, not yet populated
		"stream:general",
		"stream:random",
		"pm-with:alice@x.com",
		"pm-with:bob@x.com",
		"sender:alice@x.com",
		"sender:bob@x.com",
	}
	got := catalogLabels(cat)
	if len(got) != len(expected) {
		t.Fatalf("catalog has %d entries, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("entry %d label = %q, expected %q", i, got[i], expected[i])
		}
	}
}

// Two rebuilds from the same roster must produce identical label sets
// and identical stream ordering.
func TestCatalogDeterminism(t *testing.T) {
	streams := []string{"zulip", "announce", "design"}
	first := catalogLabels(newCatalog(streams, testPeople))
	second := catalogLabels(newCatalog(streams, testPeople))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rebuild not deterministic at %d: %q vs %q", i, first[i], second[i])
		}
	}
	if first[1] != "stream:announce" || first[2] != "stream:design" || first[3] != "stream:zulip" {
		t.Errorf("streams not in lexicographic order: %v", first[1:4])
	}
}

func TestCatalogRebuildDoesNotMutateInput(t *testing.T) {
	streams := []string{"zulip", "announce"}
	newCatalog(streams, nil)
	if streams[0] != "zulip" {
		t.Error("caller's stream slice was sorted in place")
	}
}

func TestMatchSet(t *testing.T) {
	cat := newCatalog([]string{"general", "test stream"}, testPeople)

	testCases := []struct {
		query       string
		label       string
		expected    bool
		description string
	}{
		{"gen", "stream:general", true, "Stream name prefix"},
		{"stre", "stream:test stream", true, "Second word of stream name"},
		{"ali", "pm-with:alice@x.com", true, "Person by name"},
		{"alice@", "sender:alice@x.com", true, "Person by email"},
		{"eral", "stream:general", false, "Substring is not a word prefix"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			set := cat.matchSet(tc.query)
			idx, ok := cat.byLabel[tc.label]
			if !ok {
				t.Fatalf("label %q missing from catalog", tc.label)
			}
			if set[idx] != tc.expected {
				t.Errorf("matchSet(%q)[%s] = %v, expected %v", tc.query, tc.label, set[idx], tc.expected)
			}
		})
	}

	// empty query selects every roster candidate
	set := cat.matchSet("")
	if len(set) != len(cat.entries)-1 {
		t.Errorf("empty query matched %d of %d candidates", len(set), len(cat.entries)-1)
	}
}

func TestOperatorsSlotReplacement(t *testing.T) {
	cat := newCatalog([]string{"general"}, nil)

	cand := Candidate{Action: ActionOperators, Query: "gen"}
	cand.Label = makeLabel(&cand)
	cat.setOperators(cand)

	if got, ok := cat.lookup("gen"); !ok || got.Action != ActionOperators {
		t.Fatal("operators candidate not reachable by its raw-text label")
	}

	cat.dropOperators()
	if _, ok := cat.lookup("gen"); ok {
		t.Error("stale operators label still resolvable after drop")
	}
	if _, ok := cat.lookup("stream:general"); !ok {
		t.Error("roster labels must survive the operators slot churn")
	}
}

// A query that spells a roster label shadows it in the map. The drop
// must not take the roster entry down with it.
func TestOperatorsShadowingRosterLabel(t *testing.T) {
	cat := newCatalog([]string{"general"}, nil)

	cand := Candidate{Action: ActionOperators, Query: "stream:general"}
	cand.Label = makeLabel(&cand)
	cat.setOperators(cand)
	cat.dropOperators()

	got, ok := cat.lookup("stream:general")
	if !ok {
		t.Fatal("roster label lost after shadowing operators candidate was dropped")
	}
	if got.Action != ActionStream {
		t.Errorf("label resolves to %v, expected stream", got.Action)
	}
}
