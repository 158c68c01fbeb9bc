package operators

import (
	"testing"
)

// Parse should split operator tokens from free text and fold the free
// text into a single search operator at its first position.
func TestParse(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []Operator
		description string
	}{
		{"", nil, "Empty text"},
		{"   ", nil, "Whitespace only"},
		{"stream:design", []Operator{{"stream", "design"}}, "Single operator"},
		{"STREAM:design", []Operator{{"stream", "design"}}, "Operator name lowercased"},
		{"stream:design sender:alice@x.com", []Operator{{"stream", "design"}, {"sender", "alice@x.com"}}, "Two operators"},
		{"hello world", []Operator{{"search", "hello world"}}, "Free text only"},
		{"beta stream:design release", []Operator{{"search", "beta release"}, {"stream", "design"}}, "Search slot keeps first position"},
		{"is:private", []Operator{{"is", "private"}}, "is operator"},
		{"pm-with:bob@x.com", []Operator{{"pm-with", "bob@x.com"}}, "Hyphenated operator name"},
		{"stream:", []Operator{{"search", "stream:"}}, "Empty operand is free text"},
		{"http://x.com/y", []Operator{{"http", "//x.com/y"}}, "Any name:operand token parses as an operator"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Parse(tc.input)
			if len(got) != len(tc.expected) {
				t.Fatalf("Parse(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Parse(%q)[%d] = %v, expected %v", tc.input, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestUnparse(t *testing.T) {
	ops := []Operator{{"search", "release notes"}, {"stream", "design"}}
	got := Unparse(ops)
	if got != "release notes stream:design" {
		t.Errorf("Unparse = %q", got)
	}
	if Unparse(nil) != "" {
		t.Errorf("Unparse(nil) should be empty")
	}
}

// every phrase template, plus the unknown fallback
func TestDescribe(t *testing.T) {
	testCases := []struct {
		op          Operator
		expected    string
		description string
	}{
		{Operator{"is", "private"}, "Narrow to all private messages", "is:private"},
		{Operator{"is", "starred"}, "Narrow to starred messages", "is:starred"},
		{Operator{"is", "mentioned"}, "Narrow to mentioned messages", "is:mentioned"},
		{Operator{"is", "bogus"}, "Narrow to (unknown operator)", "is with unknown operand"},
		{Operator{"stream", "design"}, "Narrow to stream design", "stream"},
		{Operator{"subject", "lunch"}, "Narrow to subject lunch", "subject"},
		{Operator{"sender", "alice@x.com"}, "Narrow to sender alice@x.com", "sender"},
		{Operator{"pm-with", "bob@x.com"}, "Narrow to private messages with bob@x.com", "pm-with"},
		{Operator{"search", "lunch plans"}, "Search for lunch plans", "search"},
		{Operator{"in", "home"}, "Narrow to messages in home", "in"},
		{Operator{"topic", "x"}, "Narrow to (unknown operator)", "unknown operator"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := Describe([]Operator{tc.op}); got != tc.expected {
				t.Errorf("Describe(%v) = %q, expected %q", tc.op, got, tc.expected)
			}
		})
	}
}

func TestDescribeJoinsWithComma(t *testing.T) {
	ops := []Operator{{"stream", "design"}, {"search", "mockups"}}
	got := Describe(ops)
	expected := "Narrow to stream design, Search for mockups"
	if got != expected {
		t.Errorf("Describe = %q, expected %q", got, expected)
	}
}
