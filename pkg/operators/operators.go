// Package operators parses free text from the search field into structured
// (name, operand) pairs and renders operator lists back to readable text.
package operators

import (
	"strings"
)

// Operator is one clause of a narrowing query, like stream:design or
// sender:alice@example.com.
type Operator struct {
	Name    string
	Operand string
}

// Parse splits text into operators. Tokens shaped like name:operand become
// one operator each with the name lowercased. Every other token is free
// text; free-text tokens accumulate, in order, into a single search
// operator placed where the first one appeared. Blank text yields nil.
func Parse(text string) []Operator {
	var ops []Operator
	var terms []string
	searchIdx := -1

	for _, token := range strings.Fields(text) {
		name, operand, found := strings.Cut(token, ":")
		if found && isOperatorName(name) && operand != "" {
			ops = append(ops, Operator{Name: strings.ToLower(name), Operand: operand})
			continue
		}
		if searchIdx < 0 {
			searchIdx = len(ops)
			ops = append(ops, Operator{Name: "search"})
		}
		terms = append(terms, token)
	}

	if searchIdx >= 0 {
		ops[searchIdx].Operand = strings.Join(terms, " ")
	}
	return ops
}

// isOperatorName accepts the word-shaped names operators use, including
// hyphenated ones like pm-with.
func isOperatorName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// Unparse renders an operator list as the canonical search-field string.
// The search operator renders as its bare terms so the field reads
// naturally; everything else renders as name:operand.
func Unparse(ops []Operator) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		if op.Name == "search" {
			parts = append(parts, op.Operand)
			continue
		}
		parts = append(parts, op.Name+":"+op.Operand)
	}
	return strings.Join(parts, " ")
}

// Describe converts an operator list to a human-readable description,
// one phrase per operator, joined with ", ". The result is plain text;
// callers escape it before handing it to any markup renderer.
func Describe(ops []Operator) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, describeOperator(op))
	}
	return strings.Join(parts, ", ")
}

func describeOperator(op Operator) string {
	switch op.Name {
	case "is":
		switch op.Operand {
		case "private":
			return "Narrow to all private messages"
		case "starred":
			return "Narrow to starred messages"
		case "mentioned":
			return "Narrow to mentioned messages"
		}
	case "stream":
		return "Narrow to stream " + op.Operand
	case "subject":
		return "Narrow to subject " + op.Operand
	case "sender":
		return "Narrow to sender " + op.Operand
	case "pm-with":
		return "Narrow to private messages with " + op.Operand
	case "search":
		return "Search for " + op.Operand
	case "in":
		return "Narrow to messages in " + op.Operand
	}
	return "Narrow to (unknown operator)"
}
