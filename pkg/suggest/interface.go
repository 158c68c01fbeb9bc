// Package suggest is the core, generating ranked search suggestions for a
// typed query and mapping suggestion labels back to narrowing actions.
package suggest

import (
	"github.com/bastiangx/narrowserve/pkg/roster"
)

// ISuggester defines the interface for suggestion engines
type ISuggester interface {
	// Suggest returns ranked labels for the typed query
	Suggest(query string) []string

	// Description returns the rendered markup behind a label
	Description(label string) (string, bool)

	// Resolve dispatches the narrowing action behind a selected label
	Resolve(label string) Resolution

	// Rebuild replaces the candidate catalog from the roster
	Rebuild(streams []string, people []roster.Person)
}
