// Package roster holds the streams and people the suggestion engine knows
// about, and loads them from TOML or binary roster files.
package roster

// Person is one entry of the people roster. The engine treats it as
// immutable; the email doubles as the person's identity in suggestion
// labels.
type Person struct {
	FullName string `toml:"full_name" msgpack:"n"`
	Email    string `toml:"email" msgpack:"e"`
}

// Roster is the full set of known streams and people.
type Roster struct {
	Streams []string `toml:"streams" msgpack:"s"`
	People  []Person `toml:"people" msgpack:"p"`
}
