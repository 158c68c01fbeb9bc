/*
Package server implements msgpack IPC for the search suggestion engine.

The server provides a minimal interface for incremental search suggestions
using msgpack serialization over stdin/stdout.

The protocol is a request response model: clients send structured messages
via stdin and receive responses through stdout. Each message carries an ID
field and a command, with the remaining fields depending on the command.

Suggestion requests use this structure:

	{"id": "req_001", "cmd": "suggest", "q": "gen"}

The server responds with ranked labels and rendered descriptions:

	{"id": "req_001", "s": [{"l": "gen", "d": "Search for gen"},
	  {"l": "stream:general", "d": "Narrow to stream <strong>gen</strong>eral"}], "c": 2, "t": 87}

Selecting a suggestion resolves its label back into a narrowing action:

	{"id": "req_002", "cmd": "resolve", "label": "stream:general"}
	{"id": "req_002", "text": "stream:general", "blur": true}

Roster changes replace the candidate catalog wholesale:

	{"id": "req_003", "cmd": "rebuild", "streams": [...], "people": [...]}

Unknown commands and invalid requests come back as {"id", "e", "c"} error
messages. The server counts requests so long-running sessions can hook
periodic maintenance.

Timing in responses is in microseconds; a suggestion pass over a typical
roster is expected to stay well under a millisecond.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID      string          `msgpack:"id"`
	Cmd     string          `msgpack:"cmd"`
	Query   string          `msgpack:"q,omitempty"`
	Label   string          `msgpack:"label,omitempty"`
	Streams []string        `msgpack:"streams,omitempty"`
	People  []PersonPayload `msgpack:"people,omitempty"`
}

// PersonPayload mirrors roster.Person on the wire.
type PersonPayload struct {
	FullName string `msgpack:"n"`
	Email    string `msgpack:"e"`
}

// SuggestItem - one ranked suggestion
type SuggestItem struct {
	Label       string `msgpack:"l"`
	Description string `msgpack:"d"`
}

// SuggestResponse - ranked suggestions for one query
type SuggestResponse struct {
	ID          string        `msgpack:"id"`
	Suggestions []SuggestItem `msgpack:"s"`
	Count       int           `msgpack:"c"`
	TimeTaken   int64         `msgpack:"t"`
}

// ResolveResponse - outcome of selecting a suggestion
type ResolveResponse struct {
	ID   string `msgpack:"id"`
	Text string `msgpack:"text"`
	Blur bool   `msgpack:"blur"`
}

// StatusResponse - rebuild/health acknowledgements
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Count  int    `msgpack:"c,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
