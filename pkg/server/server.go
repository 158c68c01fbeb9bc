package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/narrowserve/internal/utils"
	"github.com/bastiangx/narrowserve/pkg/config"
	"github.com/bastiangx/narrowserve/pkg/roster"
	"github.com/bastiangx/narrowserve/pkg/suggest"
)

// Server handles the IPC for search suggestions
type Server struct {
	engine       suggest.ISuggester
	config       *config.Config
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	requestCount int
}

// NewServer creates a new suggestion server using stdin/stdout for IPC
func NewServer(engine suggest.ISuggester, cfg *config.Config) *Server {
	return &Server{
		engine: engine,
		config: cfg,
		dec:    msgpack.NewDecoder(os.Stdin),
		enc:    msgpack.NewEncoder(os.Stdout),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one incoming request
func (s *Server) handleRequest(request Request) {
	s.requestCount++

	switch request.Cmd {
	case "suggest":
		s.handleSuggest(request)
	case "resolve":
		s.handleResolve(request)
	case "rebuild":
		s.handleRebuild(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleSuggest runs one suggestion pass. Invalid query text is an
// error; query text the parser finds nothing in is not, it just
// produces an empty suggestion list.
func (s *Server) handleSuggest(request Request) {
	query := request.Query

	if !utils.IsValidQuery(query, s.config.Server.MaxQuery) {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		log.Debug("Rejected query in request", "id", request.ID)
		return
	}

	start := time.Now()
	labels := s.engine.Suggest(query)
	elapsed := time.Since(start)

	if max := s.config.Server.MaxItems; max > 0 && len(labels) > max {
		labels = labels[:max]
	}

	items := make([]SuggestItem, 0, len(labels))
	for _, label := range labels {
		description, ok := s.engine.Description(label)
		if !ok {
			log.Warnf("Suggested label %q has no description", label)
		}
		items = append(items, SuggestItem{Label: label, Description: description})
	}

	s.send(SuggestResponse{
		ID:          request.ID,
		Suggestions: items,
		Count:       len(items),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleResolve turns a selected label back into a narrowing action.
func (s *Server) handleResolve(request Request) {
	if request.Label == "" {
		s.sendError(request.ID, "Missing 'label' parameter", 400)
		return
	}

	res := s.engine.Resolve(request.Label)
	s.send(ResolveResponse{
		ID:   request.ID,
		Text: res.Text,
		Blur: res.Blur,
	})
}

// handleRebuild replaces the engine's catalog from the roster payload.
func (s *Server) handleRebuild(request Request) {
	people := make([]roster.Person, 0, len(request.People))
	for _, p := range request.People {
		people = append(people, roster.Person{FullName: p.FullName, Email: p.Email})
	}

	s.engine.Rebuild(request.Streams, people)
	s.send(StatusResponse{
		ID:     request.ID,
		Status: "ok",
		Count:  len(request.Streams) + 2*len(people),
	})
}

// send marshals the given response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
