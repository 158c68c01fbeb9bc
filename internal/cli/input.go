// Package cli handles cmd line input for DBG and testing the suggestion flow
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/narrowserve/internal/logger"
	"github.com/bastiangx/narrowserve/internal/utils"
	"github.com/bastiangx/narrowserve/pkg/suggest"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
)

// InputHandler reads query text from stdin and prints the ranked
// suggestions, simulating what the typeahead widget would show.
// A "!pick <label>" line resolves a suggestion the way selecting it
// in the widget would.
type InputHandler struct {
	engine       suggest.ISuggester
	session      *suggest.Session
	maxQuery     int
	showMarkup   bool
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine suggest.ISuggester, session *suggest.Session, maxQuery int, showMarkup bool) *InputHandler {
	return &InputHandler{
		engine:     engine,
		session:    session,
		maxQuery:   maxQuery,
		showMarkup: showMarkup,
		out:        logger.New(""),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and
// passes the trimmed input on for processing. The loop terminates if
// an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("NarrowServe CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter to see suggestions; '!pick <label>' selects one (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if picked, ok := strings.CutPrefix(line, "!pick "); ok {
			h.handlePick(strings.TrimSpace(picked))
			continue
		}
		h.handleQuery(line)
	}
}

// handleQuery runs one suggestion pass and prints the ranked results.
func (h *InputHandler) handleQuery(query string) {
	h.requestCount++

	if !utils.IsValidQuery(query, h.maxQuery) {
		log.Errorf("Query too long or contains control characters: %q", query)
		return
	}

	// mirror what typing into the focused search field does
	h.session.Focus()
	h.session.SetText(query)

	start := time.Now()
	labels := h.engine.Suggest(query)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(labels) == 0 {
		log.Warnf("No suggestions for query: '%s'", query)
		return
	}

	log.Printf("Found %d suggestions for query '%s':", len(labels), query)
	for i, label := range labels {
		description, _ := h.engine.Description(label)
		if !h.showMarkup {
			description = stripMarkup(description)
		}
		h.out.Printf("%2d. %-28s %s", i+1, labelStyle.Render(label), descStyle.Render(description))
	}
}

// handlePick resolves a label as though it was selected in the widget.
func (h *InputHandler) handlePick(label string) {
	res := h.engine.Resolve(label)
	h.session.SetText(res.Text)
	if res.Blur {
		h.session.Blur()
		log.Print("search field blurred")
	} else {
		log.Warn("label not found, left as literal text")
	}
	log.Printf("field text: %q", res.Text)
	log.Printf("search buttons enabled: %v", h.session.ButtonsEnabled())
}

// stripMarkup flattens the <strong> highlights and entities the
// descriptions carry for the real widget, for terminal display.
func stripMarkup(s string) string {
	r := strings.NewReplacer(
		"<strong>", "", "</strong>", "",
		"&lt;", "<", "&gt;", ">",
		"&amp;", "&", "&#34;", `"`, "&#39;", "'",
	)
	return r.Replace(s)
}
