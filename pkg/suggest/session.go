package suggest

import (
	"sync"
	"time"

	"github.com/bastiangx/narrowserve/pkg/narrow"
)

// DefaultBlurClearDelay is the grace period between the field losing
// focus and the clear check. Selecting a typeahead item blurs the field
// a moment before the narrow lands, so clearing immediately would wipe
// the text being searched for.
const DefaultBlurClearDelay = 100 * time.Millisecond

// Session tracks the query field's text and focus state. Each blur
// schedules a delayed clear keyed by a generation counter: a newer blur
// supersedes the pending task, and the clear only happens while no
// narrow is active, so the text survives as a cue for what the view is
// narrowed to.
type Session struct {
	mu       sync.Mutex
	narrower narrow.Narrower
	delay    time.Duration
	text     string
	focused  bool
	blurGen  uint64
}

func NewSession(narrower narrow.Narrower) *Session {
	return &Session{
		narrower: narrower,
		delay:    DefaultBlurClearDelay,
	}
}

// SetClearDelay overrides the blur grace period.
func (s *Session) SetClearDelay(d time.Duration) {
	s.mu.Lock()
	s.delay = d
	s.mu.Unlock()
}

// SetText records the current contents of the query field.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *Session) Focus() {
	s.mu.Lock()
	s.focused = true
	s.mu.Unlock()
}

func (s *Session) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// Blur marks the field unfocused and schedules the clear check.
func (s *Session) Blur() {
	s.mu.Lock()
	s.focused = false
	s.blurGen++
	gen := s.blurGen
	delay := s.delay
	s.mu.Unlock()

	time.AfterFunc(delay, func() {
		s.clearAfterBlur(gen)
	})
}

// clearAfterBlur runs the delayed check for one blur generation. A
// superseded generation no-ops; an active narrow keeps the text.
func (s *Session) clearAfterBlur(gen uint64) {
	active := s.narrower.Active()
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.blurGen || active {
		return
	}
	s.text = ""
}

// ButtonsEnabled reports whether the search affordances should be
// clickable: field focused, non-empty contents, or a narrow in effect.
func (s *Session) ButtonsEnabled() bool {
	active := s.narrower.Active()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused || s.text != "" || active
}
