package suggest

import (
	"testing"
	"time"

	"github.com/bastiangx/narrowserve/pkg/narrow"
	"github.com/bastiangx/narrowserve/pkg/operators"
)

func activateNarrow(r *narrow.Recorder) {
	r.Activate([]operators.Operator{{Name: "stream", Operand: "general"}}, narrow.Options{Trigger: "search"})
}

func TestBlurClearsWithoutNarrow(t *testing.T) {
	s := NewSession(narrow.NewRecorder())
	s.SetClearDelay(5 * time.Millisecond)
	s.Focus()
	s.SetText("gen")
	s.Blur()

	time.Sleep(50 * time.Millisecond)
	if s.Text() != "" {
		t.Errorf("text %q should have been cleared after blur", s.Text())
	}
	if s.Focused() {
		t.Error("session still focused after blur")
	}
}

func TestBlurKeepsTextWhileNarrowed(t *testing.T) {
	r := narrow.NewRecorder()
	activateNarrow(r)

	s := NewSession(r)
	s.SetClearDelay(5 * time.Millisecond)
	s.SetText("stream:general")
	s.Blur()

	time.Sleep(50 * time.Millisecond)
	if s.Text() != "stream:general" {
		t.Error("active narrow must keep the field text as a cue")
	}
}

// An older blur's delayed check must not clear text owned by a newer
// blur generation.
func TestBlurGenerationSupersedes(t *testing.T) {
	r := narrow.NewRecorder()
	s := NewSession(r)
	s.SetClearDelay(20 * time.Millisecond)

	s.SetText("first")
	s.Blur()

	// Before the first check fires, a narrow lands and a second blur
	// happens; the first generation is stale by the time it runs.
	time.Sleep(5 * time.Millisecond)
	activateNarrow(r)
	s.Focus()
	s.SetText("second")
	s.Blur()

	time.Sleep(60 * time.Millisecond)
	if s.Text() != "second" {
		t.Errorf("text = %q, stale blur check should not have acted", s.Text())
	}
}

func TestButtonsEnabled(t *testing.T) {
	testCases := []struct {
		focused     bool
		text        string
		active      bool
		expected    bool
		description string
	}{
		{false, "", false, false, "Idle"},
		{true, "", false, true, "Focused"},
		{false, "gen", false, true, "Has text"},
		{false, "", true, true, "Narrow active"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			r := narrow.NewRecorder()
			if tc.active {
				activateNarrow(r)
			}
			s := NewSession(r)
			if tc.focused {
				s.Focus()
			}
			s.SetText(tc.text)
			if got := s.ButtonsEnabled(); got != tc.expected {
				t.Errorf("ButtonsEnabled = %v, expected %v", got, tc.expected)
			}
		})
	}
}
