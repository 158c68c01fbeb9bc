// Package narrow defines the boundary to the view-narrowing subsystem:
// the calls the suggestion engine makes when a suggestion is selected.
package narrow

import (
	"sync"

	"github.com/bastiangx/narrowserve/pkg/operators"
	"github.com/charmbracelet/log"
)

// Options carries metadata about what caused a narrow.
type Options struct {
	Trigger string
}

// Narrower is implemented by the message-view side. By and Activate
// return the text the narrow leaves in the search field, since the
// narrowing side may rewrite it as a normalized operator string.
type Narrower interface {
	By(operator, operand string, opts Options) string
	Activate(ops []operators.Operator, opts Options) string
	Deactivate()
	Active() bool
}

// Recorder is an in-process Narrower. It records the active operator
// list and reports the canonical operator string as the field text.
// The server and CLI run against it; an embedding client supplies its
// own Narrower wired to a real message view.
type Recorder struct {
	mu     sync.Mutex
	ops    []operators.Operator
	active bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) By(operator, operand string, opts Options) string {
	return r.Activate([]operators.Operator{{Name: operator, Operand: operand}}, opts)
}

func (r *Recorder) Activate(ops []operators.Operator, opts Options) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops[:0:0], ops...)
	r.active = true
	text := operators.Unparse(r.ops)
	log.Debugf("narrow activated (trigger=%s): %s", opts.Trigger, text)
	return text
}

func (r *Recorder) Deactivate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
	r.active = false
	log.Debug("narrow deactivated")
}

func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Operators returns a copy of the active operator list.
func (r *Recorder) Operators() []operators.Operator {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(r.ops[:0:0], r.ops...)
}
