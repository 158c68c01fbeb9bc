package narrow

import (
	"testing"

	"github.com/bastiangx/narrowserve/pkg/operators"
)

func TestRecorderBy(t *testing.T) {
	r := NewRecorder()
	if r.Active() {
		t.Fatal("fresh recorder should not be active")
	}

	text := r.By("stream", "design", Options{Trigger: "search"})
	if text != "stream:design" {
		t.Errorf("field text = %q, expected stream:design", text)
	}
	if !r.Active() {
		t.Error("recorder should be active after By")
	}

	ops := r.Operators()
	if len(ops) != 1 || ops[0] != (operators.Operator{Name: "stream", Operand: "design"}) {
		t.Errorf("unexpected operators: %v", ops)
	}
}

func TestRecorderActivateAndDeactivate(t *testing.T) {
	r := NewRecorder()
	ops := []operators.Operator{{Name: "search", Operand: "lunch plans"}, {Name: "stream", Operand: "social"}}

	text := r.Activate(ops, Options{Trigger: "search"})
	if text != "lunch plans stream:social" {
		t.Errorf("field text = %q", text)
	}

	r.Deactivate()
	if r.Active() {
		t.Error("recorder should be inactive after Deactivate")
	}
	if len(r.Operators()) != 0 {
		t.Error("operators should be cleared")
	}
}
