package hint

import (
	"fmt"
	"testing"

	"github.com/mvickers/pounce/internal/target"
)

func binaryHints(t *testing.T) []Hint {
	t.Helper()
	targets := []target.Target{
		{ID: "T0", Priority: 0},
		{ID: "T1", Priority: 1},
		{ID: "T2", Priority: 2},
	}
	return NewGenerator(MustAlphabet("ab"), Options{}).Generate(targets)
}

func TestMatcherScenarioTyping(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		want  string
		steps []Status
	}{
		{"short label activates immediately", "a", "T0", []Status{StatusActivated}},
		{"ba activates T1", "ba", "T1", []Status{StatusPending, StatusActivated}},
		{"bb activates T2", "bb", "T2", []Status{StatusPending, StatusActivated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher()
			m.Start(binaryHints(t))

			var last Result
			for i, r := range tt.keys {
				last = m.Type(r)
				if last.Status != tt.steps[i] {
					t.Fatalf("key %q: status = %v, want %v", r, last.Status, tt.steps[i])
				}
			}
			if last.TargetID != tt.want {
				t.Errorf("activated %q, want %q", last.TargetID, tt.want)
			}
			if m.State() != StateIdle {
				t.Errorf("state after activation = %v, want idle", m.State())
			}
		})
	}
}

func TestMatcherFullLabelReplay(t *testing.T) {
	// Typing any target's complete label activates exactly that target,
	// independent of the other hints present.
	targets := make([]target.Target, 30)
	for i := range targets {
		targets[i] = target.Target{ID: fmt.Sprintf("t%02d", i), Priority: i}
	}
	hints := NewGenerator(MustAlphabet("asd"), Options{}).Generate(targets)

	for _, h := range hints {
		m := NewMatcher()
		m.Start(hints)

		var last Result
		for _, r := range h.Label {
			last = m.Type(r)
			if last.Status == StatusRejected {
				t.Fatalf("label %q: unexpected rejection", h.Label)
			}
		}
		if last.Status != StatusActivated || last.TargetID != h.TargetID {
			t.Fatalf("label %q activated %q (status %v), want %q",
				h.Label, last.TargetID, last.Status, h.TargetID)
		}
	}
}

func TestMatcherRejectsNonMatching(t *testing.T) {
	m := NewMatcher()
	m.Start(binaryHints(t))

	res := m.Type('x')
	if res.Status != StatusRejected {
		t.Fatalf("status = %v, want rejected", res.Status)
	}
	if m.Typed() != "" {
		t.Errorf("typed = %q, want unchanged empty prefix", m.Typed())
	}
	if len(m.Candidates()) != 3 {
		t.Errorf("candidates = %d, want full set after rejection", len(m.Candidates()))
	}

	// Rejection mid-prefix leaves the prefix intact too.
	m.Type('b')
	if res := m.Type('x'); res.Status != StatusRejected {
		t.Fatalf("status = %v, want rejected", res.Status)
	}
	if m.Typed() != "b" {
		t.Errorf("typed = %q, want b", m.Typed())
	}
}

func TestMatcherBackspace(t *testing.T) {
	// Five targets over a binary alphabet label as aa ab ba bba bbb, so
	// "bb" is a wrong turn for T2 rather than a complete label. Typing
	// it, backspacing, then correcting reaches the same activation as
	// typing "ba" directly.
	targets := make([]target.Target, 5)
	for i := range targets {
		targets[i] = target.Target{ID: fmt.Sprintf("T%d", i), Priority: i}
	}
	m := NewMatcher()
	m.Start(NewGenerator(MustAlphabet("ab"), Options{}).Generate(targets))

	m.Type('b')
	if res := m.Type('b'); res.Status != StatusPending {
		t.Fatalf("bb status = %v, want pending", res.Status)
	}

	m.Backspace()
	if m.Typed() != "b" {
		t.Fatalf("typed after backspace = %q, want b", m.Typed())
	}
	if len(m.Candidates()) != 3 {
		t.Fatalf("candidates after backspace = %d, want 3", len(m.Candidates()))
	}

	res := m.Type('a')
	if res.Status != StatusActivated || res.TargetID != "T2" {
		t.Fatalf("got %v/%q, want activation of T2", res.Status, res.TargetID)
	}
}

func TestMatcherBackspaceOnEmptyPrefix(t *testing.T) {
	m := NewMatcher()
	m.Start(binaryHints(t))

	m.Backspace() // no-op
	if m.State() != StateCollecting || m.Typed() != "" {
		t.Errorf("backspace on empty prefix changed state: %v %q", m.State(), m.Typed())
	}
}

func TestMatcherCancel(t *testing.T) {
	m := NewMatcher()
	m.Start(binaryHints(t))
	m.Type('b')

	m.Cancel()
	if m.State() != StateIdle {
		t.Fatalf("state = %v, want idle", m.State())
	}
	if m.Typed() != "" || len(m.Candidates()) != 0 {
		t.Error("cancel must discard typed prefix and hint set")
	}
}

func TestMatcherEmptyHintSet(t *testing.T) {
	m := NewMatcher()
	m.Start(nil)

	if m.State() != StateCollecting {
		t.Fatalf("hint mode should activate with zero hints")
	}
	if res := m.Type('a'); res.Status != StatusRejected {
		t.Errorf("typing with no hints: status = %v, want rejected", res.Status)
	}
	m.Cancel()
	if m.State() != StateIdle {
		t.Error("escape must still exit with zero hints")
	}
}

func TestMatcherIdleIgnoresInput(t *testing.T) {
	m := NewMatcher()
	if res := m.Type('a'); res.Status != StatusRejected {
		t.Errorf("idle Type status = %v, want rejected", res.Status)
	}
	m.Backspace()
	m.Cancel()
	if m.State() != StateIdle {
		t.Error("idle matcher must stay idle")
	}
}
