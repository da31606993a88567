package hint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mvickers/pounce/internal/target"
)

func makeTargets(n int) []target.Target {
	targets := make([]target.Target, n)
	for i := 0; i < n; i++ {
		targets[i] = target.Target{
			ID:       fmt.Sprintf("t%03d", i),
			Area:     target.Rect{X: i % 10, Y: i / 10, W: 5, H: 1},
			Priority: i,
		}
	}
	return targets
}

func TestGenerateSingleCharWhenFewTargets(t *testing.T) {
	gen := NewGenerator(MustAlphabet("asdf"), Options{})
	hints := gen.Generate(makeTargets(3))

	want := []string{"a", "s", "d"}
	if len(hints) != 3 {
		t.Fatalf("got %d hints, want 3", len(hints))
	}
	for i, h := range hints {
		if h.Label != want[i] {
			t.Errorf("hint %d label = %q, want %q", i, h.Label, want[i])
		}
		if len(h.Label) != 1 {
			t.Errorf("hint %d should be single character", i)
		}
	}
}

func TestGenerateBinaryScenario(t *testing.T) {
	// Three targets over alphabet "ab": one short slot goes to the most
	// important target, the other two take the length-2 codes under "b".
	targets := []target.Target{
		{ID: "T0", Priority: 0},
		{ID: "T1", Priority: 1},
		{ID: "T2", Priority: 2},
	}
	gen := NewGenerator(MustAlphabet("ab"), Options{})
	hints := gen.Generate(targets)

	want := map[string]string{"T0": "a", "T1": "ba", "T2": "bb"}
	if len(hints) != 3 {
		t.Fatalf("got %d hints, want 3", len(hints))
	}
	for _, h := range hints {
		if want[h.TargetID] != h.Label {
			t.Errorf("%s label = %q, want %q", h.TargetID, h.Label, want[h.TargetID])
		}
	}
}

func TestGeneratePrefixFree(t *testing.T) {
	alphabets := []string{"ab", "asd", "asdfghjkl"}
	counts := []int{1, 2, 5, 9, 10, 26, 80, 81, 82, 500, 1500}

	for _, a := range alphabets {
		for _, n := range counts {
			t.Run(fmt.Sprintf("k%d_n%d", len(a), n), func(t *testing.T) {
				gen := NewGenerator(MustAlphabet(a), Options{})
				hints := gen.Generate(makeTargets(n))

				if len(hints) != n {
					t.Fatalf("got %d hints, want %d", len(hints), n)
				}

				labels := make(map[string]bool, n)
				for _, h := range hints {
					if labels[h.Label] {
						t.Fatalf("duplicate label %q", h.Label)
					}
					labels[h.Label] = true
				}
				for _, h := range hints {
					for other := range labels {
						if other != h.Label && strings.HasPrefix(other, h.Label) {
							t.Fatalf("label %q is a prefix of %q", h.Label, other)
						}
					}
				}
			})
		}
	}
}

func TestGenerateLabelLengthMonotonicInPriority(t *testing.T) {
	gen := NewGenerator(MustAlphabet("asd"), Options{})
	targets := makeTargets(40)
	hints := gen.Generate(targets)

	lengths := make(map[string]int)
	for _, h := range hints {
		lengths[h.TargetID] = len([]rune(h.Label))
	}

	// Targets are constructed with priority == index, so labels must not
	// shrink as the index grows.
	for i := 1; i < len(targets); i++ {
		prev := lengths[targets[i-1].ID]
		cur := lengths[targets[i].ID]
		if prev > cur {
			t.Fatalf("priority %d got label length %d, priority %d got %d",
				targets[i-1].Priority, prev, targets[i].Priority, cur)
		}
	}
}

func TestGenerateOrderingTieBreaks(t *testing.T) {
	// Same priority: reading order (y, then x, then id) decides who gets
	// the earlier (shorter or lexicographically first) label.
	targets := []target.Target{
		{ID: "z", Area: target.Rect{X: 0, Y: 0, W: 1, H: 1}, Priority: 1},
		{ID: "a", Area: target.Rect{X: 0, Y: 0, W: 1, H: 1}, Priority: 1},
		{ID: "top", Area: target.Rect{X: 5, Y: 0, W: 1, H: 1}, Priority: 0},
	}
	gen := NewGenerator(MustAlphabet("asdf"), Options{})
	hints := gen.Generate(targets)

	byID := map[string]string{}
	for _, h := range hints {
		byID[h.TargetID] = h.Label
	}
	if byID["top"] != "a" {
		t.Errorf("highest priority target label = %q, want a", byID["top"])
	}
	if byID["a"] != "s" || byID["z"] != "d" {
		t.Errorf("tie-break order wrong: a=%q z=%q", byID["a"], byID["z"])
	}
}

func TestGenerateMaxHintsKeepsMostImportant(t *testing.T) {
	gen := NewGenerator(MustAlphabet("asdfghjkl"), Options{MaxHints: 4})
	hints := gen.Generate(makeTargets(20))

	if len(hints) != 4 {
		t.Fatalf("got %d hints, want 4", len(hints))
	}
	for i, h := range hints {
		want := fmt.Sprintf("t%03d", i)
		if h.TargetID != want {
			t.Errorf("hint %d target = %s, want %s", i, h.TargetID, want)
		}
	}
}

func TestGenerateMinAreaFilter(t *testing.T) {
	targets := []target.Target{
		{ID: "big", Area: target.Rect{W: 10, H: 2}, Priority: 1},
		{ID: "tiny", Area: target.Rect{W: 1, H: 1}, Priority: 0},
		{ID: "flat", Area: target.Rect{W: 8, H: 0}, Priority: 0},
	}
	gen := NewGenerator(MustAlphabet("ab"), Options{MinArea: 2})
	hints := gen.Generate(targets)

	if len(hints) != 1 || hints[0].TargetID != "big" {
		t.Fatalf("hints = %v, want only big", hints)
	}

	// Without the filter, degenerate targets still get labels.
	gen = NewGenerator(MustAlphabet("ab"), Options{})
	if got := len(gen.Generate(targets)); got != 3 {
		t.Errorf("unfiltered hints = %d, want 3", got)
	}
}

func TestGenerateZeroTargets(t *testing.T) {
	gen := NewGenerator(DefaultAlphabet(), Options{})
	if hints := gen.Generate(nil); len(hints) != 0 {
		t.Errorf("Generate(nil) = %v, want empty", hints)
	}
}

func TestGenerateDuplicatePositions(t *testing.T) {
	targets := []target.Target{
		{ID: "one", Area: target.Rect{X: 2, Y: 2, W: 1, H: 1}, Priority: 0},
		{ID: "two", Area: target.Rect{X: 2, Y: 2, W: 1, H: 1}, Priority: 0},
	}
	gen := NewGenerator(MustAlphabet("ab"), Options{})
	hints := gen.Generate(targets)
	if len(hints) != 2 || hints[0].Label == hints[1].Label {
		t.Fatalf("duplicate positions must still get distinct labels: %v", hints)
	}
}

func TestHintWidth(t *testing.T) {
	gen := NewGenerator(MustAlphabet("素直"), Options{})
	hints := gen.Generate(makeTargets(2))
	for _, h := range hints {
		if h.Width != 2 {
			t.Errorf("label %q width = %d, want 2 (wide rune)", h.Label, h.Width)
		}
	}
}

func TestNewAlphabet(t *testing.T) {
	a, err := NewAlphabet("aabba")
	if err != nil {
		t.Fatalf("NewAlphabet error: %v", err)
	}
	if a.String() != "ab" {
		t.Errorf("deduplicated alphabet = %q, want ab", a.String())
	}

	if _, err := NewAlphabet("aaa"); err == nil {
		t.Error("single-character alphabet should be rejected")
	}
	if _, err := NewAlphabet(""); err == nil {
		t.Error("empty alphabet should be rejected")
	}
}
