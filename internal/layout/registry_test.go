package layout

import "testing"

func TestDefaultOrderIsKnownAndUnique(t *testing.T) {
	seen := make(map[CardID]bool)
	for _, id := range DefaultOrder() {
		if !Known(id) {
			t.Fatalf("default order contains unregistered card %q", id)
		}
		if seen[id] {
			t.Fatalf("default order contains duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestSpan(t *testing.T) {
	if Span(CardNews) != 2 {
		t.Fatalf("news should span the full width")
	}
	for _, id := range DefaultOrder() {
		if id == CardNews {
			continue
		}
		if Span(id) != 1 {
			t.Fatalf("%s should be a standard cell", id)
		}
	}
	if Span(CardID("mystery")) != 1 {
		t.Fatalf("unknown ids should default to a standard cell")
	}
}

func TestUnknownIsNotKnown(t *testing.T) {
	if Known(CardID("mystery")) {
		t.Fatalf("mystery should not be registered")
	}
}
