package model

import "testing"

func TestHistory(t *testing.T) {
	var h History

	h.Record("a")
	h.Record("b")
	if h.IsStagnant("a") {
		t.Fatal("stagnant with fewer than three states recorded")
	}

	h.Record("c")
	tests := []struct {
		hash string
		want bool
	}{
		{"c", true},
		{"b", true},
		{"a", true},
		{"d", false},
	}
	for _, tt := range tests {
		if got := h.IsStagnant(tt.hash); got != tt.want {
			t.Errorf("IsStagnant(%q) = %v, want %v", tt.hash, got, tt.want)
		}
	}

	h.Record("d")
	if h.IsStagnant("a") {
		t.Fatal("state older than three generations counted as a cycle")
	}

	for _, s := range []string{"e", "f", "g", "h"} {
		h.Record(s)
	}
	if len(h.hashes) != historySize {
		t.Fatalf("history holds %d states, want %d", len(h.hashes), historySize)
	}

	h.Reset()
	if h.IsStagnant("h") {
		t.Fatal("Reset kept states")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	var h History
	w := NewWorld(WithCoordinates(blinkerHorizontal...))

	stagnant := false
	for range 4 {
		stagnant = h.IsStagnant(w.Hash())
		h.Record(w.Hash())
		w.Step()
	}
	if !stagnant {
		t.Fatal("period 2 oscillator not detected")
	}
}
