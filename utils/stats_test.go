package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.ActiveCells != 100 || s.TotalGenerations != 1 {
		t.Fatalf("first update: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration changed the rate")
	}
	if s.Runtime() < 0 {
		t.Fatal("negative runtime")
	}
}
