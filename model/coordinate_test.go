package model

import (
	"math"
	"slices"
	"testing"
)

func TestCoordinateAdjacent(t *testing.T) {
	tests := []struct {
		a, b Coordinate
		want bool
	}{
		{C(0, 0), C(0, 0), false},
		{C(0, 0), C(1, 0), true},
		{C(0, 0), C(-1, -1), true},
		{C(0, 0), C(2, 0), false},
		{C(0, 0), C(1, 2), false},
		{C(math.MaxInt, 0), C(math.MinInt, 0), false},
		{C(math.MinInt, math.MinInt), C(math.MinInt+1, math.MinInt+1), true},
		{C(math.MaxInt, math.MaxInt), C(math.MaxInt-1, math.MaxInt), true},
	}

	for _, tt := range tests {
		if got := tt.a.Adjacent(tt.b); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Adjacent(tt.a); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestCoordinateNeighbours(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want int
	}{
		{C(0, 0), 8},
		{C(math.MaxInt, 0), 5},
		{C(0, math.MinInt), 5},
		{C(math.MinInt, math.MaxInt), 3},
	}

	for _, tt := range tests {
		neighbours := tt.c.Neighbours()
		if len(neighbours) != tt.want {
			t.Errorf("%v has %d neighbours, want %d", tt.c, len(neighbours), tt.want)
		}
		for _, n := range neighbours {
			if !tt.c.Adjacent(n) {
				t.Errorf("%v is not adjacent to %v", n, tt.c)
			}
		}
	}
}

func TestCoordinateSet(t *testing.T) {
	s := NewCoordinateSet(C(2, 1), C(1, 5), C(1, -3), C(2, 1))
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}

	want := []Coordinate{C(1, -3), C(1, 5), C(2, 1)}
	if got := s.Sorted(); !slices.Equal(got, want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}

	s.Remove(C(1, 5))
	if s.Has(C(1, 5)) || s.Equal(NewCoordinateSet(want...)) {
		t.Fatal("Remove did not drop the coordinate")
	}
	if !s.Equal(NewCoordinateSet(C(2, 1), C(1, -3))) {
		t.Fatal("sets with the same members are not equal")
	}
}

func TestBoundsOf(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Fatal("empty input has bounds")
	}

	b, ok := BoundsOf([]Coordinate{C(3, -1), C(-2, 4), C(0, 0)})
	if !ok || b != (Bounds{MinX: -2, MaxX: 3, MinY: -1, MaxY: 4}) {
		t.Fatalf("BoundsOf() = %+v, %v", b, ok)
	}
	if b.Width() != 6 || b.Height() != 6 {
		t.Fatalf("size %dx%d, want 6x6", b.Width(), b.Height())
	}
}
