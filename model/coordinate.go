package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Coordinate is a point on the unbounded integer plane
type Coordinate struct {
	X int
	Y int
}

// C is shorthand for building a Coordinate
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Adjacent reports whether other is one of the 8 coordinates surrounding c.
// Differences are taken without overflow so the test holds at the integer limits.
func (c Coordinate) Adjacent(other Coordinate) bool {
	if c == other {
		return false
	}
	return withinOne(c.X, other.X) && withinOne(c.Y, other.Y)
}

// Translate returns c shifted by offset
func (c Coordinate) Translate(offset Coordinate) Coordinate {
	return Coordinate{X: c.X + offset.X, Y: c.Y + offset.Y}
}

// Neighbours returns the coordinates surrounding c. Coordinates that would fall
// outside the signed integer range are omitted, the plane ends there.
func (c Coordinate) Neighbours() []Coordinate {
	neighbours := make([]Coordinate, 0, 8)
	for _, dy := range []int{-1, 0, 1} {
		y, ok := step(c.Y, dy)
		if !ok {
			continue
		}
		for _, dx := range []int{-1, 0, 1} {
			if dx == 0 && dy == 0 {
				continue
			}
			x, ok := step(c.X, dx)
			if !ok {
				continue
			}
			neighbours = append(neighbours, Coordinate{X: x, Y: y})
		}
	}
	return neighbours
}

// withinOne reports |a-b| <= 1. The subtraction wraps on overflow and then goes negative.
func withinOne(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	d := b - a
	return d >= 0 && d <= 1
}

func step(v, d int) (int, bool) {
	switch {
	case d > 0 && v == math.MaxInt:
		return 0, false
	case d < 0 && v == math.MinInt:
		return 0, false
	}
	return v + d, true
}

// CoordinateSet is an unordered set of coordinates
type CoordinateSet struct {
	set mapset.Set[Coordinate]
}

// NewCoordinateSet creates a set holding coords
func NewCoordinateSet(coords ...Coordinate) CoordinateSet {
	s := CoordinateSet{set: mapset.New[Coordinate]()}
	for _, c := range coords {
		s.set.Put(c)
	}
	return s
}

// Put adds c to the set
func (s CoordinateSet) Put(c Coordinate) {
	s.set.Put(c)
}

// Has reports whether c is in the set
func (s CoordinateSet) Has(c Coordinate) bool {
	return s.set.Has(c)
}

// Remove drops c from the set
func (s CoordinateSet) Remove(c Coordinate) {
	s.set.Remove(c)
}

// Size returns the number of coordinates in the set
func (s CoordinateSet) Size() int {
	return s.set.Size()
}

// Each calls fn for every coordinate in the set
func (s CoordinateSet) Each(fn func(c Coordinate)) {
	s.set.Each(fn)
}

// Equal reports whether both sets hold the same coordinates
func (s CoordinateSet) Equal(other CoordinateSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	equal := true
	s.set.Each(func(c Coordinate) {
		if !other.Has(c) {
			equal = false
		}
	})
	return equal
}

// Sorted returns the members ordered by x, then y
func (s CoordinateSet) Sorted() []Coordinate {
	coords := make([]Coordinate, 0, s.Size())
	s.set.Each(func(c Coordinate) {
		coords = append(coords, c)
	})
	SortCoordinates(coords)
	return coords
}

// SortCoordinates orders coords in place by x, then y
func SortCoordinates(coords []Coordinate) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		return coords[i].Y < coords[j].Y
	})
}

// Bounds is the inclusive bounding box of a set of coordinates
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// BoundsOf returns the bounding box of coords, ok is false when coords is empty
func BoundsOf(coords []Coordinate) (b Bounds, ok bool) {
	for i, c := range coords {
		if i == 0 {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b, len(coords) > 0
}

// Width returns the number of columns the box spans
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows the box spans
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}
