package model

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/sheikhrachel/go-life/rules"
)

// Cell is a live cell on the plane. It tracks the live cells directly around it,
// the edges are always kept mutual by Link.
type Cell struct {
	coordinate Coordinate
	neighbours mapset.Set[*Cell]
	world      *World
}

// NewCell creates a cell at (x, y) with no neighbours and no world
func NewCell(x, y int) *Cell {
	return &Cell{
		coordinate: Coordinate{X: x, Y: y},
		neighbours: mapset.New[*Cell](),
	}
}

// Coordinates returns the position of the cell
func (c *Cell) Coordinates() Coordinate {
	return c.coordinate
}

// X returns the column of the cell
func (c *Cell) X() int {
	return c.coordinate.X
}

// Y returns the row of the cell
func (c *Cell) Y() int {
	return c.coordinate.Y
}

// World returns the world the cell is registered in, or nil
func (c *Cell) World() *World {
	return c.world
}

// Neighbours returns a snapshot of the neighbouring live cells, in no particular order
func (c *Cell) Neighbours() []*Cell {
	neighbours := make([]*Cell, 0, c.neighbours.Size())
	c.neighbours.Each(func(n *Cell) {
		neighbours = append(neighbours, n)
	})
	return neighbours
}

// NeighbourCount returns the number of tracked neighbours
func (c *Cell) NeighbourCount() int {
	return c.neighbours.Size()
}

// HasNeighbour reports whether other is tracked as a neighbour
func (c *Cell) HasNeighbour(other *Cell) bool {
	return c.neighbours.Has(other)
}

// Link makes c and other neighbours of each other. Nothing happens when other is
// c itself, is not adjacent, or is already a neighbour. Reports whether an edge was added.
func (c *Cell) Link(other *Cell) bool {
	if other == nil || other == c {
		return false
	}
	if !c.coordinate.Adjacent(other.coordinate) || c.neighbours.Has(other) {
		return false
	}
	c.neighbours.Put(other)
	other.neighbours.Put(c)
	return true
}

// RemoveNeighbours drops cells from this cell's neighbour set only.
// The other side of each edge is left alone.
func (c *Cell) RemoveNeighbours(cells ...*Cell) {
	for _, other := range cells {
		c.neighbours.Remove(other)
	}
}

// InfluencedCoordinates returns the adjacent coordinates not held by a tracked neighbour
func (c *Cell) InfluencedCoordinates() CoordinateSet {
	influenced := NewCoordinateSet(c.coordinate.Neighbours()...)
	c.neighbours.Each(func(n *Cell) {
		influenced.Remove(n.coordinate)
	})
	return influenced
}

// Dying reports whether the cell dies in the next generation
func (c *Cell) Dying() bool {
	return rules.Dying(c.neighbours.Size())
}
