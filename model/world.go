package model

import (
	"crypto/md5"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/sheikhrachel/go-life/rules"
)

// World holds every live cell and maintains the neighbour graph between them
type World struct {
	cells      []*Cell
	index      map[Coordinate][]*Cell
	generation int
}

// Option configures the initial population of a World
type Option func(*worldOptions)

type worldOptions struct {
	cells       []*Cell
	coordinates []Coordinate
}

// WithCells seeds the world with pre-built cells
func WithCells(cells ...*Cell) Option {
	return func(o *worldOptions) {
		o.cells = append(o.cells, cells...)
	}
}

// WithCoordinates seeds the world with a new cell at each coordinate
func WithCoordinates(coords ...Coordinate) Option {
	return func(o *worldOptions) {
		o.coordinates = append(o.coordinates, coords...)
	}
}

// NewWorld creates a world. Seeded cells are added first, then seeded coordinates,
// so a coordinate already held by a seeded cell is skipped.
func NewWorld(opts ...Option) *World {
	var o worldOptions
	for _, opt := range opts {
		opt(&o)
	}

	w := &World{index: make(map[Coordinate][]*Cell)}
	for _, cell := range o.cells {
		w.AddCell(cell)
	}
	for _, c := range o.coordinates {
		w.NewCellAt(c.X, c.Y)
	}
	return w
}

// Name identifies the engine
func (w *World) Name() string {
	return "sparse"
}

// Cells returns a copy of the live cells in the order they were added
func (w *World) Cells() []*Cell {
	cells := make([]*Cell, len(w.cells))
	copy(cells, w.cells)
	return cells
}

// Population returns the number of live cells
func (w *World) Population() int {
	return len(w.cells)
}

// Generation returns the number of completed steps
func (w *World) Generation() int {
	return w.generation
}

// CellAt returns the live cell at (x, y), or nil
func (w *World) CellAt(x, y int) *Cell {
	if occupants := w.index[Coordinate{X: x, Y: y}]; len(occupants) > 0 {
		return occupants[0]
	}
	return nil
}

// Contains reports whether (x, y) is alive
func (w *World) Contains(x, y int) bool {
	return w.CellAt(x, y) != nil
}

// Coordinates returns the live coordinates ordered by x, then y
func (w *World) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(w.cells))
	for _, cell := range w.cells {
		coords = append(coords, cell.coordinate)
	}
	SortCoordinates(coords)
	return coords
}

// Bounds returns the bounding box of the live cells, ok is false for an empty world
func (w *World) Bounds() (Bounds, bool) {
	return BoundsOf(w.Coordinates())
}

// AddCell registers cell in the world and links it with every adjacent live cell.
// Occupancy is not checked here, see NewCellAt.
func (w *World) AddCell(cell *Cell) *Cell {
	if cell == nil {
		return nil
	}
	if w.index == nil {
		w.index = make(map[Coordinate][]*Cell)
	}
	cell.world = w

	for _, c := range cell.coordinate.Neighbours() {
		for _, existing := range w.index[c] {
			existing.Link(cell)
		}
	}

	w.cells = append(w.cells, cell)
	w.index[cell.coordinate] = append(w.index[cell.coordinate], cell)
	return cell
}

// NewCellAt creates a cell at (x, y) unless one is already alive there, in which case it returns nil
func (w *World) NewCellAt(x, y int) *Cell {
	if w.Contains(x, y) {
		return nil
	}
	return w.AddCell(NewCell(x, y))
}

// Step advances the world by one generation. Deaths and birth candidates are both
// decided from the graph as it stands on entry; deaths are applied before births.
func (w *World) Step() {
	var (
		dying     []*Cell
		influence = make(map[Coordinate]int)
	)
	for _, cell := range w.cells {
		if cell.Dying() {
			dying = append(dying, cell)
		}
		cell.InfluencedCoordinates().Each(func(c Coordinate) {
			influence[c]++
		})
	}

	births := make([]Coordinate, 0)
	for c, n := range influence {
		if rules.Born(n) {
			births = append(births, c)
		}
	}
	SortCoordinates(births)

	for _, cell := range dying {
		for _, n := range cell.Neighbours() {
			n.RemoveNeighbours(cell)
		}
	}
	w.removeCells(dying)

	for _, c := range births {
		w.NewCellAt(c.X, c.Y)
	}
	w.generation++
}

// removeCells drops dead cells from the live collection and detaches them from the world
func (w *World) removeCells(dead []*Cell) {
	if len(dead) == 0 {
		return
	}

	gone := make(map[*Cell]struct{}, len(dead))
	for _, cell := range dead {
		gone[cell] = struct{}{}
	}

	live := w.cells[:0]
	for _, cell := range w.cells {
		if _, ok := gone[cell]; !ok {
			live = append(live, cell)
		}
	}
	clear(w.cells[len(live):])
	w.cells = live

	for _, cell := range dead {
		w.unindex(cell)
		cell.neighbours = mapset.New[*Cell]()
		cell.world = nil
	}
}

func (w *World) unindex(cell *Cell) {
	occupants := w.index[cell.coordinate]
	for i, o := range occupants {
		if o == cell {
			occupants = append(occupants[:i], occupants[i+1:]...)
			break
		}
	}
	if len(occupants) == 0 {
		delete(w.index, cell.coordinate)
		return
	}
	w.index[cell.coordinate] = occupants
}

// Hash returns an MD5 digest of the live coordinate set
func (w *World) Hash() string {
	h := md5.New()
	for _, c := range w.Coordinates() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
