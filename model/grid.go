package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Grid is the bounded dense variant: a fixed width x height board where
// everything outside the edges counts as dead
type Grid struct {
	width  int
	height int
	cells  [][]bool

	// Optional bounded grid optimization
	activeBounds struct {
		Bounds
		valid bool
	}
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.activeBounds.valid = false
}

// Set sets a cell to alive (true) or dead (false), coordinates off the grid are ignored
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
		g.activeBounds.valid = false
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountNeighborsOptimized counts living neighbors with optimized bounds checking
func (g *Grid) CountNeighborsOptimized(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.Bounds, g.activeBounds.valid = BoundsOf(g.Coordinates())
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return g.activeBounds.Width() * g.activeBounds.Height()
}

// NextGenerationParallel calculates the next generation, one worker per band of rows
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := pool.Get(g.width, g.height)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x]) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return next
}

// NextGenerationBounded calculates next generation only in active region
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}

	next := pool.Get(g.width, g.height)

	if !g.activeBounds.valid {
		return next
	}

	// Process only the active region + 1 margin
	minX := max(0, g.activeBounds.MinX-1)
	maxX := min(g.width-1, g.activeBounds.MaxX+1)
	minY := max(0, g.activeBounds.MinY-1)
	maxY := min(g.height-1, g.activeBounds.MaxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	next.calculateActiveBounds()
	return next
}

// NextGeneration calculates the next generation based on configuration
func (g *Grid) NextGeneration(config utils.Config, pool *GridPool) *Grid {
	if config.UseBoundedGrid {
		return g.NextGenerationBounded(pool)
	}
	return g.NextGenerationParallel(pool)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Coordinates returns the living cells ordered by x, then y
func (g *Grid) Coordinates() []Coordinate {
	var coords []Coordinate
	for x := range g.width {
		for y := range g.height {
			if g.cells[y][x] {
				coords = append(coords, Coordinate{X: x, Y: y})
			}
		}
	}
	return coords
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
