package model

import "github.com/sheikhrachel/go-life/utils"

// Simulation is what the driver runs: either the sparse World or a DenseSimulation
type Simulation interface {
	Name() string
	Step()
	Population() int
	Coordinates() []Coordinate
	String() string
	Hash() string
}

var (
	_ Simulation = (*World)(nil)
	_ Simulation = (*DenseSimulation)(nil)
)

// DenseSimulation runs the bounded Grid variant, swapping grids every generation
type DenseSimulation struct {
	grid   *Grid
	pool   *GridPool
	config utils.Config
}

// NewDenseSimulation creates a config.Width x config.Height grid seeded with coords.
// Coordinates outside the grid are dropped.
func NewDenseSimulation(config utils.Config, coords ...Coordinate) *DenseSimulation {
	var pool *GridPool
	if config.UseMemoryPool {
		pool = NewGridPool()
	}

	grid := pool.Get(config.Width, config.Height)
	for _, c := range coords {
		grid.Set(c.X, c.Y, true)
	}
	return &DenseSimulation{grid: grid, pool: pool, config: config}
}

func (d *DenseSimulation) Name() string {
	return "dense"
}

// Grid exposes the current board
func (d *DenseSimulation) Grid() *Grid {
	return d.grid
}

// Step replaces the board with its next generation and recycles the old one
func (d *DenseSimulation) Step() {
	next := d.grid.NextGeneration(d.config, d.pool)
	GridToPool(d.grid, d.pool)
	d.grid = next
}

func (d *DenseSimulation) Population() int {
	return d.grid.CountLivingCells()
}

func (d *DenseSimulation) Coordinates() []Coordinate {
	return d.grid.Coordinates()
}

func (d *DenseSimulation) String() string {
	return d.grid.String()
}

func (d *DenseSimulation) Hash() string {
	return d.grid.GetGridHash()
}
