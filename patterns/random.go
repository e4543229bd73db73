package patterns

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-life/model"
)

// NewRNG creates a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Random returns a soup of live coordinates inside the width x height box at the
// origin, each coordinate alive with probability density
func Random(rng *rand.Rand, width, height int, density float64) []model.Coordinate {
	var coords []model.Coordinate
	for x := range width {
		for y := range height {
			if rng.Float64() < density {
				coords = append(coords, model.Coordinate{X: x, Y: y})
			}
		}
	}
	return coords
}

// Scatter picks count coordinates uniformly inside the width x height box, duplicates allowed
func Scatter(rng *rand.Rand, width, height, count int) []model.Coordinate {
	if width <= 0 || height <= 0 {
		return nil
	}
	coords := make([]model.Coordinate, 0, count)
	for range count {
		coords = append(coords, model.Coordinate{X: rng.IntN(width), Y: rng.IntN(height)})
	}
	return coords
}
