package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// seedCoordinates resolves the starting population: a pattern file, a named
// pattern centred in the viewport, or a random soup
func seedCoordinates(config utils.Config, rng *rand.Rand) ([]model.Coordinate, error) {
	if config.PatternFile != "" {
		coords, err := patterns.LoadFile(config.PatternFile)
		if err != nil {
			return nil, errors.Wrap(err, "[seedCoordinates]")
		}
		return centre(coords, config), nil
	}

	if config.Pattern == "" || config.Pattern == utils.PatternRandom {
		return patterns.Random(rng, config.Width, config.Height, config.RandomDensity), nil
	}

	tmpl, err := patterns.Lookup(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[seedCoordinates]")
	}
	return centre(tmpl.Coordinates, config), nil
}

// centre moves coords so their bounding box sits in the middle of the viewport
func centre(coords []model.Coordinate, config utils.Config) []model.Coordinate {
	b, ok := model.BoundsOf(coords)
	if !ok {
		return coords
	}
	offset := model.Coordinate{
		X: (config.Width-b.Width())/2 - b.MinX,
		Y: (config.Height-b.Height())/2 - b.MinY,
	}
	return patterns.Translate(coords, offset)
}

// newSimulation builds the configured engine seeded with coords
func newSimulation(config utils.Config, coords []model.Coordinate) model.Simulation {
	if config.Engine == utils.EngineDense {
		return model.NewDenseSimulation(config, coords...)
	}
	return model.NewWorld(model.WithCoordinates(coords...))
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, rng *rand.Rand) (
	model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	coords, err := seedCoordinates(config, rng)
	if err != nil {
		return nil, nil, nil, err
	}

	sim := newSimulation(config, coords)
	renderer := model.NewTerminalRenderer(config.Color)
	stats := utils.NewStats()

	return sim, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim model.Simulation) {
	fmt.Printf("Engine: %s | Pattern: %s | Memory Pool: %v, Bounded: %v\n",
		sim.Name(), patternLabel(config), config.UseMemoryPool, config.UseBoundedGrid)
	fmt.Printf("Viewport: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, sim.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

func patternLabel(config utils.Config) string {
	if config.PatternFile != "" {
		return config.PatternFile
	}
	return config.Pattern
}

// updateGameState records the current generation and returns status information
func updateGameState(
	sim model.Simulation,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, string, bool) {
	livingCells := sim.Population()

	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)
	if b, ok := model.BoundsOf(sim.Coordinates()); ok {
		stats.BoundingBoxSize = b.Width() * b.Height()
	} else {
		stats.BoundingBoxSize = 0
	}

	hash := sim.Hash()
	isStagnant := history.IsStagnant(hash)
	history.Record(hash)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame seeds a fresh random soup on the configured engine
func restartGame(config utils.Config, rng *rand.Rand) model.Simulation {
	coords := patterns.Random(rng, config.Width, config.Height, config.RandomDensity)
	sim := newSimulation(config, coords)
	fmt.Printf("New soup loaded! Living cells: %d\n", sim.Population())
	return sim
}

// injectRandomLife adds scattered cells to break stagnation. Only the sparse
// engine can grow in place; the dense one is rebuilt around its current cells.
func injectRandomLife(sim model.Simulation, config utils.Config, rng *rand.Rand) model.Simulation {
	extra := patterns.Scatter(rng, config.Width, config.Height, config.InjectionCount)
	if world, ok := sim.(*model.World); ok {
		for _, c := range extra {
			world.NewCellAt(c.X, c.Y)
		}
		return world
	}
	return newSimulation(config, append(sim.Coordinates(), extra...))
}
