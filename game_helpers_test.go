package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height = 20, 10
	config.FrameRate = 0
	return config
}

func TestCentre(t *testing.T) {
	config := testConfig()

	coords := centre(patterns.Block.Coordinates, config)
	b, _ := model.BoundsOf(coords)
	if b != (model.Bounds{MinX: 9, MaxX: 10, MinY: 4, MaxY: 5}) {
		t.Fatalf("centred block bounds %+v", b)
	}
	if centre(nil, config) != nil {
		t.Fatal("centre invented cells")
	}
}

func TestSeedCoordinates(t *testing.T) {
	t.Run("named pattern", func(t *testing.T) {
		config := testConfig()
		config.Pattern = "glider"
		coords, err := seedCoordinates(config, patterns.NewRNG(1))
		if err != nil {
			t.Fatal(err)
		}
		if len(coords) != len(patterns.Glider.Coordinates) {
			t.Fatalf("got %d cells, want %d", len(coords), len(patterns.Glider.Coordinates))
		}
	})

	t.Run("random", func(t *testing.T) {
		config := testConfig()
		config.RandomDensity = 1
		coords, err := seedCoordinates(config, patterns.NewRNG(1))
		if err != nil {
			t.Fatal(err)
		}
		if len(coords) != config.Width*config.Height {
			t.Fatalf("got %d cells, want a full viewport", len(coords))
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blinker.txt")
		if err := os.WriteFile(path, []byte("---\n###\n---\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		config := testConfig()
		config.PatternFile = path
		coords, err := seedCoordinates(config, patterns.NewRNG(1))
		if err != nil {
			t.Fatal(err)
		}
		if len(coords) != 3 {
			t.Fatalf("got %v", coords)
		}
	})

	t.Run("unknown pattern", func(t *testing.T) {
		config := testConfig()
		config.Pattern = "nope"
		_, err := seedCoordinates(config, patterns.NewRNG(1))
		if errors.Cause(err) != patterns.ErrUnknownPattern {
			t.Fatalf("error = %v, want ErrUnknownPattern", err)
		}
	})
}

func TestNewSimulation(t *testing.T) {
	config := testConfig()
	coords := patterns.Block.Coordinates

	if sim := newSimulation(config, coords); sim.Name() != "sparse" || sim.Population() != 4 {
		t.Fatalf("sparse simulation: %s with %d cells", sim.Name(), sim.Population())
	}

	config.Engine = utils.EngineDense
	if sim := newSimulation(config, coords); sim.Name() != "dense" || sim.Population() != 4 {
		t.Fatalf("dense simulation: %s with %d cells", sim.Name(), sim.Population())
	}
}

func TestUpdateGameState(t *testing.T) {
	var (
		history model.History
		stats   = utils.NewStats()
		sim     = newSimulation(testConfig(), patterns.Block.Coordinates)
	)

	for generation := range 3 {
		living, status, stagnant := updateGameState(sim, &history, generation, time.Now(), stats)
		if living != 4 || status != "Active" || stagnant {
			t.Fatalf("generation %d: %d %q %v", generation, living, status, stagnant)
		}
		sim.Step()
	}

	_, status, stagnant := updateGameState(sim, &history, 3, time.Now(), stats)
	if !stagnant || status != "Stagnant (3)" {
		t.Fatalf("static block not detected: %q", status)
	}
	if stats.BoundingBoxSize != 4 {
		t.Fatalf("BoundingBoxSize = %d, want 4", stats.BoundingBoxSize)
	}

	empty := newSimulation(testConfig(), nil)
	if _, status, _ = updateGameState(empty, &history, 4, time.Now(), stats); status != "Extinct" {
		t.Fatalf("empty world status %q", status)
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()

	tests := []struct {
		living, stagnant int
		restart          bool
		reason           string
	}{
		{0, 0, true, "extinction"},
		{10, config.StagnationThreshold, true, "stagnation detected"},
		{10, config.StagnationThreshold - 1, false, ""},
	}
	for _, tt := range tests {
		restart, reason := checkRestartConditions(tt.living, tt.stagnant, config)
		if restart != tt.restart || reason != tt.reason {
			t.Errorf("checkRestartConditions(%d, %d) = %v, %q", tt.living, tt.stagnant, restart, reason)
		}
	}
}

func TestInjectRandomLife(t *testing.T) {
	config := testConfig()
	config.InjectionCount = 5

	world := model.NewWorld()
	if got := injectRandomLife(world, config, patterns.NewRNG(2)); got != world {
		t.Fatal("sparse world was replaced")
	}
	if world.Population() == 0 || world.Population() > 5 {
		t.Fatalf("Population() = %d", world.Population())
	}

	config.Engine = utils.EngineDense
	dense := newSimulation(config, patterns.Block.Coordinates)
	grown := injectRandomLife(dense, config, patterns.NewRNG(2))
	if grown.Name() != "dense" || grown.Population() < 4 {
		t.Fatalf("dense rebuild: %s with %d cells", grown.Name(), grown.Population())
	}
}

func TestApplyFlags(t *testing.T) {
	config := applyFlags(testConfig(), cliOptions{
		engine:   utils.EngineDense,
		pattern:  "toad",
		width:    33,
		interval: time.Second,
		maxSteps: 7,
		seed:     99,
		mono:     true,
	})
	if config.Engine != utils.EngineDense || config.Pattern != "toad" || config.Width != 33 {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.Height != 10 || config.FrameRate != time.Second || config.MaxGenerations != 7 {
		t.Fatalf("flags not applied: %+v", config)
	}
	if config.Seed != 99 || config.Color {
		t.Fatalf("flags not applied: %+v", config)
	}

	config = applyFlags(config, cliOptions{random: true, patternFile: "x.txt"})
	if config.Pattern != utils.PatternRandom || config.PatternFile != "" {
		t.Fatalf("random flag did not win: %+v", config)
	}
}
