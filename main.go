package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigFile = "config.json"

// cliOptions holds the command line overrides; zero values leave the config untouched
type cliOptions struct {
	configFile  string
	engine      string
	pattern     string
	patternFile string
	width       int
	height      int
	interval    time.Duration
	maxSteps    int
	seed        int64
	random      bool
	mono        bool
}

func main() {
	opts := parseFlags()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configFile)
	if err != nil {
		if errors.Cause(err) == utils.ErrInvalidConfig {
			fmt.Printf("Invalid configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", opts.configFile)
		config = utils.DefaultConfig()
	}
	config = applyFlags(config, opts)
	if err = config.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	rng := patterns.NewRNG(config.Seed)

	// Initialize game
	sim, renderer, stats, err := initializeGame(config, rng)
	if err != nil {
		fmt.Printf("Failed to seed the simulation: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history        model.History
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, status, isStagnant := updateGameState(sim, &history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, status, stats, lastRestartGen)
		renderer.Display(sim)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)
		switch {
		case shouldRestart && config.AutoRestart:
			fmt.Printf("Restarting due to %s...\n", restartReason)
			sim = restartGame(config, rng)
			history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		case shouldRestart:
			fmt.Printf("\nStopped: %s\n", restartReason)
			return
		case stagnantCount >= 2:
			// Inject some life to try to break the stagnation
			sim = injectRandomLife(sim, config, rng)
		}

		sim.Step()
		generation++

		time.Sleep(config.FrameRate)
	}
}

func parseFlags() cliOptions {
	opts := cliOptions{configFile: defaultConfigFile}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on an unbounded plane")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configFile, "c", "config", "Path to the JSON configuration file")
	flaggy.String(&opts.engine, "e", "engine", "Engine to use ["+utils.EngineSparse+"|"+utils.EngineDense+"]")
	flaggy.String(&opts.pattern, "p", "pattern", "Starting pattern ["+strings.Join(append(patterns.Names(), utils.PatternRandom), "|")+"]")
	flaggy.String(&opts.patternFile, "f", "file", "Load the starting pattern from a text grid file")
	flaggy.Int(&opts.width, "x", "width", "Width of the viewport (and of the dense grid)")
	flaggy.Int(&opts.height, "y", "height", "Height of the viewport (and of the dense grid)")
	flaggy.Duration(&opts.interval, "i", "interval", "Interval between the steps, for example 150ms")
	flaggy.Int(&opts.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations")
	flaggy.Int64(&opts.seed, "", "seed", "Seed for random soups")
	flaggy.Bool(&opts.random, "r", "random", "Settle with random data")
	flaggy.Bool(&opts.mono, "m", "mono", "Disable colored output")

	flaggy.Parse()
	return opts
}

func applyFlags(config utils.Config, opts cliOptions) utils.Config {
	if opts.engine != "" {
		config.Engine = opts.engine
	}
	if opts.pattern != "" {
		config.Pattern = opts.pattern
	}
	if opts.patternFile != "" {
		config.PatternFile = opts.patternFile
	}
	if opts.random {
		config.Pattern = utils.PatternRandom
		config.PatternFile = ""
	}
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.interval > 0 {
		config.FrameRate = opts.interval
	}
	if opts.maxSteps > 0 {
		config.MaxGenerations = opts.maxSteps
	}
	if opts.seed != 0 {
		config.Seed = opts.seed
	}
	if opts.mono {
		config.Color = false
	}
	return config
}
