package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - a missing config.json degrades to defaults with
	// environment overrides already applied
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
	}

	// Initialize game
	g, renderer, stats := initializeGame(config)
	displayGameInfo(config, g)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runGameLoop(ctx, config, g, renderer, stats)
	})

	if err := eg.Wait(); err != nil {
		fmt.Printf("Game loop error: %v\n", err)
	}

	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runGameLoop drives the simulation until the context is canceled or the
// generation limit is reached
func runGameLoop(
	ctx context.Context,
	config utils.Config,
	g *game.Game,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		history        = &fingerprintHistory{}
	)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case frameStart := <-ticker.C:
			renderer.Clear()

			// Update game state
			livingCells, density, status, isStagnant := updateGameState(g, generation, lastFrameTime, stats, history)
			lastFrameTime = frameStart

			// Update stagnation counter
			if isStagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			// Display current status
			displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
			g.Render(renderer)
			renderer.Display()

			// Check for max generations limit
			if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return nil
			}

			// Check restart conditions
			shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

			if shouldRestart && config.AutoRestart {
				fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

				restartGame(config, g)
				lastRestartGen = generation
				stagnantCount = 0
				history = &fingerprintHistory{}
			} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
				// Inject some life to try to break the stagnation
				g.InjectRandomLife(config.Width, config.Height, config.InjectionCount)
			}

			// Calculate next generation
			g.Tick()
			generation++
		}
	}
}
