package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// historyWindow is the number of recent fingerprints kept for cycle detection
const historyWindow = 5

// fingerprintHistory tracks recent board fingerprints so the loop can spot
// static states and short cycles
type fingerprintHistory struct {
	entries []string
}

// Update adds a fingerprint to the history and maintains the window size
func (h *fingerprintHistory) Update(fingerprint string) {
	h.entries = append(h.entries, fingerprint)
	if len(h.entries) > historyWindow {
		h.entries = h.entries[1:]
	}
}

// IsStagnant checks if the board is stuck in a static state or a cycle of
// period up to 3
func (h *fingerprintHistory) IsStagnant(current string) bool {
	if len(h.entries) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.entries[len(h.entries)-i] == current {
			return true
		}
	}

	return false
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*game.Game,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	var g *game.Game
	if config.UseBoardPool {
		g = game.NewWithPool(model.NewBoardPool())
	} else {
		g = game.New()
	}
	g.SeedInterestingPatterns(config.Width, config.Height, config.RandomDensity)

	renderer := model.NewTerminalRenderer(config.Width, config.Height)
	stats := utils.NewStats()

	return g, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game.Game) {
	fmt.Printf("Features: Board Pool: %v | Board: unbounded\n", config.UseBoardPool)
	fmt.Printf("Viewport: %dx%d | Initial living cells: %d\n",
		config.Width, config.Height, g.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	g *game.Game,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *fingerprintHistory,
) (int, float64, string, bool) {
	livingCells := g.Population()

	// Density of the live-cell bounding box; an unbounded board has no
	// fixed area to measure against
	density := 0.0
	if size := g.BoundingBoxSize(); size > 0 {
		density = float64(livingCells) / float64(size) * 100
	}

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, g.BoundingBoxSize(), frameDuration)

	// Check for stagnation before recording the current fingerprint
	fingerprint := g.Fingerprint()
	isStagnant := history.IsStagnant(fingerprint)
	history.Update(fingerprint)

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, density, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config, g *game.Game) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	g.SeedInterestingPatterns(config.Width, config.Height, config.RandomDensity)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", g.Population())
	time.Sleep(2 * time.Second)
}
