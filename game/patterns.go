package game

import "math/rand"

// SeedGlider seeds a glider pattern with its top-left corner at (startX, startY)
func (g *Game) SeedGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				g.Seed(startX+x, startY+y)
			}
		}
	}
}

// SeedBlinker seeds a blinker oscillator pattern at (startX, startY)
func (g *Game) SeedBlinker(startX, startY int) {
	g.Seed(startX, startY)
	g.Seed(startX+1, startY)
	g.Seed(startX+2, startY)
}

// SeedRandom fills the width x height region anchored at the origin with
// random live cells at the given density
func (g *Game) SeedRandom(width, height int, density float64) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rand.Float64() < density {
				g.Seed(x, y)
			}
		}
	}
}

// InjectRandomLife adds some random cells within the region to break stagnation
func (g *Game) InjectRandomLife(width, height, count int) {
	for i := 0; i < count; i++ {
		g.Seed(rand.Intn(width), rand.Intn(height))
	}
}

// SeedInterestingPatterns clears the current generation and seeds gliders,
// blinkers, and random fill sized to the given viewport
func (g *Game) SeedInterestingPatterns(width, height int, density float64) {
	g.Reset()

	// Add some simple patterns
	if width >= 10 && height >= 10 {
		// Add some gliders
		g.SeedGlider(5, 5)
		if width >= 20 && height >= 15 {
			g.SeedGlider(width-8, 5)
		}

		// Add oscillators
		g.SeedBlinker(width/4, height/4)
		if width >= 30 {
			g.SeedBlinker(3*width/4, 3*height/4)
		}
	}

	// Add random life using configurable density
	g.SeedRandom(width, height, density)
}
