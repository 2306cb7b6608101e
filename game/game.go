package game

import (
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// CellDrawer is the rendering boundary: one DrawCell call per live cell per
// render, in arbitrary order
type CellDrawer interface {
	DrawCell(x, y int)
}

// Game drives the simulation. Its only state is the board holding the
// current generation; each tick builds the next generation into a fresh
// board and swaps it in, so a partially applied transition is never
// observable from outside.
type Game struct {
	board *model.Board
	pool  *model.BoardPool
}

// New creates a game with an empty starting generation
func New() *Game {
	return &Game{board: model.NewBoard()}
}

// NewWithPool creates a game that recycles generation boards through the
// given pool
func NewWithPool(pool *model.BoardPool) *Game {
	g := New()
	g.pool = pool
	return g
}

// Seed marks the cell at (x, y) alive in the current generation
func (g *Game) Seed(x, y int) {
	g.board.ComeAliveAt(model.NewCell(x, y))
}

// Alive reports whether the cell at (x, y) is live in the current generation
func (g *Game) Alive(x, y int) bool {
	return g.board.Alive(model.NewCell(x, y))
}

// Population returns the number of live cells in the current generation
func (g *Game) Population() int {
	return g.board.Population()
}

// BoundingBoxSize returns the area of the current live-cell bounding box
func (g *Game) BoundingBoxSize() int {
	return g.board.BoundingBoxSize()
}

// Fingerprint returns a deterministic hash of the current live set
func (g *Game) Fingerprint() string {
	return g.board.Fingerprint()
}

// Tick advances the simulation one generation. Live cells with two or three
// neighbors survive, fringe cells with exactly three neighbors are born,
// everything else stays out of the next generation.
func (g *Game) Tick() {
	next := g.nextBoard()

	g.board.ForEachLiveCellByNeighborCount(rules.NewAliveCellRules(next))
	g.board.ForEachFringeCellWithThreeNeighbors(rules.NewDeadCellRules(next))

	model.BoardToPool(g.board, g.pool)
	g.board = next
}

// Render notifies the drawer of every live cell in the current generation
func (g *Game) Render(device CellDrawer) {
	g.board.EachLiveCell(func(c model.Cell) {
		device.DrawCell(c.X, c.Y)
	})
}

// Reset clears the current generation back to empty
func (g *Game) Reset() {
	g.board.Reset()
}

func (g *Game) nextBoard() *model.Board {
	if g.pool != nil {
		return g.pool.Get()
	}
	return model.NewBoard()
}
