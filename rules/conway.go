package rules

import "github.com/sheikhrachel/go-life/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// AliveCellRules is the survival half of the Conway rule set. Bound to the
// next-generation board, it responds to a live cell classified with two or
// three neighbors by carrying that cell forward.
type AliveCellRules struct {
	target *model.Board
}

// NewAliveCellRules binds survival rules to a next-generation board
func NewAliveCellRules(target *model.Board) *AliveCellRules {
	return &AliveCellRules{target: target}
}

// HasTwoNeighbors marks the cell as surviving into the next generation
func (r *AliveCellRules) HasTwoNeighbors(c model.Cell) {
	r.target.ComeAliveAt(c)
}

// HasThreeNeighbors marks the cell as surviving into the next generation
func (r *AliveCellRules) HasThreeNeighbors(c model.Cell) {
	r.target.ComeAliveAt(c)
}

// DeadCellRules is the birth half of the Conway rule set. A dead cell comes
// alive only at exactly three neighbors, so this variant carries no
// two-neighbor capability at all.
type DeadCellRules struct {
	target *model.Board
}

// NewDeadCellRules binds birth rules to a next-generation board
func NewDeadCellRules(target *model.Board) *DeadCellRules {
	return &DeadCellRules{target: target}
}

// HasThreeNeighbors marks the cell as born into the next generation
func (r *DeadCellRules) HasThreeNeighbors(c model.Cell) {
	r.target.ComeAliveAt(c)
}
