package model

// Cell identifies one position on the unbounded plane. Cells are value
// types: two cells with equal coordinates are the same cell, which lets a
// Cell serve directly as a map key.
type Cell struct {
	X int
	Y int
}

// NewCell creates a cell at the given coordinates
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Neighbors returns the 8 cells surrounding c. The plane has no edges, so
// no clipping happens; coordinates may be negative or arbitrarily large.
func (c Cell) Neighbors() [8]Cell {
	var (
		neighbors [8]Cell
		i         int
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			neighbors[i] = Cell{X: c.X + dx, Y: c.Y + dy}
			i++
		}
	}
	return neighbors
}
