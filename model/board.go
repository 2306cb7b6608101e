package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"sort"
)

// ThreeNeighborHandler responds to a cell classified as having exactly
// three live neighbors.
type ThreeNeighborHandler interface {
	HasThreeNeighbors(c Cell)
}

/*
NeighborHandler extends ThreeNeighborHandler with a response to the
two-neighbor classification.

The live-cell traversal dispatches on both counts; the fringe traversal only
ever needs the narrower three-neighbor capability, because a dead cell with
two neighbors stays dead.
*/
type NeighborHandler interface {
	ThreeNeighborHandler
	HasTwoNeighbors(c Cell)
}

// CellVisitor receives each live cell once during iteration
type CellVisitor func(c Cell)

// Board holds the live cells of one generation as a sparse set over an
// unbounded plane. Dead cells are never stored; the ones that matter (the
// fringe) are derived on demand from the live set.
type Board struct {
	live map[Cell]struct{}
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		live: make(map[Cell]struct{}),
	}
}

// ComeAliveAt marks a cell alive. Marking an already-live cell is a no-op,
// so repeated seeding of the same coordinate is harmless.
func (b *Board) ComeAliveAt(c Cell) {
	b.live[c] = struct{}{}
}

// Reset clears all live cells, returning the board to empty
func (b *Board) Reset() {
	for c := range b.live {
		delete(b.live, c)
	}
}

// Alive reports whether the given cell is live in this generation
func (b *Board) Alive(c Cell) bool {
	_, ok := b.live[c]
	return ok
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.live)
}

// NeighborCount returns how many of the 8 cells surrounding c are live.
// Always in [0,8]; pure with respect to board state.
func (b *Board) NeighborCount(c Cell) (count int) {
	for _, n := range c.Neighbors() {
		if b.Alive(n) {
			count++
		}
	}
	return
}

// fringe computes the set of dead cells adjacent to at least one live cell.
// Built as the union of every live cell's neighbor set minus the live set,
// so a dead cell bordering several live cells appears exactly once.
func (b *Board) fringe() map[Cell]struct{} {
	fringe := make(map[Cell]struct{})
	for c := range b.live {
		for _, n := range c.Neighbors() {
			if !b.Alive(n) {
				fringe[n] = struct{}{}
			}
		}
	}
	return fringe
}

// ForEachLiveCellByNeighborCount visits every live cell once, classifies it
// by neighbor count, and dispatches counts of exactly 2 or 3 to the
// handler. Other counts get no dispatch; those cells simply die off when
// the next generation is built.
func (b *Board) ForEachLiveCellByNeighborCount(handler NeighborHandler) {
	for c := range b.live {
		switch b.NeighborCount(c) {
		case 2:
			handler.HasTwoNeighbors(c)
		case 3:
			handler.HasThreeNeighbors(c)
		}
	}
}

// ForEachFringeCellWithThreeNeighbors visits every fringe cell and
// dispatches the ones with exactly three live neighbors to the handler
func (b *Board) ForEachFringeCellWithThreeNeighbors(handler ThreeNeighborHandler) {
	for c := range b.fringe() {
		if b.NeighborCount(c) == 3 {
			handler.HasThreeNeighbors(c)
		}
	}
}

// EachLiveCell invokes the visitor once per live cell, in no particular
// order. Used for rendering.
func (b *Board) EachLiveCell(visit CellVisitor) {
	for c := range b.live {
		visit(c)
	}
}

// BoundingBox returns the smallest rectangle covering all live cells.
// ok is false when the board is empty.
func (b *Board) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	for c := range b.live {
		if !ok {
			minX, maxX = c.X, c.X
			minY, maxY = c.Y, c.Y
			ok = true
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return
}

// BoundingBoxSize returns the area of the live-cell bounding box
func (b *Board) BoundingBoxSize() int {
	minX, minY, maxX, maxY, ok := b.BoundingBox()
	if !ok {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// sortedLiveCells returns the live cells in row-major order, so callers
// that need reproducible iteration get the same sequence every time
func (b *Board) sortedLiveCells() []Cell {
	cells := make([]Cell, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Fingerprint returns an MD5 hash of the live set. Cells are fed to the
// hash in sorted order, so two boards with the same live set always produce
// the same fingerprint regardless of insertion order.
func (b *Board) Fingerprint() string {
	var (
		h   = md5.New()
		buf [8]byte
	)
	for _, c := range b.sortedLiveCells() {
		binary.LittleEndian.PutUint32(buf[:4], uint32(c.X))
		binary.LittleEndian.PutUint32(buf[4:], uint32(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
