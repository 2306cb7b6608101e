package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_Neighbors(t *testing.T) {
	neighbors := NewCell(0, 0).Neighbors()

	seen := make(map[Cell]struct{})
	for _, n := range neighbors {
		seen[n] = struct{}{}
	}

	assert.Len(t, seen, 8, "all 8 neighbors should be distinct")
	assert.NotContains(t, seen, NewCell(0, 0), "a cell is not its own neighbor")

	for _, n := range neighbors {
		assert.LessOrEqual(t, abs(n.X), 1)
		assert.LessOrEqual(t, abs(n.Y), 1)
	}
}

func TestCell_NeighborsNegativeCoordinates(t *testing.T) {
	neighbors := NewCell(-5, -9).Neighbors()

	assert.Contains(t, neighbors[:], NewCell(-6, -10))
	assert.Contains(t, neighbors[:], NewCell(-4, -8))
	assert.NotContains(t, neighbors[:], NewCell(-5, -9))
}

func TestCell_ValueEquality(t *testing.T) {
	m := map[Cell]struct{}{NewCell(3, 4): {}}

	_, ok := m[Cell{X: 3, Y: 4}]
	assert.True(t, ok, "cells with equal coordinates are the same map key")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
