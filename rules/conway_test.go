package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"live cell with 0 neighbors dies", 0, true, false},
		{"live cell with 1 neighbor dies", 1, true, false},
		{"live cell with 2 neighbors survives", 2, true, true},
		{"live cell with 3 neighbors survives", 3, true, true},
		{"live cell with 4 neighbors dies", 4, true, false},
		{"live cell with 8 neighbors dies", 8, true, false},
		{"dead cell with 2 neighbors stays dead", 2, false, false},
		{"dead cell with 3 neighbors is born", 3, false, true},
		{"dead cell with 4 neighbors stays dead", 4, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ApplyConwayRules(tt.neighbors, tt.alive))
		})
	}
}

func TestAliveCellRules_MarksSurvivorsInTarget(t *testing.T) {
	target := model.NewBoard()
	aliveRules := rules.NewAliveCellRules(target)

	aliveRules.HasTwoNeighbors(model.NewCell(1, 1))
	aliveRules.HasThreeNeighbors(model.NewCell(-2, 0))

	assert.True(t, target.Alive(model.NewCell(1, 1)))
	assert.True(t, target.Alive(model.NewCell(-2, 0)))
	assert.Equal(t, 2, target.Population())
}

func TestDeadCellRules_MarksBirthsInTarget(t *testing.T) {
	target := model.NewBoard()
	deadRules := rules.NewDeadCellRules(target)

	deadRules.HasThreeNeighbors(model.NewCell(4, 4))

	assert.True(t, target.Alive(model.NewCell(4, 4)))
	assert.Equal(t, 1, target.Population())
}

func TestRuleVariants_SatisfyTraversalContracts(t *testing.T) {
	target := model.NewBoard()

	// The live-cell traversal needs both capabilities; the fringe traversal
	// only the three-neighbor one.
	var _ model.NeighborHandler = rules.NewAliveCellRules(target)
	var _ model.ThreeNeighborHandler = rules.NewDeadCellRules(target)
}
