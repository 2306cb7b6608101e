package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering over a fixed
// viewport of the unbounded plane, anchored at the origin. It receives one
// DrawCell call per live cell and buffers them until the next Display.
type TerminalRenderer struct {
	width  int
	height int
	frame  map[Cell]struct{}
}

// NewTerminalRenderer creates a renderer with the given viewport dimensions
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		width:  width,
		height: height,
		frame:  make(map[Cell]struct{}),
	}
}

// DrawCell records a live cell for the current frame. Cells outside the
// viewport are accepted and simply never shown.
func (r *TerminalRenderer) DrawCell(x, y int) {
	r.frame[Cell{X: x, Y: y}] = struct{}{}
}

// Display renders the buffered frame to the terminal and starts a new one
func (r *TerminalRenderer) Display() {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if _, ok := r.frame[Cell{X: x, Y: y}]; ok {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
	r.frame = make(map[Cell]struct{})
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	var cmd *exec.Cmd
	cmd = exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
