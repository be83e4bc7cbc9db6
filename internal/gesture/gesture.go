// Package gesture turns raw pointer events over the grid into role moves,
// wall strokes and clicks.
package gesture

import (
	"github.com/zyedidia/generic/mapset"

	"pathgrid/internal/core"
)

// Grid is the part of the automaton the interpreter edits. *core.Grid
// satisfies it.
type Grid interface {
	Cell(pos core.CellPosition) core.CellState
	SetCellType(pos core.CellPosition, t core.CellType)
	ClickMode() core.ClickMode
}

// State is the interpreter's gesture phase.
type State uint8

const (
	Idle State = iota
	PressedOnStart
	PressedOnTarget
	PaintingWalls
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PressedOnStart:
		return "pressed-on-start"
	case PressedOnTarget:
		return "pressed-on-target"
	case PaintingWalls:
		return "painting-walls"
	default:
		return "unknown"
	}
}

// Interpreter tracks one pointer gesture at a time.
type Interpreter struct {
	grid  Grid
	state State

	origin  core.CellPosition
	current core.CellPosition
	touched mapset.Set[core.CellPosition]
	// left is set once a stroke has moved off its origin cell.
	left bool
	// painted counts cells other than the origin the stroke turned to walls.
	painted int

	suppress    core.CellPosition
	hasSuppress bool
}

// New returns an idle interpreter editing g.
func New(g Grid) *Interpreter {
	return &Interpreter{grid: g, touched: mapset.New[core.CellPosition]()}
}

// State returns the current gesture phase.
func (in *Interpreter) State() State { return in.state }

// Origin returns the cell the current gesture started on.
func (in *Interpreter) Origin() core.CellPosition { return in.origin }

// Current returns the last cell the pointer entered during a stroke.
func (in *Interpreter) Current() core.CellPosition { return in.current }

// Down starts a gesture on pos. Pressing a start or target cell arms a role
// move; any other cell starts a wall stroke.
func (in *Interpreter) Down(pos core.CellPosition) {
	in.hasSuppress = false
	in.origin, in.current = pos, pos
	switch in.grid.Cell(pos).Type {
	case core.CellStart:
		in.state = PressedOnStart
	case core.CellTarget:
		in.state = PressedOnTarget
	default:
		in.state = PaintingWalls
		in.touched = mapset.New[core.CellPosition]()
		in.touched.Put(pos)
		in.left, in.painted = false, 0
	}
}

// Over reports that the pointer entered pos while pressed. Only wall
// strokes react: each untouched cell is painted once, and leaving the
// origin for the first time paints the origin as well. Start and target
// cells are stepped over.
func (in *Interpreter) Over(pos core.CellPosition) {
	if in.state != PaintingWalls {
		return
	}
	in.current = pos
	if pos != in.origin && !in.left {
		in.left = true
		in.paint(in.origin)
	}
	if in.touched.Has(pos) {
		return
	}
	in.touched.Put(pos)
	if in.paint(pos) && pos != in.origin {
		in.painted++
	}
}

func (in *Interpreter) paint(pos core.CellPosition) bool {
	switch in.grid.Cell(pos).Type {
	case core.CellStart, core.CellTarget:
		return false
	}
	in.grid.SetCellType(pos, core.CellWall)
	return true
}

// Up ends the gesture at pos. inside is false when the pointer was released
// off the grid, which ends the gesture without moving a role.
func (in *Interpreter) Up(pos core.CellPosition, inside bool) {
	state := in.state
	in.state = Idle
	switch state {
	case PressedOnStart:
		if inside && pos != in.origin {
			in.grid.SetCellType(pos, core.CellStart)
		}
	case PressedOnTarget:
		if inside && pos != in.origin {
			in.grid.SetCellType(pos, core.CellTarget)
		}
	case PaintingWalls:
		if inside && pos == in.origin && in.painted > 0 {
			in.suppress, in.hasSuppress = pos, true
		}
	}
}

// Cancel abandons the gesture. Cells already painted stay painted.
func (in *Interpreter) Cancel() {
	in.state = Idle
}

// Click applies a plain click on pos: a non-default cell is reset to
// default, a default cell takes the type the grid is waiting for. It
// returns false when the click was swallowed because it closes a stroke
// that painted other cells and returned to its origin.
func (in *Interpreter) Click(pos core.CellPosition) bool {
	if in.hasSuppress {
		in.hasSuppress = false
		if pos == in.suppress {
			return false
		}
	}
	if in.grid.Cell(pos).Type != core.CellDefault {
		in.grid.SetCellType(pos, core.CellDefault)
		return true
	}
	in.grid.SetCellType(pos, in.grid.ClickMode().CellType())
	return true
}
