package core

import "fmt"

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// CellPosition addresses a single cell by row and column.
type CellPosition struct {
	Row int
	Col int
}

// Pos is shorthand for CellPosition{Row: row, Col: col}.
func Pos(row, col int) CellPosition { return CellPosition{Row: row, Col: col} }

func (p CellPosition) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// CellType is the role a cell plays on the grid.
type CellType uint8

const (
	CellDefault CellType = iota
	CellStart
	CellTarget
	CellWall
)

func (t CellType) String() string {
	switch t {
	case CellDefault:
		return "default"
	case CellStart:
		return "start"
	case CellTarget:
		return "target"
	case CellWall:
		return "wall"
	}
	panic(InvariantViolation{Msg: fmt.Sprintf("unknown cell type %d", uint8(t))})
}

// CellBackground is the exploration overlay of a cell.
type CellBackground uint8

const (
	BackgroundDefault CellBackground = iota
	BackgroundVisited
	BackgroundFound
)

func (b CellBackground) String() string {
	switch b {
	case BackgroundDefault:
		return "default"
	case BackgroundVisited:
		return "visited"
	case BackgroundFound:
		return "found"
	}
	panic(InvariantViolation{Msg: fmt.Sprintf("unknown cell background %d", uint8(b))})
}

// CellState pairs the role and the overlay of one cell.
type CellState struct {
	Type       CellType
	Background CellBackground
}

// ClickMode names the type a plain click on a default cell applies next.
type ClickMode uint8

const (
	AwaitStart ClickMode = iota
	AwaitTarget
	AwaitWall
)

// CellType returns the role a click in this mode assigns.
func (m ClickMode) CellType() CellType {
	switch m {
	case AwaitStart:
		return CellStart
	case AwaitTarget:
		return CellTarget
	case AwaitWall:
		return CellWall
	}
	panic(InvariantViolation{Msg: fmt.Sprintf("unknown click mode %d", uint8(m))})
}

func (m ClickMode) String() string { return "await " + m.CellType().String() }

// View is the read-only side of a grid handed to searches and generators.
type View interface {
	Size() Size
	Cell(pos CellPosition) CellState
	Start() (CellPosition, bool)
	Target() (CellPosition, bool)
}
