package core

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Display encoding of a cell for Cells(): the low two bits carry the
// CellType, the next two the CellBackground.
const (
	DisplayTypeMask        = 0x03
	DisplayBackgroundShift = 2
)

// Grid owns the cell matrix and keeps roles, overlays and their index sets
// consistent. It is the only type that mutates cells.
type Grid struct {
	rows, cols int

	types       []CellType
	backgrounds []CellBackground
	display     []uint8

	start, target       CellPosition
	hasStart, hasTarget bool

	walls   mapset.Set[CellPosition]
	visited mapset.Set[CellPosition]
	found   mapset.Set[CellPosition]

	clickMode ClickMode
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	total := rows * cols
	return &Grid{
		rows:        rows,
		cols:        cols,
		types:       make([]CellType, total),
		backgrounds: make([]CellBackground, total),
		display:     make([]uint8, total),
		walls:       mapset.New[CellPosition](),
		visited:     mapset.New[CellPosition](),
		found:       mapset.New[CellPosition](),
		clickMode:   AwaitStart,
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Index returns the row-major slice index for pos.
func (g *Grid) Index(pos CellPosition) int { return pos.Row*g.cols + pos.Col }

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Cell returns the state of the cell at pos. Out-of-bounds positions read as
// a default cell.
func (g *Grid) Cell(pos CellPosition) CellState {
	if !g.InBounds(pos) {
		return CellState{}
	}
	idx := g.Index(pos)
	return CellState{Type: g.types[idx], Background: g.backgrounds[idx]}
}

// Start returns the start cell, if one is set.
func (g *Grid) Start() (CellPosition, bool) { return g.start, g.hasStart }

// Target returns the target cell, if one is set.
func (g *Grid) Target() (CellPosition, bool) { return g.target, g.hasTarget }

// ClickMode reports what a plain click on a default cell assigns next.
func (g *Grid) ClickMode() ClickMode { return g.clickMode }

// IsWall reports whether pos holds a wall.
func (g *Grid) IsWall(pos CellPosition) bool { return g.walls.Has(pos) }

// Walls returns the wall positions in row-major order.
func (g *Grid) Walls() []CellPosition { return g.sorted(g.walls) }

// Visited returns the visited positions in row-major order.
func (g *Grid) Visited() []CellPosition { return g.sorted(g.visited) }

// Found returns the found positions in row-major order.
func (g *Grid) Found() []CellPosition { return g.sorted(g.found) }

// Cells exposes the display buffer, one encoded byte per cell.
func (g *Grid) Cells() []uint8 { return g.display }

// SetCellType assigns a role to the cell at pos, transferring Start and
// Target away from any previous holder and clearing overlays a wall or
// target may not carry.
func (g *Grid) SetCellType(pos CellPosition, t CellType) {
	defer g.updateClickMode()
	if !g.InBounds(pos) {
		return
	}
	idx := g.Index(pos)
	current := g.types[idx]
	if current == t {
		return
	}

	switch current {
	case CellDefault:
	case CellStart:
		g.hasStart = false
	case CellTarget:
		g.hasTarget = false
	case CellWall:
		g.walls.Remove(pos)
	default:
		panic(InvariantViolation{Msg: "cell " + pos.String() + " holds unknown type"})
	}

	switch t {
	case CellDefault:
	case CellStart:
		if g.hasStart {
			g.demote(g.start)
		}
		g.start, g.hasStart = pos, true
	case CellTarget:
		if g.hasTarget {
			g.demote(g.target)
		}
		g.target, g.hasTarget = pos, true
		if g.backgrounds[idx] == BackgroundVisited {
			g.setBackground(pos, BackgroundDefault)
		}
	case CellWall:
		g.walls.Put(pos)
		if g.backgrounds[idx] != BackgroundDefault {
			g.setBackground(pos, BackgroundDefault)
		}
	default:
		panic(InvariantViolation{Msg: "unknown cell type requested for " + pos.String()})
	}

	g.types[idx] = t
	g.refresh(idx)
}

// SetCellBackgroundState changes the overlay of the cell at pos. An overlay
// the cell's role forbids reverts the role to Default.
func (g *Grid) SetCellBackgroundState(pos CellPosition, bg CellBackground) {
	if !g.InBounds(pos) {
		return
	}
	idx := g.Index(pos)
	if g.backgrounds[idx] == bg {
		return
	}
	g.setBackground(pos, bg)

	switch g.types[idx] {
	case CellWall:
		if bg != BackgroundDefault {
			g.walls.Remove(pos)
			g.types[idx] = CellDefault
		}
	case CellTarget:
		if bg == BackgroundVisited {
			g.hasTarget = false
			g.types[idx] = CellDefault
		}
	case CellDefault, CellStart:
	default:
		panic(InvariantViolation{Msg: "cell " + pos.String() + " holds unknown type"})
	}
	g.refresh(idx)
	g.updateClickMode()
}

// ClearExploration resets every visited and found overlay to default.
func (g *Grid) ClearExploration() {
	for _, pos := range g.Visited() {
		g.SetCellBackgroundState(pos, BackgroundDefault)
	}
	for _, pos := range g.Found() {
		g.SetCellBackgroundState(pos, BackgroundDefault)
	}
}

// Clear replaces the state with a fresh grid of the same size.
func (g *Grid) Clear() {
	*g = *NewGrid(g.rows, g.cols)
}

// Clone returns a deep copy that shares no state with g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.types = slices.Clone(g.types)
	c.backgrounds = slices.Clone(g.backgrounds)
	c.display = slices.Clone(g.display)
	c.walls = cloneSet(g.walls)
	c.visited = cloneSet(g.visited)
	c.found = cloneSet(g.found)
	return &c
}

func (g *Grid) demote(pos CellPosition) {
	idx := g.Index(pos)
	g.types[idx] = CellDefault
	g.refresh(idx)
}

// setBackground moves pos between the overlay index sets without touching
// the cell type.
func (g *Grid) setBackground(pos CellPosition, bg CellBackground) {
	idx := g.Index(pos)
	switch g.backgrounds[idx] {
	case BackgroundDefault:
	case BackgroundVisited:
		g.visited.Remove(pos)
	case BackgroundFound:
		g.found.Remove(pos)
	default:
		panic(InvariantViolation{Msg: "cell " + pos.String() + " holds unknown background"})
	}
	switch bg {
	case BackgroundDefault:
	case BackgroundVisited:
		g.visited.Put(pos)
	case BackgroundFound:
		g.found.Put(pos)
	default:
		panic(InvariantViolation{Msg: "unknown background requested for " + pos.String()})
	}
	g.backgrounds[idx] = bg
	g.refresh(idx)
}

func (g *Grid) refresh(idx int) {
	g.display[idx] = uint8(g.types[idx])&DisplayTypeMask | uint8(g.backgrounds[idx])<<DisplayBackgroundShift
}

func (g *Grid) updateClickMode() {
	switch {
	case !g.hasStart:
		g.clickMode = AwaitStart
	case !g.hasTarget:
		g.clickMode = AwaitTarget
	default:
		g.clickMode = AwaitWall
	}
}

func (g *Grid) sorted(set mapset.Set[CellPosition]) []CellPosition {
	out := make([]CellPosition, 0, set.Size())
	set.Each(func(pos CellPosition) {
		out = append(out, pos)
	})
	slices.SortFunc(out, func(a, b CellPosition) int {
		return g.Index(a) - g.Index(b)
	})
	return out
}

func cloneSet(src mapset.Set[CellPosition]) mapset.Set[CellPosition] {
	dst := mapset.New[CellPosition]()
	src.Each(func(pos CellPosition) {
		dst.Put(pos)
	})
	return dst
}

// DecodeDisplay splits a Cells() byte back into its cell state.
func DecodeDisplay(v uint8) CellState {
	return CellState{
		Type:       CellType(v & DisplayTypeMask),
		Background: CellBackground(v >> DisplayBackgroundShift & DisplayTypeMask),
	}
}
