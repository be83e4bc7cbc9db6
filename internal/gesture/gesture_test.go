package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathgrid/internal/core"
)

// recorder wraps a grid and counts type changes per cell.
type recorder struct {
	*core.Grid
	changes map[core.CellPosition][]core.CellType
}

func newRecorder(rows, cols int) *recorder {
	return &recorder{Grid: core.NewGrid(rows, cols), changes: map[core.CellPosition][]core.CellType{}}
}

func (r *recorder) SetCellType(pos core.CellPosition, t core.CellType) {
	if r.Grid.Cell(pos).Type != t {
		r.changes[pos] = append(r.changes[pos], t)
	}
	r.Grid.SetCellType(pos, t)
}

func TestSweepPaintsEachCellOnce(t *testing.T) {
	g := newRecorder(8, 8)
	in := New(g)

	in.Down(core.Pos(4, 0))
	assert.Equal(t, PaintingWalls, in.State())
	for c := 1; c <= 5; c++ {
		in.Over(core.Pos(4, c))
	}
	for c := 4; c >= 0; c-- {
		in.Over(core.Pos(4, c))
	}
	for c := 0; c <= 5; c++ {
		pos := core.Pos(4, c)
		assert.Equal(t, core.CellWall, g.Cell(pos).Type, "%v", pos)
		assert.Equal(t, []core.CellType{core.CellWall}, g.changes[pos], "%v", pos)
	}

	in.Up(core.Pos(4, 0), true)
	assert.Equal(t, Idle, in.State())
	assert.False(t, in.Click(core.Pos(4, 0)), "closing click is swallowed")
	assert.Equal(t, core.CellWall, g.Cell(core.Pos(4, 0)).Type)
}

func TestOriginIsPaintedOnlyAfterLeaving(t *testing.T) {
	g := newRecorder(4, 4)
	in := New(g)
	in.Down(core.Pos(1, 1))
	in.Over(core.Pos(1, 1))
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(1, 1)).Type)

	in.Over(core.Pos(1, 2))
	assert.Equal(t, core.CellWall, g.Cell(core.Pos(1, 1)).Type)
	assert.Equal(t, core.CellWall, g.Cell(core.Pos(1, 2)).Type)
}

func TestStrokeStepsOverRoles(t *testing.T) {
	g := newRecorder(3, 5)
	g.Grid.SetCellType(core.Pos(1, 2), core.CellStart)
	g.Grid.SetCellType(core.Pos(1, 3), core.CellTarget)
	in := New(g)

	in.Down(core.Pos(1, 0))
	for c := 1; c < 5; c++ {
		in.Over(core.Pos(1, c))
	}
	in.Up(core.Pos(1, 4), true)

	assert.Equal(t, core.CellStart, g.Cell(core.Pos(1, 2)).Type)
	assert.Equal(t, core.CellTarget, g.Cell(core.Pos(1, 3)).Type)
	assert.Equal(t, []core.CellPosition{core.Pos(1, 0), core.Pos(1, 1), core.Pos(1, 4)}, g.Walls())
}

func TestPlainClickCyclesRoles(t *testing.T) {
	g := newRecorder(3, 3)
	in := New(g)

	for _, pos := range []core.CellPosition{core.Pos(0, 0), core.Pos(2, 2), core.Pos(1, 1)} {
		in.Down(pos)
		in.Up(pos, true)
		require.True(t, in.Click(pos))
	}
	assert.Equal(t, core.CellStart, g.Cell(core.Pos(0, 0)).Type)
	assert.Equal(t, core.CellTarget, g.Cell(core.Pos(2, 2)).Type)
	assert.Equal(t, core.CellWall, g.Cell(core.Pos(1, 1)).Type)

	in.Down(core.Pos(0, 0))
	assert.Equal(t, PressedOnStart, in.State())
	in.Up(core.Pos(0, 0), true)
	require.True(t, in.Click(core.Pos(0, 0)))
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(0, 0)).Type)
	assert.Equal(t, core.AwaitStart, g.ClickMode())
}

func TestDragMovesRoles(t *testing.T) {
	g := newRecorder(5, 5)
	g.Grid.SetCellType(core.Pos(0, 0), core.CellStart)
	g.Grid.SetCellType(core.Pos(4, 4), core.CellTarget)
	in := New(g)

	in.Down(core.Pos(0, 0))
	in.Over(core.Pos(0, 1))
	in.Up(core.Pos(2, 3), true)
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, core.Pos(2, 3), start)
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(0, 1)).Type, "role moves do not paint")

	in.Down(core.Pos(4, 4))
	assert.Equal(t, PressedOnTarget, in.State())
	in.Up(core.Pos(3, 0), true)
	target, ok := g.Target()
	require.True(t, ok)
	assert.Equal(t, core.Pos(3, 0), target)
}

func TestReleaseOutsideKeepsRole(t *testing.T) {
	g := newRecorder(3, 3)
	g.Grid.SetCellType(core.Pos(1, 1), core.CellStart)
	in := New(g)

	in.Down(core.Pos(1, 1))
	in.Up(core.Pos(0, 0), false)
	start, _ := g.Start()
	assert.Equal(t, core.Pos(1, 1), start)
	assert.Equal(t, Idle, in.State())
}

func TestSuppressionIsClearedByNextPress(t *testing.T) {
	g := newRecorder(4, 4)
	in := New(g)
	in.Down(core.Pos(0, 0))
	in.Over(core.Pos(0, 1))
	in.Over(core.Pos(0, 0))
	in.Up(core.Pos(0, 0), true)

	in.Down(core.Pos(3, 3))
	in.Up(core.Pos(3, 3), true)
	require.True(t, in.Click(core.Pos(3, 3)))
	assert.Equal(t, core.CellStart, g.Cell(core.Pos(3, 3)).Type)

	require.True(t, in.Click(core.Pos(0, 0)), "stale suppression must not leak")
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(0, 0)).Type)
}

func TestStrokeEndingElsewhereDoesNotSuppress(t *testing.T) {
	g := newRecorder(4, 4)
	in := New(g)
	in.Down(core.Pos(2, 0))
	in.Over(core.Pos(2, 1))
	in.Up(core.Pos(2, 1), true)
	require.True(t, in.Click(core.Pos(2, 1)))
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(2, 1)).Type)
}

func TestReturnOverRoleOnlyDoesNotSuppress(t *testing.T) {
	g := newRecorder(3, 3)
	g.Grid.SetCellType(core.Pos(1, 2), core.CellStart)
	in := New(g)

	in.Down(core.Pos(1, 1))
	in.Over(core.Pos(1, 2))
	assert.Equal(t, core.Pos(1, 2), in.Current())
	in.Over(core.Pos(1, 1))
	assert.Equal(t, core.Pos(1, 1), in.Current())
	in.Up(core.Pos(1, 1), true)
	assert.Equal(t, core.CellWall, g.Cell(core.Pos(1, 1)).Type)

	require.True(t, in.Click(core.Pos(1, 1)))
	assert.Equal(t, core.CellDefault, g.Cell(core.Pos(1, 1)).Type)
	assert.Equal(t, core.CellStart, g.Cell(core.Pos(1, 2)).Type)
}

func TestCancelKeepsPaintedCells(t *testing.T) {
	g := newRecorder(4, 4)
	in := New(g)
	in.Down(core.Pos(0, 0))
	in.Over(core.Pos(0, 1))
	in.Cancel()
	assert.Equal(t, Idle, in.State())
	in.Over(core.Pos(0, 2))
	assert.Equal(t, []core.CellPosition{core.Pos(0, 0), core.Pos(0, 1)}, g.Walls())
}

func TestDispatchThroughHitTester(t *testing.T) {
	g := newRecorder(4, 6)
	in := New(g)
	ht := ScaledHitTester{Size: g.Size(), Scale: 10, OffsetX: 5}

	in.Dispatch(ht, PointerEvent{Kind: PointerDown, X: 5, Y: 22})
	assert.Equal(t, core.Pos(2, 0), in.Origin())
	assert.True(t, in.Dispatch(ht, PointerEvent{Kind: PointerOver, X: 17, Y: 25}))
	assert.False(t, in.Dispatch(ht, PointerEvent{Kind: PointerOver, X: 19, Y: 21}), "same cell")
	assert.False(t, in.Dispatch(ht, PointerEvent{Kind: PointerOver, X: 500, Y: 21}), "off grid")
	in.Dispatch(ht, PointerEvent{Kind: PointerUp, X: 500, Y: 21})
	assert.Equal(t, Idle, in.State())
	assert.Equal(t, []core.CellPosition{core.Pos(2, 0), core.Pos(2, 1)}, g.Walls())

	assert.True(t, in.Dispatch(ht, PointerEvent{Kind: PointerClick, X: 40, Y: 0}))
	assert.Equal(t, core.CellStart, g.Cell(core.Pos(0, 3)).Type)
	assert.False(t, in.Dispatch(ht, PointerEvent{Kind: PointerDown, X: 0, Y: 0}))
	assert.Equal(t, Idle, in.State())
}

func TestScaledHitTester(t *testing.T) {
	ht := ScaledHitTester{Size: core.Size{Rows: 3, Cols: 4}, Scale: 8}
	cases := []struct {
		x, y int
		want core.CellPosition
		ok   bool
	}{
		{0, 0, core.Pos(0, 0), true},
		{31, 23, core.Pos(2, 3), true},
		{32, 0, core.CellPosition{}, false},
		{0, 24, core.CellPosition{}, false},
		{-1, 4, core.CellPosition{}, false},
	}
	for _, tc := range cases {
		got, ok := ht.CellAt(tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.x, tc.y)
	}
}
