package maze

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathgrid/internal/core"
	"pathgrid/internal/search"
)

type generated struct {
	grid      *core.Grid
	placed    []core.CellPosition
	divisions []Division
}

func generate(t *testing.T, rows, cols int, seed int64) generated {
	t.Helper()
	out := generated{grid: core.NewGrid(rows, cols)}
	err := Run(context.Background(), out.grid, core.NewRNG(seed), func(_ context.Context, pos core.CellPosition) error {
		out.placed = append(out.placed, pos)
		out.grid.SetCellType(pos, core.CellWall)
		return nil
	}, WithOnDivide(func(d Division) { out.divisions = append(out.divisions, d) }))
	require.NoError(t, err)
	return out
}

func TestBorderIsTracedClockwiseOnce(t *testing.T) {
	m := generate(t, 5, 6, 1)
	perimeter := 2*5 + 2*6 - 4
	require.GreaterOrEqual(t, len(m.placed), perimeter)

	border := m.placed[:perimeter]
	assert.Equal(t, core.Pos(0, 0), border[0])
	assert.Equal(t, core.Pos(0, 5), border[5])
	assert.Equal(t, core.Pos(4, 5), border[9])
	assert.Equal(t, core.Pos(4, 0), border[14])
	assert.Equal(t, core.Pos(1, 0), border[perimeter-1])
	for i := 1; i < perimeter; i++ {
		prev, cur := border[i-1], border[i]
		dr, dc := cur.Row-prev.Row, cur.Col-prev.Col
		assert.Equal(t, 1, dr*dr+dc*dc, "border step %v -> %v", prev, cur)
	}
}

func TestMazeDivisionsKeepOnePassage(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m := generate(t, 13, 23, seed)
		g := m.grid

		for c := 0; c < 23; c++ {
			require.True(t, g.IsWall(core.Pos(0, c)))
			require.True(t, g.IsWall(core.Pos(12, c)))
		}
		for r := 0; r < 13; r++ {
			require.True(t, g.IsWall(core.Pos(r, 0)))
			require.True(t, g.IsWall(core.Pos(r, 22)))
		}

		require.NotEmpty(t, m.divisions)
		for _, d := range m.divisions {
			openings := 0
			for _, pos := range d.Line {
				if !g.IsWall(pos) {
					openings++
					assert.Equal(t, d.Passage, pos)
				}
			}
			assert.Equal(t, 1, openings, "seed %d line through %v", seed, d.Passage)
			assert.Equal(t, 1, d.Passage.Row%2, "passage row on corridor lattice")
			assert.Equal(t, 1, d.Passage.Col%2, "passage column on corridor lattice")

			sides := []core.CellPosition{core.Pos(d.Passage.Row, d.Passage.Col-1), core.Pos(d.Passage.Row, d.Passage.Col+1)}
			if d.Horizontal {
				sides = []core.CellPosition{core.Pos(d.Passage.Row-1, d.Passage.Col), core.Pos(d.Passage.Row+1, d.Passage.Col)}
			}
			for _, s := range sides {
				assert.False(t, g.IsWall(s), "passage %v blocked at %v", d.Passage, s)
			}
		}
	}
}

func TestWallsArePlacedOnce(t *testing.T) {
	m := generate(t, 14, 17, 9)
	seen := map[core.CellPosition]bool{}
	for _, pos := range m.placed {
		require.False(t, seen[pos], "%v placed twice", pos)
		seen[pos] = true
	}
	assert.Len(t, m.grid.Walls(), len(m.placed))
}

func TestEveryCorridorIsReachable(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {13, 23}, {12, 16}, {9, 30}} {
		m := generate(t, dims[0], dims[1], int64(dims[0]*dims[1]))
		g := m.grid
		g.SetCellType(core.Pos(1, 1), core.CellStart)
		for r := 1; r < dims[0]-1; r++ {
			for c := 1; c < dims[1]-1; c++ {
				pos := core.Pos(r, c)
				if g.IsWall(pos) || pos == core.Pos(1, 1) {
					continue
				}
				probe := g.Clone()
				probe.SetCellType(pos, core.CellTarget)
				path, err := search.RunBFS(context.Background(), probe, nil)
				require.NoError(t, err)
				require.NotNil(t, path, "%dx%d: %v unreachable", dims[0], dims[1], pos)
			}
		}
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	a := generate(t, 15, 21, 77)
	b := generate(t, 15, 21, 77)
	assert.Equal(t, a.placed, b.placed)
}

func TestGridTooSmall(t *testing.T) {
	called := false
	err := Run(context.Background(), core.NewGrid(3, 10), core.NewRNG(1), func(context.Context, core.CellPosition) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrGridTooSmall)
	assert.ErrorIs(t, err, core.ErrPrecondition)
	assert.False(t, called)

	_, err = NewTrace(core.Size{Rows: 10, Cols: 3}, core.NewRNG(1))
	assert.ErrorIs(t, err, ErrGridTooSmall)
}

func TestTraceMatchesRun(t *testing.T) {
	want := generate(t, 11, 19, 5)

	tr, err := NewTrace(core.Size{Rows: 11, Cols: 19}, core.NewRNG(5))
	require.NoError(t, err)
	var got []core.CellPosition
	for pos := range tr.Walls() {
		got = append(got, pos)
	}
	assert.True(t, tr.Done())
	assert.Equal(t, want.placed, got)
	assert.Equal(t, len(got), tr.Placed())
}

func TestTraceStop(t *testing.T) {
	tr, err := NewTrace(core.Size{Rows: 11, Cols: 11}, core.NewRNG(2))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, ok := tr.Next()
		require.True(t, ok)
	}
	tr.Stop()
	_, ok := tr.Next()
	assert.False(t, ok)
	assert.Equal(t, 3, tr.Placed())
}

func TestRunAbortsOnPlacerError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	err := Run(context.Background(), core.NewGrid(9, 9), core.NewRNG(3), func(context.Context, core.CellPosition) error {
		n++
		if n == 10 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 10, n)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Run(ctx, core.NewGrid(9, 9), core.NewRNG(3), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
