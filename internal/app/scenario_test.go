package app

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathgrid/internal/core"
	"pathgrid/internal/search"
)

func TestMazeCorners(t *testing.T) {
	cases := []struct {
		size   core.Size
		target core.CellPosition
	}{
		{core.Size{Rows: 13, Cols: 23}, core.Pos(11, 21)},
		{core.Size{Rows: 12, Cols: 16}, core.Pos(9, 13)},
		{core.Size{Rows: 5, Cols: 8}, core.Pos(3, 5)},
	}
	for _, tc := range cases {
		start, target, err := MazeCorners(core.NewGrid(tc.size.Rows, tc.size.Cols))
		require.NoError(t, err, "%v", tc.size)
		assert.Equal(t, core.Pos(1, 1), start, "%v", tc.size)
		assert.Equal(t, tc.target, target, "%v", tc.size)
	}
}

// borderedGrid returns a rows x cols grid walled on its edge and at extra.
func borderedGrid(rows, cols int, extra ...core.CellPosition) *core.Grid {
	g := core.NewGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 || c == 0 || r == rows-1 || c == cols-1 {
				g.SetCellType(core.Pos(r, c), core.CellWall)
			}
		}
	}
	for _, pos := range extra {
		g.SetCellType(pos, core.CellWall)
	}
	return g
}

func TestMazeCornersFallBackOnSmallGrid(t *testing.T) {
	start, target, err := MazeCorners(borderedGrid(4, 4, core.Pos(2, 2)))
	require.NoError(t, err)
	assert.Equal(t, core.Pos(1, 1), start)
	assert.Equal(t, core.Pos(2, 1), target)

	_, _, err = MazeCorners(borderedGrid(4, 4, core.Pos(1, 2), core.Pos(2, 1), core.Pos(2, 2)))
	assert.ErrorIs(t, err, core.ErrPrecondition)
}

func TestRunScenarioSmallestMaze(t *testing.T) {
	for seed := int64(0); seed < 4; seed++ {
		log, _ := test.NewNullLogger()
		ctrl, res, err := RunScenario(context.Background(), Scenario{Size: core.Size{Rows: 4, Cols: 4}, Seed: seed, Algorithm: search.BFS}, log)
		require.NoError(t, err, "seed %d", seed)
		start, ok := ctrl.Grid().Start()
		require.True(t, ok)
		target, ok := ctrl.Grid().Target()
		require.True(t, ok)
		assert.NotEqual(t, start, target)
		assert.True(t, res.Found, "seed %d", seed)
		assert.Positive(t, res.Steps)
	}
}

func TestRunScenarioAllAlgorithms(t *testing.T) {
	size := core.Size{Rows: 15, Cols: 21}
	byAlg := map[search.Algorithm]ScenarioResult{}
	for _, alg := range search.Algorithms() {
		log, _ := test.NewNullLogger()
		ctrl, res, err := RunScenario(context.Background(), Scenario{Size: size, Seed: 9, Algorithm: alg}, log)
		require.NoError(t, err, alg.String())
		assert.False(t, ctrl.Busy())
		assert.True(t, res.Found, alg.String())
		assert.Positive(t, res.Visited, alg.String())
		assert.Len(t, ctrl.Grid().Found(), res.Steps+1, alg.String())
		byAlg[alg] = res
	}

	bfs := byAlg[search.BFS]
	assert.Equal(t, bfs.Steps, byAlg[search.Dijkstra].Steps)
	assert.GreaterOrEqual(t, byAlg[search.DFS].Steps, bfs.Steps)
	assert.GreaterOrEqual(t, byAlg[search.AStar].Steps, bfs.Steps)
	for alg, res := range byAlg {
		assert.Equal(t, bfs.Walls, res.Walls, "same seed, same maze for %v", alg)
	}
}

func TestRunScenarioTooSmall(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctrl, res, err := RunScenario(context.Background(), Scenario{Size: core.Size{Rows: 3, Cols: 9}, Algorithm: search.BFS}, log)
	require.ErrorIs(t, err, core.ErrPrecondition)
	assert.False(t, res.Found)
	assert.Empty(t, ctrl.Grid().Walls())
}

func TestRunScenarioCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log, hook := test.NewNullLogger()
	_, _, err := RunScenario(ctx, Scenario{Size: core.Size{Rows: 9, Cols: 9}, Algorithm: search.BFS}, log)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "run canceled", hook.LastEntry().Message)
}
