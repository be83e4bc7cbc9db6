package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"pathgrid/internal/core"
	"pathgrid/internal/search"
)

// MazeCorners picks the endpoints of a scenario on a grid holding a maze:
// the top-left and bottom-right corridor cells. Corridors run along odd rows
// and columns. When the grid is too small for the two to differ, the target
// falls back to the open interior cell nearest the bottom-right corner.
func MazeCorners(g *core.Grid) (start, target core.CellPosition, err error) {
	size := g.Size()
	start = core.Pos(1, 1)
	r, c := size.Rows-2, size.Cols-2
	if r%2 == 0 {
		r--
	}
	if c%2 == 0 {
		c--
	}
	if target = core.Pos(r, c); target != start {
		return start, target, nil
	}
	for r := size.Rows - 2; r >= 1; r-- {
		for c := size.Cols - 2; c >= 1; c-- {
			pos := core.Pos(r, c)
			if pos != start && !g.IsWall(pos) {
				return start, pos, nil
			}
		}
	}
	return start, start, fmt.Errorf("%w: no open cell for the target on a %dx%d grid", core.ErrPrecondition, size.Rows, size.Cols)
}

// ScenarioResult reports one maze-then-search run.
type ScenarioResult struct {
	Seed      int64
	Algorithm search.Algorithm
	Walls     int
	Visited   int
	Steps     int
	Found     bool
	Elapsed   time.Duration
}

// Scenario describes a headless run: a maze from Seed, then a search with
// Algorithm between the maze corners. Delay paces both phases.
type Scenario struct {
	Size      core.Size
	Seed      int64
	Algorithm search.Algorithm
	Delay     time.Duration
}

// RunScenario plays sc on a fresh controller and returns it with the
// outcome so callers can render the final grid.
func RunScenario(ctx context.Context, sc Scenario, log logrus.FieldLogger) (*Controller, ScenarioResult, error) {
	ctrl := NewController(sc.Size, sc.Algorithm, log)
	res := ScenarioResult{Seed: sc.Seed, Algorithm: sc.Algorithm}

	if err := ctrl.BuildMaze(ctx, sc.Seed, sc.Delay); err != nil {
		return ctrl, res, fmt.Errorf("app: scenario maze: %w", err)
	}
	res.Walls = len(ctrl.Grid().Walls())

	start, target, err := MazeCorners(ctrl.Grid())
	if err != nil {
		return ctrl, res, fmt.Errorf("app: scenario endpoints: %w", err)
	}
	ctrl.Grid().SetCellType(start, core.CellStart)
	ctrl.Grid().SetCellType(target, core.CellTarget)

	path, err := ctrl.Solve(ctx, sc.Delay)
	if last, ok := ctrl.LastResult(); ok && last.Kind == RunSearch {
		res.Visited = last.Visited
		res.Elapsed = last.Elapsed
	}
	if err != nil {
		return ctrl, res, fmt.Errorf("app: scenario search: %w", err)
	}
	res.Found = path != nil
	res.Steps = path.Steps()
	return ctrl, res, nil
}
