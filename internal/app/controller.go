package app

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pathgrid/internal/core"
	"pathgrid/internal/gesture"
	"pathgrid/internal/maze"
	"pathgrid/internal/search"
)

// ErrBusy is returned when a run is requested while another is in flight.
var ErrBusy = errors.New("app: a run is already in progress")

// RunKind distinguishes searches from maze generation.
type RunKind string

const (
	RunSearch RunKind = "search"
	RunMaze   RunKind = "maze"
)

// ChangeKind names what a Step did to a cell.
type ChangeKind uint8

const (
	ChangeVisited ChangeKind = iota
	ChangeFound
	ChangeWall
)

// Change is one animated cell update.
type Change struct {
	Pos  core.CellPosition
	Kind ChangeKind
}

// Result summarizes a finished or cancelled run.
type Result struct {
	ID        uuid.UUID
	Kind      RunKind
	Algorithm search.Algorithm
	Visited   int
	Walls     int
	Path      search.Path
	Canceled  bool
	Elapsed   time.Duration
}

// Controller owns the grid and serializes everything that edits it: pointer
// gestures, animated searches and maze generation. At most one run is in
// flight; gestures are rejected while it lasts.
type Controller struct {
	grid     *core.Grid
	gestures *gesture.Interpreter
	log      logrus.FieldLogger
	algo     search.Algorithm
	now      func() time.Time

	searching *search.Trace
	building  *maze.Trace
	found     search.Path

	run     *Result
	started time.Time
	last    *Result
}

// NewController creates a controller over an empty grid of the given size.
func NewController(size core.Size, algo search.Algorithm, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	g := core.NewGrid(size.Rows, size.Cols)
	return &Controller{
		grid:     g,
		gestures: gesture.New(g),
		log:      log,
		algo:     algo,
		now:      time.Now,
	}
}

// Grid exposes the owned grid for reading.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Algorithm returns the strategy used by the next search.
func (c *Controller) Algorithm() search.Algorithm { return c.algo }

// SetAlgorithm selects the strategy for the next search.
func (c *Controller) SetAlgorithm(alg search.Algorithm) { c.algo = alg }

// Busy reports whether a run is in flight.
func (c *Controller) Busy() bool { return c.run != nil }

// CanVisualize reports whether a search could start now.
func (c *Controller) CanVisualize() bool {
	if c.Busy() {
		return false
	}
	_, _, err := core.RequireEndpoints(c.grid)
	return err == nil
}

// LastResult returns the most recently finished run.
func (c *Controller) LastResult() (Result, bool) {
	if c.last == nil {
		return Result{}, false
	}
	return *c.last, true
}

// Phase names what the controller is doing.
func (c *Controller) Phase() string {
	switch {
	case c.searching != nil:
		return "searching"
	case c.found != nil:
		return "tracing path"
	case c.building != nil:
		return "building maze"
	default:
		return "idle"
	}
}

// Visualize starts an animated search with the selected strategy. The
// exploration overlay of the previous search is cleared first.
func (c *Controller) Visualize() error {
	if c.Busy() {
		return ErrBusy
	}
	tr, err := search.NewTrace(c.algo, c.grid)
	if err != nil {
		return err
	}
	c.grid.ClearExploration()
	c.gestures.Cancel()
	c.searching = tr
	c.begin(RunSearch, tr.Algorithm())
	return nil
}

// GenerateMaze replaces the grid with an empty one and starts animating a
// maze seeded by seed.
func (c *Controller) GenerateMaze(seed int64) error {
	if c.Busy() {
		return ErrBusy
	}
	tr, err := maze.NewTrace(c.grid.Size(), core.NewRNG(seed))
	if err != nil {
		return err
	}
	c.grid.Clear()
	c.gestures.Cancel()
	c.building = tr
	c.begin(RunMaze, c.algo)
	return nil
}

// Step advances the current run by up to n cell updates and returns them.
// A search is followed by its path being marked found, one cell per step.
func (c *Controller) Step(n int) []Change {
	var out []Change
	for len(out) < n && c.run != nil {
		switch {
		case c.searching != nil:
			out = c.stepSearch(out, n)
		case c.found != nil:
			pos := c.found[0]
			c.found = c.found[1:]
			c.grid.SetCellBackgroundState(pos, core.BackgroundFound)
			out = append(out, Change{Pos: pos, Kind: ChangeFound})
			if len(c.found) == 0 {
				c.found = nil
				c.finish(false)
			}
		case c.building != nil:
			out = c.stepMaze(out, n)
		default:
			c.finish(false)
		}
	}
	return out
}

func (c *Controller) stepSearch(out []Change, n int) []Change {
	for pos := range c.searching.Visits() {
		if c.markVisited(pos) {
			out = append(out, Change{Pos: pos, Kind: ChangeVisited})
		}
		if len(out) >= n {
			break
		}
	}
	c.run.Visited = c.searching.VisitCount()
	if c.searching.Done() {
		c.endSearch()
	}
	return out
}

func (c *Controller) stepMaze(out []Change, n int) []Change {
	for pos := range c.building.Walls() {
		c.grid.SetCellType(pos, core.CellWall)
		out = append(out, Change{Pos: pos, Kind: ChangeWall})
		if len(out) >= n {
			break
		}
	}
	c.run.Walls = c.building.Placed()
	if c.building.Done() {
		c.building = nil
		c.finish(false)
	}
	return out
}

func (c *Controller) endSearch() {
	path, ok := c.searching.Path()
	c.searching = nil
	if !ok {
		c.finish(false)
		return
	}
	c.run.Path = path
	c.found = append(search.Path(nil), path...)
}

// markVisited paints pos visited unless it is the target, which would lose
// its role under the visited overlay.
func (c *Controller) markVisited(pos core.CellPosition) bool {
	if target, ok := c.grid.Target(); ok && target == pos {
		return false
	}
	c.grid.SetCellBackgroundState(pos, core.BackgroundVisited)
	return true
}

// Cancel abandons the run in flight, keeping whatever it already painted.
func (c *Controller) Cancel() {
	if c.run == nil {
		return
	}
	if c.searching != nil {
		c.searching.Stop()
		c.searching = nil
	}
	if c.building != nil {
		c.building.Stop()
		c.building = nil
	}
	c.found = nil
	c.finish(true)
}

// Clear cancels any run and resets the grid.
func (c *Controller) Clear() {
	c.Cancel()
	c.gestures.Cancel()
	c.grid.Clear()
}

// Pointer feeds a raw pointer event to the gesture interpreter. Events are
// dropped while a run is in flight. It reports whether the grid may have
// changed.
func (c *Controller) Pointer(ht gesture.HitTester, ev gesture.PointerEvent) bool {
	if c.Busy() {
		return false
	}
	return c.gestures.Dispatch(ht, ev)
}

// Gestures exposes the interpreter state for display.
func (c *Controller) Gestures() *gesture.Interpreter { return c.gestures }

// Solve runs the selected search to completion, pausing delay after each
// visited cell, then marks the path found. It blocks until done or ctx is
// cancelled.
func (c *Controller) Solve(ctx context.Context, delay time.Duration) (search.Path, error) {
	if c.Busy() {
		return nil, ErrBusy
	}
	snapshot := c.grid.Clone()
	if _, _, err := core.RequireEndpoints(snapshot); err != nil {
		return nil, err
	}
	c.grid.ClearExploration()
	c.begin(RunSearch, c.algo)
	path, err := search.Run(ctx, c.algo, snapshot, func(ctx context.Context, pos core.CellPosition) error {
		c.run.Visited++
		c.markVisited(pos)
		c.log.WithField("cell", pos.String()).Debug("visit")
		return core.Sleep(ctx, delay)
	})
	if err != nil {
		c.finish(true)
		return nil, err
	}
	for _, pos := range path {
		c.grid.SetCellBackgroundState(pos, core.BackgroundFound)
	}
	c.run.Path = path
	c.finish(false)
	return path, nil
}

// BuildMaze clears the grid and generates a maze in one go, pausing delay
// after each wall.
func (c *Controller) BuildMaze(ctx context.Context, seed int64, delay time.Duration) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := maze.CheckSize(c.grid.Size()); err != nil {
		return err
	}
	c.grid.Clear()
	c.begin(RunMaze, c.algo)
	err := maze.Run(ctx, c.grid, core.NewRNG(seed), func(ctx context.Context, pos core.CellPosition) error {
		c.run.Walls++
		c.grid.SetCellType(pos, core.CellWall)
		return core.Sleep(ctx, delay)
	}, maze.WithOnDivide(func(d maze.Division) {
		c.log.WithFields(logrus.Fields{
			"passage":    d.Passage.String(),
			"horizontal": d.Horizontal,
			"length":     len(d.Line),
		}).Debug("divide")
	}))
	c.finish(err != nil)
	return err
}

func (c *Controller) begin(kind RunKind, alg search.Algorithm) {
	c.run = &Result{ID: uuid.New(), Kind: kind, Algorithm: alg}
	c.started = c.now()
	c.runLog(c.run).Info("run started")
}

func (c *Controller) finish(canceled bool) {
	r := c.run
	if r == nil {
		return
	}
	r.Canceled = canceled
	r.Elapsed = c.now().Sub(c.started)
	c.run, c.last = nil, r

	entry := c.runLog(r).WithField("elapsed", r.Elapsed)
	if r.Kind == RunSearch {
		entry = entry.WithFields(logrus.Fields{"visited": r.Visited, "path": r.Path.Steps(), "found": r.Path != nil})
	} else {
		entry = entry.WithField("walls", r.Walls)
	}
	if canceled {
		entry.Warn("run canceled")
		return
	}
	entry.Info("run finished")
}

func (c *Controller) runLog(r *Result) *logrus.Entry {
	fields := logrus.Fields{"run": r.ID.String(), "kind": string(r.Kind)}
	if r.Kind == RunSearch {
		fields["algo"] = r.Algorithm.String()
	}
	return c.log.WithFields(fields)
}

// Parameters reports the current run and grid state for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.grid.Size()
	visited, path := "-", "-"
	if c.run != nil {
		visited = strconv.Itoa(c.run.Visited)
	} else if c.last != nil && c.last.Kind == RunSearch {
		visited = strconv.Itoa(c.last.Visited)
		switch {
		case c.last.Path != nil:
			path = strconv.Itoa(c.last.Path.Steps())
		case !c.last.Canceled:
			path = "none"
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{
			{Key: "algo", Label: "Algorithm", Type: core.ParamTypeText, Value: c.algo.String()},
			{Key: "phase", Label: "Phase", Type: core.ParamTypeText, Value: c.Phase()},
			{Key: "visited", Label: "Visited", Type: core.ParamTypeInt, Value: visited},
			{Key: "path", Label: "Path", Type: core.ParamTypeInt, Value: path},
		}},
		{Name: "Grid", Params: []core.Parameter{
			{Key: "size", Label: "Size", Type: core.ParamTypeText, Value: strconv.Itoa(size.Rows) + "x" + strconv.Itoa(size.Cols)},
			{Key: "walls", Label: "Walls", Type: core.ParamTypeInt, Value: strconv.Itoa(len(c.grid.Walls()))},
			{Key: "click", Label: "Click", Type: core.ParamTypeText, Value: c.grid.ClickMode().String()},
		}},
	}}
}
