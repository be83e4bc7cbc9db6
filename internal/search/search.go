// Package search implements the path-finding strategies animated on the
// grid: breadth-first, depth-first, Dijkstra and A*.
//
// Every strategy reads a core.View snapshot, treats the four orthogonal
// non-wall neighbours of a cell as unit-cost edges and reports each cell it
// visits, in order, before continuing. Strategies can be driven in push mode
// (Run, with a Visitor callback) or pulled one visit at a time (NewTrace).
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pathgrid/internal/core"
)

// Algorithm selects a search strategy.
type Algorithm uint8

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

// Path is an ordered run of cells from start to target inclusive. A nil
// Path means the target is unreachable.
type Path []core.CellPosition

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Visitor is notified of every visited cell. The search does not proceed
// until it returns; a non-nil error aborts the search.
type Visitor func(ctx context.Context, pos core.CellPosition) error

// finder runs one strategy. yield reports a visited cell and returns false
// when the caller wants the search abandoned, in which case finder returns
// nil without further visits.
type finder func(b *board, yield func(core.CellPosition) bool) Path

type strategy struct {
	name string
	find finder
}

var strategies = map[Algorithm]strategy{}

func register(alg Algorithm, name string, f finder) {
	strategies[alg] = strategy{name: name, find: f}
}

func (a Algorithm) String() string {
	if s, ok := strategies[a]; ok {
		return s.name
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// Algorithms lists the registered strategies in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(strategies))
	for alg := range strategies {
		out = append(out, alg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseAlgorithm resolves a strategy by name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for alg, s := range strategies {
		if strings.EqualFold(s.name, name) {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("search: unknown algorithm %q", name)
}

func lookup(alg Algorithm) (finder, error) {
	s, ok := strategies[alg]
	if !ok {
		return nil, fmt.Errorf("search: unknown algorithm %d", uint8(alg))
	}
	return s.find, nil
}

// Run executes alg over v, notifying visit for every visited cell. It fails
// with a core.ErrPrecondition error before visiting anything when v lacks a
// start or target cell, and stops early when ctx is done or visit errors.
func Run(ctx context.Context, alg Algorithm, v core.View, visit Visitor) (Path, error) {
	find, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	b, err := newBoard(v)
	if err != nil {
		return nil, err
	}
	var runErr error
	path := find(b, func(pos core.CellPosition) bool {
		if err := ctx.Err(); err != nil {
			runErr = err
			return false
		}
		if visit == nil {
			return true
		}
		if err := visit(ctx, pos); err != nil {
			runErr = fmt.Errorf("search: %s visitor at %v: %w", alg, pos, err)
			return false
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	return path, nil
}

// RunBFS runs breadth-first search over v.
func RunBFS(ctx context.Context, v core.View, visit Visitor) (Path, error) {
	return Run(ctx, BFS, v, visit)
}

// RunDFS runs depth-first search over v.
func RunDFS(ctx context.Context, v core.View, visit Visitor) (Path, error) {
	return Run(ctx, DFS, v, visit)
}

// RunDijkstra runs uniform-cost search over v.
func RunDijkstra(ctx context.Context, v core.View, visit Visitor) (Path, error) {
	return Run(ctx, Dijkstra, v, visit)
}

// RunAStar runs A* with a Manhattan heuristic over v.
func RunAStar(ctx context.Context, v core.View, visit Visitor) (Path, error) {
	return Run(ctx, AStar, v, visit)
}
