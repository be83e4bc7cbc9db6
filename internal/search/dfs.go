package search

import (
	"github.com/zyedidia/generic/mapset"

	"pathgrid/internal/core"
)

func init() {
	register(DFS, "dfs", depthFirst)
}

type dfsFrame struct {
	pos  core.CellPosition
	adj  []core.CellPosition
	next int
}

// depthFirst follows the first unvisited neighbour as deep as it can and
// backtracks on dead ends. It reports cells in pre-order and returns the
// first path that reaches the target, which need not be the shortest.
//
// An explicit stack replaces recursion; the stack frames are the current
// path.
func depthFirst(b *board, yield func(core.CellPosition) bool) Path {
	visited := mapset.New[core.CellPosition]()
	visited.Put(b.start)
	if !yield(b.start) {
		return nil
	}
	stack := []dfsFrame{{pos: b.start, adj: b.neighbors(b.start)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.adj) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.adj[top.next]
		top.next++
		if visited.Has(n) {
			continue
		}
		if n == b.target {
			path := make(Path, 0, len(stack)+1)
			for _, f := range stack {
				path = append(path, f.pos)
			}
			return append(path, n)
		}
		visited.Put(n)
		if !yield(n) {
			return nil
		}
		stack = append(stack, dfsFrame{pos: n, adj: b.neighbors(n)})
	}
	return nil
}
