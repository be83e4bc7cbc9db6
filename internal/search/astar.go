package search

import "pathgrid/internal/core"

func init() {
	register(AStar, "astar", aStar)
}

// aStar runs the uniform-cost loop ranked by path length plus Manhattan
// distance to the target. Unlike Dijkstra it returns as soon as the target
// is discovered next to a finalized cell, so the target is never finalized
// or reported.
func aStar(b *board, yield func(core.CellPosition) bool) Path {
	f := newFrontier(b)
	f.reach(b.start, 0, -1)
	byEstimate := func(pos core.CellPosition) int { return f.dist[b.index(pos)] + b.manhattan(pos) }
	for {
		cur, ok := f.pop(byEstimate)
		if !ok {
			return nil
		}
		if !yield(cur) {
			return nil
		}
		from := b.index(cur)
		for _, n := range b.neighbors(cur) {
			if n == b.target {
				f.parent[b.index(n)] = from
				return b.walk(f.parent, n)
			}
		}
		f.relax(cur)
	}
}
