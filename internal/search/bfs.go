package search

import (
	"github.com/zyedidia/generic/mapset"

	"pathgrid/internal/core"
)

func init() {
	register(BFS, "bfs", breadthFirst)
}

// breadthFirst expands cells in FIFO order. A neighbour is marked visited and
// reported when it is enqueued; the search ends as soon as the target shows
// up as a neighbour, so the target itself is never reported.
func breadthFirst(b *board, yield func(core.CellPosition) bool) Path {
	visited := mapset.New[core.CellPosition]()
	visited.Put(b.start)
	parent := b.newParents()

	queue := []core.CellPosition{b.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.neighbors(cur) {
			if visited.Has(n) {
				continue
			}
			parent[b.index(n)] = b.index(cur)
			if n == b.target {
				return b.walk(parent, n)
			}
			visited.Put(n)
			if !yield(n) {
				return nil
			}
			queue = append(queue, n)
		}
	}
	return nil
}
