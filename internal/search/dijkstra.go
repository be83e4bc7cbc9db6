package search

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"pathgrid/internal/core"
)

func init() {
	register(Dijkstra, "dijkstra", uniformCost)
}

// frontier tracks reached cells in the order they were first encountered
// together with their best known path length. Selection is a linear scan so
// ties resolve to the earliest encountered cell.
type frontier struct {
	b      *board
	order  []core.CellPosition
	dist   []int
	parent []int
	closed mapset.Set[core.CellPosition]
}

func newFrontier(b *board) *frontier {
	dist := make([]int, b.size())
	for i := range dist {
		dist[i] = math.MaxInt
	}
	return &frontier{
		b:      b,
		dist:   dist,
		parent: b.newParents(),
		closed: mapset.New[core.CellPosition](),
	}
}

// reach records a path of length d to pos via from (-1 for the start) when
// it is strictly shorter than the best known one.
func (f *frontier) reach(pos core.CellPosition, d, from int) {
	idx := f.b.index(pos)
	if d >= f.dist[idx] {
		return
	}
	if f.dist[idx] == math.MaxInt {
		f.order = append(f.order, pos)
	}
	f.dist[idx] = d
	f.parent[idx] = from
}

// pop removes and finalizes the open cell with the smallest rank.
func (f *frontier) pop(rank func(core.CellPosition) int) (core.CellPosition, bool) {
	best := -1
	bestRank := math.MaxInt
	for i, pos := range f.order {
		if r := rank(pos); r < bestRank {
			best, bestRank = i, r
		}
	}
	if best < 0 {
		return core.CellPosition{}, false
	}
	pos := f.order[best]
	f.order = append(f.order[:best], f.order[best+1:]...)
	f.closed.Put(pos)
	return pos, true
}

// relax offers every open neighbour of pos a path one step longer than the
// path to pos.
func (f *frontier) relax(pos core.CellPosition) {
	from := f.b.index(pos)
	for _, n := range f.b.neighbors(pos) {
		if f.closed.Has(n) {
			continue
		}
		f.reach(n, f.dist[from]+1, from)
	}
}

// uniformCost finalizes the closest open cell, reports it and relaxes its
// neighbours. The target is finalized and reported like any other cell
// before the path is returned.
func uniformCost(b *board, yield func(core.CellPosition) bool) Path {
	f := newFrontier(b)
	f.reach(b.start, 0, -1)
	byDistance := func(pos core.CellPosition) int { return f.dist[b.index(pos)] }
	for {
		cur, ok := f.pop(byDistance)
		if !ok {
			return nil
		}
		if !yield(cur) {
			return nil
		}
		if cur == b.target {
			return b.walk(f.parent, cur)
		}
		f.relax(cur)
	}
}
