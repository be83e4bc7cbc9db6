package search

import "pathgrid/internal/core"

// neighborOffsets lists row/column deltas in the fixed expansion order:
// +column, -column, +row, -row.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// board caches what the strategies need from a view: its bounds, the wall
// layout and both endpoints.
type board struct {
	rows, cols int
	walls      []bool
	start      core.CellPosition
	target     core.CellPosition
}

func newBoard(v core.View) (*board, error) {
	start, target, err := core.RequireEndpoints(v)
	if err != nil {
		return nil, err
	}
	size := v.Size()
	b := &board{
		rows:   size.Rows,
		cols:   size.Cols,
		walls:  make([]bool, size.Rows*size.Cols),
		start:  start,
		target: target,
	}
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			pos := core.Pos(r, c)
			b.walls[b.index(pos)] = v.Cell(pos).Type == core.CellWall
		}
	}
	return b, nil
}

func (b *board) index(pos core.CellPosition) int { return pos.Row*b.cols + pos.Col }

func (b *board) size() int { return b.rows * b.cols }

func (b *board) inBounds(pos core.CellPosition) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// neighbors returns the passable orthogonal neighbours of pos in expansion
// order.
func (b *board) neighbors(pos core.CellPosition) []core.CellPosition {
	out := make([]core.CellPosition, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := core.Pos(pos.Row+d[0], pos.Col+d[1])
		if !b.inBounds(n) || b.walls[b.index(n)] {
			continue
		}
		out = append(out, n)
	}
	return out
}

// manhattan returns the grid distance from pos to the target.
func (b *board) manhattan(pos core.CellPosition) int {
	return abs(pos.Row-b.target.Row) + abs(pos.Col-b.target.Col)
}

// walk rebuilds the path ending at pos by following parent links back to
// the start.
func (b *board) walk(parent []int, pos core.CellPosition) Path {
	var rev Path
	idx := b.index(pos)
	for idx >= 0 {
		rev = append(rev, core.Pos(idx/b.cols, idx%b.cols))
		idx = parent[idx]
	}
	path := make(Path, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

func (b *board) newParents() []int {
	parent := make([]int, b.size())
	for i := range parent {
		parent[i] = -1
	}
	return parent
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
