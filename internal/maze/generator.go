package maze

import (
	"github.com/zyedidia/generic/mapset"

	"pathgrid/internal/core"
)

type generator struct {
	size       core.Size
	rng        *core.RNG
	onDivide   func(Division)
	restricted mapset.Set[core.CellPosition]
	yield      func(core.CellPosition) bool
}

func newGenerator(size core.Size, rng *core.RNG, opts []Option) *generator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &generator{
		size:       size,
		rng:        rng,
		onDivide:   o.onDivide,
		restricted: mapset.New[core.CellPosition](),
	}
}

// run emits the border and then the interior divisions. It stops as soon as
// yield returns false.
func (g *generator) run(yield func(core.CellPosition) bool) {
	g.yield = yield
	if !g.border() {
		return
	}
	g.divide(1, 1, g.size.Rows-2, g.size.Cols-2)
}

// border walks the perimeter clockwise from (0,0): top edge, right edge,
// bottom edge, left edge. Each border cell is emitted once.
func (g *generator) border() bool {
	last := core.Pos(g.size.Rows-1, g.size.Cols-1)
	for c := 0; c <= last.Col; c++ {
		if !g.yield(core.Pos(0, c)) {
			return false
		}
	}
	for r := 1; r <= last.Row; r++ {
		if !g.yield(core.Pos(r, last.Col)) {
			return false
		}
	}
	for c := last.Col - 1; c >= 0; c-- {
		if !g.yield(core.Pos(last.Row, c)) {
			return false
		}
	}
	for r := last.Row - 1; r >= 1; r-- {
		if !g.yield(core.Pos(r, 0)) {
			return false
		}
	}
	return true
}

func (g *generator) horizontal(height, width int) bool {
	switch {
	case width < height:
		return true
	case height < width:
		return false
	default:
		return g.rng.Bool()
	}
}

// divide splits the region with origin (row, col). Origins are always odd.
func (g *generator) divide(row, col, height, width int) bool {
	if height < 2 || width < 2 {
		return true
	}
	d := Division{Horizontal: g.horizontal(height, width)}
	if d.Horizontal {
		line := row + g.rng.OddOffset(height)
		d.Passage = core.Pos(line, col+g.rng.EvenOffset(width))
		for c := col; c < col+width; c++ {
			d.Line = append(d.Line, core.Pos(line, c))
		}
		g.restricted.Put(core.Pos(line-1, d.Passage.Col))
		g.restricted.Put(core.Pos(line+1, d.Passage.Col))
	} else {
		line := col + g.rng.OddOffset(width)
		d.Passage = core.Pos(row+g.rng.EvenOffset(height), line)
		for r := row; r < row+height; r++ {
			d.Line = append(d.Line, core.Pos(r, line))
		}
		g.restricted.Put(core.Pos(d.Passage.Row, line-1))
		g.restricted.Put(core.Pos(d.Passage.Row, line+1))
	}
	if g.onDivide != nil {
		g.onDivide(d)
	}
	for _, pos := range d.Line {
		if pos == d.Passage || g.restricted.Has(pos) {
			continue
		}
		if !g.yield(pos) {
			return false
		}
	}

	if d.Horizontal {
		line := d.Passage.Row
		return g.divide(row, col, line-row, width) &&
			g.divide(line+1, col, row+height-line-1, width)
	}
	line := d.Passage.Col
	return g.divide(row, col, height, line-col) &&
		g.divide(row, line+1, height, col+width-line-1)
}
