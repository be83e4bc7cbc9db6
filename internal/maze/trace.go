package maze

import (
	"iter"

	"pathgrid/internal/core"
)

// Trace yields wall placements one at a time. Nothing is generated between
// calls to Next, and a Trace cannot be restarted.
type Trace struct {
	next   func() (core.CellPosition, bool)
	stop   func()
	placed int
	done   bool
}

// NewTrace prepares a maze for a grid of the given size.
func NewTrace(size core.Size, rng *core.RNG, opts ...Option) (*Trace, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}
	gen := newGenerator(size, rng, opts)
	t := &Trace{}
	t.next, t.stop = iter.Pull(iter.Seq[core.CellPosition](gen.run))
	return t, nil
}

// Next returns the next wall to place, or false once the maze is complete
// or the trace was stopped.
func (t *Trace) Next() (core.CellPosition, bool) {
	if t.done {
		return core.CellPosition{}, false
	}
	pos, ok := t.next()
	if !ok {
		t.done = true
		return pos, false
	}
	t.placed++
	return pos, true
}

// Walls returns the remaining placements as a single-use sequence.
func (t *Trace) Walls() iter.Seq[core.CellPosition] {
	return func(yield func(core.CellPosition) bool) {
		for {
			pos, ok := t.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}

// Done reports whether generation finished or was stopped.
func (t *Trace) Done() bool { return t.done }

// Placed returns how many walls have been emitted so far.
func (t *Trace) Placed() int { return t.placed }

// Stop abandons generation.
func (t *Trace) Stop() {
	if t.done {
		return
	}
	t.stop()
	t.done = true
}
