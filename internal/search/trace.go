package search

import (
	"iter"

	"pathgrid/internal/core"
)

// Trace is a lazily evaluated search. Each call to Next advances the
// strategy up to its next visited cell; nothing runs between calls. A Trace
// cannot be restarted once exhausted or stopped.
type Trace struct {
	alg  Algorithm
	next func() (core.CellPosition, bool)
	stop func()

	visits int
	path   Path
	done   bool
}

// NewTrace prepares alg over a snapshot of v. Preconditions are checked
// here, before any cell is visited.
func NewTrace(alg Algorithm, v core.View) (*Trace, error) {
	find, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	b, err := newBoard(v)
	if err != nil {
		return nil, err
	}
	t := &Trace{alg: alg}
	seq := func(yield func(core.CellPosition) bool) {
		t.path = find(b, yield)
	}
	t.next, t.stop = iter.Pull(seq)
	return t, nil
}

// Algorithm returns the strategy the trace runs.
func (t *Trace) Algorithm() Algorithm { return t.alg }

// Next advances to the next visited cell. It returns false once the search
// has finished or the trace was stopped.
func (t *Trace) Next() (core.CellPosition, bool) {
	if t.done {
		return core.CellPosition{}, false
	}
	pos, ok := t.next()
	if !ok {
		t.done = true
		return pos, false
	}
	t.visits++
	return pos, true
}

// Visits returns the remaining visits as a single-use sequence.
func (t *Trace) Visits() iter.Seq[core.CellPosition] {
	return func(yield func(core.CellPosition) bool) {
		for {
			pos, ok := t.Next()
			if !ok || !yield(pos) {
				return
			}
		}
	}
}

// Done reports whether the search has finished or was stopped.
func (t *Trace) Done() bool { return t.done }

// VisitCount returns how many cells have been visited so far.
func (t *Trace) VisitCount() int { return t.visits }

// Path returns the search result once Done. The bool is false while the
// search is still running, after Stop, or when the target is unreachable.
func (t *Trace) Path() (Path, bool) {
	if !t.done || t.path == nil {
		return nil, false
	}
	return t.path, true
}

// Stop abandons the search. Path reports no result afterwards unless the
// search had already completed.
func (t *Trace) Stop() {
	if t.done {
		return
	}
	t.stop()
	t.done = true
}
