// Package maze paints a recursive-division maze onto an empty grid.
//
// Generation first walls the outer border clockwise from the top-left
// corner, then splits the interior with wall lines that each keep exactly
// one passage. Lines sit on even absolute indices and passages on odd ones,
// so a passage always opens onto a corridor and no later line can close it.
package maze

import (
	"context"
	"fmt"

	"pathgrid/internal/core"
)

// ErrGridTooSmall reports a grid without room for a border and a 2x2
// interior.
var ErrGridTooSmall = fmt.Errorf("%w: maze needs at least 4 rows and 4 columns", core.ErrPrecondition)

// Placer is notified of every wall cell in placement order. Generation
// does not continue until it returns; an error aborts the run.
type Placer func(ctx context.Context, pos core.CellPosition) error

// Division describes one partition line.
type Division struct {
	Horizontal bool
	// Line lists every cell the line spans, passage included.
	Line    []core.CellPosition
	Passage core.CellPosition
}

type options struct {
	onDivide func(Division)
}

// Option configures a generation run.
type Option func(*options)

// WithOnDivide registers fn to be called for each partition line before its
// walls are placed.
func WithOnDivide(fn func(Division)) Option {
	return func(o *options) { o.onDivide = fn }
}

// CheckSize returns ErrGridTooSmall when a maze does not fit size.
func CheckSize(size core.Size) error {
	if size.Rows < 4 || size.Cols < 4 {
		return fmt.Errorf("%w (got %dx%d)", ErrGridTooSmall, size.Rows, size.Cols)
	}
	return nil
}

// Run generates a maze sized to v, reporting each wall to place. v is
// expected to be otherwise empty; only its size is read.
func Run(ctx context.Context, v core.View, rng *core.RNG, place Placer, opts ...Option) error {
	size := v.Size()
	if err := CheckSize(size); err != nil {
		return err
	}
	var runErr error
	newGenerator(size, rng, opts).run(func(pos core.CellPosition) bool {
		if err := ctx.Err(); err != nil {
			runErr = err
			return false
		}
		if place == nil {
			return true
		}
		if err := place(ctx, pos); err != nil {
			runErr = fmt.Errorf("maze: placer at %v: %w", pos, err)
			return false
		}
		return true
	})
	return runErr
}
