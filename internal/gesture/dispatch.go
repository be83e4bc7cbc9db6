package gesture

import "pathgrid/internal/core"

// HitTester maps a screen point to the grid cell under it.
type HitTester interface {
	CellAt(x, y int) (core.CellPosition, bool)
}

// EventKind names a raw pointer event.
type EventKind uint8

const (
	PointerDown EventKind = iota
	PointerOver
	PointerUp
	PointerCancel
	PointerClick
)

// PointerEvent is a raw pointer event in screen coordinates.
type PointerEvent struct {
	Kind EventKind
	X, Y int
}

// Dispatch resolves ev through ht and feeds it to the interpreter. Events
// that miss the grid are dropped, except releases and cancels, which always
// end the gesture. It reports whether the grid may have changed.
func (in *Interpreter) Dispatch(ht HitTester, ev PointerEvent) bool {
	pos, inside := ht.CellAt(ev.X, ev.Y)
	switch ev.Kind {
	case PointerDown:
		if !inside {
			return false
		}
		in.Down(pos)
		return false
	case PointerOver:
		if !inside || in.state != PaintingWalls || pos == in.current {
			return false
		}
		in.Over(pos)
		return true
	case PointerUp:
		moving := in.state == PressedOnStart || in.state == PressedOnTarget
		in.Up(pos, inside)
		return moving && inside
	case PointerCancel:
		in.Cancel()
		return false
	case PointerClick:
		if !inside || in.state != Idle {
			return false
		}
		return in.Click(pos)
	}
	return false
}

// ScaledHitTester maps screen pixels to cells drawn as Scale x Scale
// squares whose top-left corner sits at (OffsetX, OffsetY).
type ScaledHitTester struct {
	Size             core.Size
	Scale            int
	OffsetX, OffsetY int
}

// CellAt implements HitTester.
func (h ScaledHitTester) CellAt(x, y int) (core.CellPosition, bool) {
	scale := h.Scale
	if scale <= 0 {
		scale = 1
	}
	x -= h.OffsetX
	y -= h.OffsetY
	if x < 0 || y < 0 {
		return core.CellPosition{}, false
	}
	pos := core.Pos(y/scale, x/scale)
	if pos.Row >= h.Size.Rows || pos.Col >= h.Size.Cols {
		return core.CellPosition{}, false
	}
	return pos, true
}
