//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pathgrid/internal/gesture"
)

// pointerSource is a device that can drive a gesture.
type pointerSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

type mouseSource struct{}

func (mouseSource) Position() (int, int) { return ebiten.CursorPosition() }

func (mouseSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// touchSource follows one touch. A released touch has no position, so the
// last polled one is used for the release.
type touchSource struct {
	id ebiten.TouchID
}

func (t touchSource) Position() (int, int) { return ebiten.TouchPosition(t.id) }

func (t touchSource) IsJustReleased() bool { return inpututil.IsTouchJustReleased(t.id) }

// pointerTracker turns mouse and touch polling into pointer events. A click
// is synthesized when a press is released over the cell it started on.
type pointerTracker struct {
	hit          gesture.HitTester
	source       pointerSource
	downX, downY int
	x, y         int
}

func (p *pointerTracker) poll() []gesture.PointerEvent {
	if p.source == nil {
		return p.press()
	}
	if !ebiten.IsFocused() {
		p.source = nil
		return []gesture.PointerEvent{{Kind: gesture.PointerCancel, X: p.x, Y: p.y}}
	}

	var events []gesture.PointerEvent
	released := p.source.IsJustReleased()
	if _, touch := p.source.(touchSource); !(touch && released) {
		x, y := p.source.Position()
		if x != p.x || y != p.y {
			p.x, p.y = x, y
			events = append(events, gesture.PointerEvent{Kind: gesture.PointerOver, X: x, Y: y})
		}
	}
	if !released {
		return events
	}
	p.source = nil
	events = append(events, gesture.PointerEvent{Kind: gesture.PointerUp, X: p.x, Y: p.y})
	from, okFrom := p.hit.CellAt(p.downX, p.downY)
	to, okTo := p.hit.CellAt(p.x, p.y)
	if okFrom && okTo && from == to {
		events = append(events, gesture.PointerEvent{Kind: gesture.PointerClick, X: p.x, Y: p.y})
	}
	return events
}

func (p *pointerTracker) press() []gesture.PointerEvent {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.source = mouseSource{}
	default:
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return nil
		}
		p.source = touchSource{id: ids[0]}
	}
	p.x, p.y = p.source.Position()
	p.downX, p.downY = p.x, p.y
	return []gesture.PointerEvent{{Kind: gesture.PointerDown, X: p.x, Y: p.y}}
}
