//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pathgrid/internal/core"
	"pathgrid/internal/gesture"
)

// Overlay highlights the cell under the cursor and the origin of an
// in-progress gesture. H toggles it.
type Overlay struct {
	hit     gesture.HitTester
	scale   int
	hidden  bool
	hover   core.CellPosition
	onGrid  bool
	pixel   *ebiten.Image
	gesture *gesture.Interpreter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(hit gesture.HitTester, scale int, in *gesture.Interpreter) *Overlay {
	o := &Overlay{hit: hit, scale: scale, gesture: in}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
	o.hover, o.onGrid = o.hit.CellAt(ebiten.CursorPosition())
}

// Draw renders the highlights on top of the grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	if o.gesture != nil && o.gesture.State() != gesture.Idle {
		o.outline(screen, o.gesture.Origin(), color.RGBA{R: 250, G: 140, B: 40, A: 220})
		if o.gesture.State() == gesture.PaintingWalls && o.gesture.Current() != o.gesture.Origin() {
			o.outline(screen, o.gesture.Current(), color.RGBA{R: 250, G: 200, B: 60, A: 220})
		}
	}
	if o.onGrid {
		o.outline(screen, o.hover, color.RGBA{R: 90, G: 90, B: 110, A: 200})
	}
}

func (o *Overlay) outline(screen *ebiten.Image, pos core.CellPosition, c color.RGBA) {
	s := float64(o.scale)
	x, y := float64(pos.Col)*s, float64(pos.Row)*s
	w := s / 8
	if w < 1 {
		w = 1
	}
	o.rect(screen, x, y, s, w, c)
	o.rect(screen, x, y+s-w, s, w, c)
	o.rect(screen, x, y, w, s, c)
	o.rect(screen, x+s-w, y, w, s, c)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
