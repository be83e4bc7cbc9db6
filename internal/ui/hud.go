//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"pathgrid/internal/core"
)

// HUD renders the control panel to the right of the grid view.
type HUD struct {
	provider     Provider
	width        int
	panel        *ebiten.Image
	lastHeight   int
	snapshot     core.ParameterSnapshot
	panelOffsetX int

	buttons     []Button
	buttonRects []image.Rectangle
	controls    []hudControlState
	statsTop    int

	pixel *ebiten.Image
}

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided controls and panel width.
func NewHUD(p Provider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{provider: p, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, ctrl := range p.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl})
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached state from the provider and handles clicks on
// the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.provider.Parameters()
	h.buttons = h.provider.Buttons()
	h.layout()
	h.refreshControlValues()
	h.handleInput()
}

func (h *HUD) layout() {
	h.buttonRects = buttonRects(h.width, buttonsTop, len(h.buttons))
	top := buttonsBottom(buttonsTop, len(h.buttons)) + sectionGap
	for i := range h.controls {
		h.controls[i].top = top
		h.controls[i].minusRect, h.controls[i].plusRect = stepperRects(h.width, top)
		top += controlHeight
	}
	h.statsTop = top + sectionGap
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		state.value, state.hasValue = v, true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i, rect := range h.buttonRects {
		if pointInRect(px, my, rect) && h.buttons[i].Enabled {
			h.provider.Press(h.buttons[i].ID)
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		dir := 0
		switch {
		case pointInRect(px, my, state.minusRect):
			dir = -1
		case pointInRect(px, my, state.plusRect):
			dir = 1
		default:
			continue
		}
		if next, ok := adjusted(state.control, state.value, dir); ok && h.provider.SetIntParameter(state.control.Key, next) {
			state.value = next
		}
		return
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "pathgrid", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, b := range h.buttons {
		if i < len(h.buttonRects) {
			h.drawButton(h.buttonRects[i], b.Label, b.Enabled, b.Selected)
		}
	}
	h.drawControls()
	h.drawStats()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for i := range h.controls {
		state := &h.controls[i]
		text.Draw(h.panel, state.control.Label, face, panelPadding, state.top+labelBaseline, fg)
		value, valueColor := "--", dim
		if state.hasValue {
			value, valueColor = strconv.Itoa(state.value), fg
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), state.top+labelBaseline, valueColor)

		_, canLower := adjusted(state.control, state.value, -1)
		_, canRaise := adjusted(state.control, state.value, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canLower, false)
		h.drawButton(state.plusRect, "+", state.hasValue && canRaise, false)
	}
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := h.statsTop
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y+headerBaseline/2, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y+headerBaseline/2, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y+headerBaseline/2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += sectionGap / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled, selected bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	switch {
	case !enabled:
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	case selected:
		bg = color.RGBA{R: 70, G: 110, B: 170, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
