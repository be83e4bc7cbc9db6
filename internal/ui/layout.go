package ui

import (
	"image"

	"pathgrid/internal/core"
)

// Button is an action offered on the control panel.
type Button struct {
	ID       string
	Label    string
	Enabled  bool
	Selected bool
}

// Provider supplies what the control panel shows and receives its input.
type Provider interface {
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	core.IntParameterSetter
	Buttons() []Button
	Press(id string)
}

const (
	panelPadding   = 12
	lineHeight     = 20
	controlHeight  = 36
	buttonSize     = 24
	buttonHeight   = 26
	buttonGap      = 6
	buttonColumns  = 2
	headerBaseline = 18
	labelBaseline  = 24
	sectionGap     = 14
	buttonsTop     = panelPadding + headerBaseline + sectionGap
)

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// buttonRects lays out n buttons in a two-column grid starting at top.
func buttonRects(width, top, n int) []image.Rectangle {
	inner := width - 2*panelPadding
	colWidth := (inner - buttonGap*(buttonColumns-1)) / buttonColumns
	rects := make([]image.Rectangle, n)
	for i := range rects {
		col, row := i%buttonColumns, i/buttonColumns
		x := panelPadding + col*(colWidth+buttonGap)
		y := top + row*(buttonHeight+buttonGap)
		rects[i] = image.Rect(x, y, x+colWidth, y+buttonHeight)
	}
	return rects
}

// buttonsBottom returns the y coordinate just below n laid-out buttons.
func buttonsBottom(top, n int) int {
	rows := (n + buttonColumns - 1) / buttonColumns
	return top + rows*(buttonHeight+buttonGap)
}

// stepperRects places the minus and plus buttons of a control row at the
// right edge of the panel.
func stepperRects(width, top int) (minus, plus image.Rectangle) {
	y := top + (controlHeight-buttonSize)/2
	plus = image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
	minus = image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
	return minus, plus
}

// adjusted returns the value one step from cur in direction dir and whether
// it differs from cur.
func adjusted(ctrl core.ParameterControl, cur, dir int) (int, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	next := ctrl.Clamp(cur + dir*step)
	return next, next != cur
}
