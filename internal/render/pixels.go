package render

import (
	"image"
	"image/color"

	"pathgrid/internal/core"
)

// Palette assigns a colour to every role and overlay.
type Palette struct {
	Default color.RGBA
	Start   color.RGBA
	Target  color.RGBA
	Wall    color.RGBA
	Visited color.RGBA
	Found   color.RGBA
}

// DefaultPalette returns the colours used by the desktop app and the PNG
// renderer.
func DefaultPalette() Palette {
	return Palette{
		Default: color.RGBA{R: 246, G: 246, B: 242, A: 255},
		Start:   color.RGBA{R: 40, G: 160, B: 90, A: 255},
		Target:  color.RGBA{R: 214, G: 60, B: 60, A: 255},
		Wall:    color.RGBA{R: 36, G: 38, B: 48, A: 255},
		Visited: color.RGBA{R: 120, G: 180, B: 230, A: 255},
		Found:   color.RGBA{R: 250, G: 204, B: 60, A: 255},
	}
}

// CellColor returns the colour of a cell. Roles other than default win over
// the overlay so start and target stay visible along a found path.
func (p Palette) CellColor(s core.CellState) color.RGBA {
	switch s.Type {
	case core.CellStart:
		return p.Start
	case core.CellTarget:
		return p.Target
	case core.CellWall:
		return p.Wall
	}
	switch s.Background {
	case core.BackgroundVisited:
		return p.Visited
	case core.BackgroundFound:
		return p.Found
	}
	return p.Default
}

// Alpha reports how far the cell at a buffer index has faded in. A nil
// Alpha draws every cell fully.
type Alpha func(idx int) float32

// fillRGBA converts display-encoded cells into RGBA pixels in buf, blending
// fading cells up from the default colour.
func fillRGBA(buf []byte, cells []uint8, p Palette, alpha Alpha) {
	for i, c := range cells {
		col := p.CellColor(core.DecodeDisplay(c))
		if alpha != nil {
			if a := alpha(i); a < 1 {
				col = lerp(p.Default, col, a)
			}
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerp(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	mix := func(a, b uint8) uint8 { return uint8(float32(a) + (float32(b)-float32(a))*t) }
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}

// Image renders cells one pixel per cell.
func Image(size core.Size, cells []uint8, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.Cols, size.Rows))
	if len(cells) != size.Rows*size.Cols {
		return img
	}
	fillRGBA(img.Pix, cells, p, nil)
	return img
}
