//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pathgrid/internal/core"
)

// GridPainter updates a single RGBA image from display-encoded cell data.
type GridPainter struct {
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, p Palette) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Rows*size.Cols), palette: p}
	gp.img = ebiten.NewImage(size.Cols, size.Rows)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it
// scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, alpha Alpha, scale int) {
	if len(cells) != gp.size.Rows*gp.size.Cols {
		return
	}
	fillRGBA(gp.buf, cells, gp.palette, alpha)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }
