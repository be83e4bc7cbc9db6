package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"pathgrid/internal/core"
)

// Snapshot rasterizes cells at scale pixels per cell and frames the result
// with pad pixels of wall colour.
func Snapshot(size core.Size, cells []uint8, p Palette, scale, pad int) (*image.RGBA, error) {
	if scale < 1 {
		scale = 1
	}
	if pad < 0 {
		pad = 0
	}
	grid := Image(size, cells, p)
	scaled := image_utils.ResizeImage(grid, size.Cols*scale, size.Rows*scale)

	frame := image.NewRGBA(image.Rect(0, 0, size.Cols*scale+2*pad, size.Rows*scale+2*pad))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(p.Wall), image.Point{}, draw.Src)

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(frame, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: frame: %w", err)
	}
	if err := composite.AddImage(scaled, image.Pt(pad, pad)); err != nil {
		return nil, fmt.Errorf("render: grid: %w", err)
	}
	return image_utils.ToRGBA(composite), nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
