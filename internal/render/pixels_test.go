package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathgrid/internal/core"
)

func TestCellColor(t *testing.T) {
	p := DefaultPalette()
	cases := []struct {
		state core.CellState
		want  color.RGBA
	}{
		{core.CellState{}, p.Default},
		{core.CellState{Background: core.BackgroundVisited}, p.Visited},
		{core.CellState{Background: core.BackgroundFound}, p.Found},
		{core.CellState{Type: core.CellStart, Background: core.BackgroundFound}, p.Start},
		{core.CellState{Type: core.CellTarget, Background: core.BackgroundFound}, p.Target},
		{core.CellState{Type: core.CellWall}, p.Wall},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.CellColor(tc.state), "%+v", tc.state)
	}
}

func TestImageFollowsGrid(t *testing.T) {
	g := core.NewGrid(2, 3)
	g.SetCellType(core.Pos(0, 0), core.CellStart)
	g.SetCellType(core.Pos(1, 2), core.CellWall)
	g.SetCellBackgroundState(core.Pos(0, 1), core.BackgroundVisited)
	p := DefaultPalette()

	img := Image(g.Size(), g.Cells(), p)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, p.Start, img.RGBAAt(0, 0))
	assert.Equal(t, p.Visited, img.RGBAAt(1, 0))
	assert.Equal(t, p.Default, img.RGBAAt(2, 0))
	assert.Equal(t, p.Wall, img.RGBAAt(2, 1))
}

func TestFadingCellsBlendFromDefault(t *testing.T) {
	p := Palette{Default: color.RGBA{A: 255}, Wall: color.RGBA{R: 200, G: 100, A: 255}}
	cells := []uint8{uint8(core.CellWall), uint8(core.CellWall)}
	buf := make([]byte, 8)
	fillRGBA(buf, cells, p, func(idx int) float32 {
		if idx == 0 {
			return 0.5
		}
		return 1
	})
	assert.Equal(t, []byte{100, 50, 0, 255, 200, 100, 0, 255}, buf)
}
