//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pathgrid/internal/anim"
	"pathgrid/internal/gesture"
	"pathgrid/internal/render"
	"pathgrid/internal/ui"
)

// hudWidth is the width of the control panel in pixels.
const hudWidth = 220

const fadeDuration = 250 * time.Millisecond

var keyActions = map[ebiten.Key]string{
	ebiten.KeyDigit1: "bfs",
	ebiten.KeyDigit2: "dfs",
	ebiten.KeyDigit3: "dijkstra",
	ebiten.KeyDigit4: "astar",
	ebiten.KeyEnter:  ActionVisualize,
	ebiten.KeyV:      ActionVisualize,
	ebiten.KeyM:      ActionMaze,
	ebiten.KeyC:      ActionClear,
	ebiten.KeyX:      ActionCancel,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	fader   *anim.Fader
	pointer *pointerTracker
	hit     gesture.ScaledHitTester

	scale  int
	tps    int
	resets int
}

// New constructs a Game for the provided session.
func New(s *Session, scale, tps int) *Game {
	grid := s.Controller().Grid()
	hit := gesture.ScaledHitTester{Size: grid.Size(), Scale: scale}
	return &Game{
		session: s,
		painter: render.NewGridPainter(grid.Size(), render.DefaultPalette()),
		hud:     ui.NewHUD(s, hudWidth),
		overlay: ui.NewOverlay(hit, scale, s.Controller().Gestures()),
		fader:   anim.NewFader(fadeDuration),
		pointer: &pointerTracker{hit: hit},
		hit:     hit,
		scale:   scale,
		tps:     tps,
		resets:  s.Resets(),
	}
}

// Update handles input and advances the run in flight.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Press(action)
		}
	}
	g.hud.Update(g.gridWidth())
	if r := g.session.Resets(); r != g.resets {
		g.resets = r
		g.fader.Reset()
	}
	g.overlay.Update()

	ctrl := g.session.Controller()
	grid := ctrl.Grid()
	for _, ev := range g.pointer.poll() {
		ctrl.Pointer(g.hit, ev)
	}
	for _, ch := range g.session.Tick() {
		g.fader.Start(grid.Index(ch.Pos))
	}
	if g.fader.Active() > 0 {
		g.fader.Update(1 / float32(g.tps))
	}
	return nil
}

// Draw renders the grid, the gesture overlay and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Controller().Grid().Cells(), g.fader.Alpha, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hud.Width(), g.gridHeight()
}

func (g *Game) gridWidth() int  { return g.hit.Size.Cols * g.scale }
func (g *Game) gridHeight() int { return g.hit.Size.Rows * g.scale }
