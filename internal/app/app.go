//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"exobio/internal/core"
	"exobio/internal/render"
	"exobio/internal/ui"
)

const hudWidth = 260

// Game adapts a specimen session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cadence *core.Cadence
	palette render.Palette

	scale    int
	auto     bool
	inverted bool
	status   string
}

// New constructs a Game for the provided session.
func New(session *Session, scale int, interval time.Duration, auto bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		session: session,
		painter: render.NewGridPainter(session.Config().Size),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(),
		cadence: core.NewCadence(interval),
		palette: render.Fossil,
		scale:   scale,
		auto:    auto,
	}
	g.refreshHUD()
	return g
}

// Update handles per-frame input and automatic regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto = !g.auto
		g.cadence.Reset()
		g.refreshHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.inverted = !g.inverted
		g.palette = render.Fossil
		if g.inverted {
			g.palette = render.Ink
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || (g.auto && g.cadence.Due()) {
		g.apply(g.session.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.apply(g.session.Reseed(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.apply(g.session.Regenerate())
	}
	g.overlay.Update()
	return nil
}

func (g *Game) apply(err error) {
	g.status = ""
	if err != nil {
		g.status = err.Error()
	}
	g.refreshHUD()
}

func (g *Game) refreshHUD() {
	g.hud.Update(g.session.Title(), g.session.Summary(), statusLine(g.status, g.auto), g.session.Config().Parameters())
}

// Draw renders the current specimen, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	spec := g.session.Specimen()
	g.painter.Blit(screen, spec.Bitmap, g.palette, g.scale)
	g.overlay.Draw(screen, spec.Plan, g.scale)
	size := g.session.Config().Size * g.scale
	g.hud.Draw(screen, size, size)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.session.Config().Size * g.scale
	return size + g.hud.Width(), size
}
