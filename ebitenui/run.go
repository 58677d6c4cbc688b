package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/nodegraph"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Font draws labels; nil uses DefaultFont.
	Font *Font
	// OnResult is called after every editor update. Returning an error
	// stops the loop and is returned from Run.
	OnResult func(*nodegraph.Result) error
}

// FrameFunc returns the declarations for one frame. canvas is the full
// window in screen pixels.
type FrameFunc func(canvas nodegraph.Rect) nodegraph.Frame

// Game adapts an editor to ebiten.Game.
type Game struct {
	ed      *nodegraph.Editor
	frame   FrameFunc
	cfg     RunConfig
	painter *Painter
	w, h    int
}

// NewGame returns an ebiten.Game driving ed.
func NewGame(ed *nodegraph.Editor, frame FrameFunc, cfg RunConfig) *Game {
	return &Game{ed: ed, frame: frame, cfg: cfg, w: cfg.Width, h: cfg.Height}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	canvas := nodegraph.Rect{Width: float64(g.w), Height: float64(g.h)}
	res := g.ed.Update(g.frame(canvas), ReadInput())
	if g.cfg.OnResult != nil {
		return g.cfg.OnResult(res)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.painter == nil {
		g.painter = NewPainter(screen, g.cfg.Font)
	} else {
		g.painter.Reset(screen)
	}
	g.ed.Draw(g.painter)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and drives ed until the window closes or OnResult
// returns an error.
func Run(ed *nodegraph.Editor, frame FrameFunc, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1024
	}
	if cfg.Height <= 0 {
		cfg.Height = 768
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(ed, frame, cfg))
}
