package puzzlebox

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the initial window title. Empty keeps the scene's title.
	Title string
	// Width and Height are the initial window size. Zero means BaseWidth x
	// BaseHeight.
	Width, Height int
	// Background fills the screen before the surface draws.
	Background Color
	// Resizable lets the player resize the window; the scene is resized to
	// match.
	Resizable bool
	// Debug turns on the scene's debug mode.
	Debug bool
	// OnUpdate runs after each Scene.Update. A non-nil error ends the loop.
	OnUpdate func() error
	// OnDraw runs after each Scene.Draw, for overlays such as popups.
	OnDraw func(screen *ebiten.Image)
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.scene.closed {
		return ebiten.Termination
	}
	g.scene.Update()
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.toRGBA())
	}
	g.scene.Draw(screen)
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
}

// Layout uses the window size as the logical size so viewport coordinates
// are window pixels.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed or the
// scene is closed. The window title follows Scene.SetTitle.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		w, h = BaseWidth, BaseHeight
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	scene.onTitle = ebiten.SetWindowTitle
	if cfg.Title != "" {
		scene.SetTitle(cfg.Title)
	} else {
		ebiten.SetWindowTitle(scene.Title())
	}
	defer func() { scene.onTitle = nil }()

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	scene.Close()
	return err
}
