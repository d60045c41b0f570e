package puzzlebox

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, item events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ItemEvent)
}

// ItemEvent carries item event data for the ECS bridge.
type ItemEvent struct {
	Type   EventType
	ItemID string
	// X and Y are the item's surface position after the event.
	X, Y float64
	// OtherID is the collision target (EventCollide).
	OtherID string
	// Forced marks drops caused by Destroy or scrolling (EventDrop).
	Forced bool
	// Grabbed is the item's drag state after the event. A grab on a
	// stationary item reports false.
	Grabbed bool
	// Code and Hash are set for EventSubmit; ItemID is the pad name.
	Code string
	Hash int32
}

// Scene owns everything that lives for one puzzle scene: the item registry,
// code-pad progress, timers, the viewport, and the collaborators the engine
// talks to. All methods must be called from the goroutine running the game
// loop; handlers run to completion before the next event is processed.
type Scene struct {
	registry *Registry
	progress *CodeProgress
	pads     map[string]*CodePad

	surface   Surface
	presenter Presenter
	sound     SoundPlayer
	store     EntityStore
	logger    *log.Logger
	debug     bool

	viewport     Viewport
	scrollPolicy ScrollPolicy
	wheelStep    float64

	// Input state
	handlers handlerRegistry
	captured *Item // receives move and up while grabbed
	hover    *Item
	pointer  pointerState
	hitBuf   []*Item

	timers []*Timer
	tweens []*ItemTween

	title   string
	onTitle func(string)
	// OnNavigate is called by Navigate. Nil means navigation is only logged.
	OnNavigate func(target string)

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	closed bool
}

// NewScene creates an empty scene sized to BaseWidth x BaseHeight, drawing
// through a new EbitenSurface.
func NewScene() *Scene {
	logger := log.New(os.Stderr, "[puzzlebox] ", log.LstdFlags)
	return &Scene{
		registry:      newRegistry(),
		progress:      NewCodeProgress(),
		pads:          make(map[string]*CodePad),
		surface:       NewEbitenSurface(),
		presenter:     logPresenter{logger: logger},
		logger:        logger,
		viewport:      Viewport{Width: BaseWidth, Height: BaseHeight},
		wheelStep:     defaultWheelStep,
		ScreenshotDir: "screenshots",
	}
}

// Registry returns the scene's item registry.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Progress returns the scene's code-pad progress store.
func (s *Scene) Progress() *CodeProgress {
	return s.progress
}

// Surface returns the render surface.
func (s *Scene) Surface() Surface {
	return s.surface
}

// SetSurface replaces the render surface. Live items are placed on the new
// surface immediately.
func (s *Scene) SetSurface(surface Surface) {
	s.surface = surface
	for _, it := range s.registry.order {
		it.place()
	}
}

// SetPresenter sets the popup collaborator. Nil restores the logging default.
func (s *Scene) SetPresenter(p Presenter) {
	if p == nil {
		p = logPresenter{logger: s.logger}
	}
	s.presenter = p
}

// SetSoundPlayer sets the audio collaborator. Nil disables sound.
func (s *Scene) SetSoundPlayer(p SoundPlayer) {
	s.sound = p
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene logger.
func (s *Scene) SetLogger(l *log.Logger) {
	s.logger = l
	if lp, ok := s.presenter.(logPresenter); ok {
		lp.logger = l
		s.presenter = lp
	}
}

// SetDebugMode enables or disables debug mode. When enabled, misuse such as
// duplicate spawns or unknown lookups panics instead of returning an error,
// and every engine event is logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetWheelStep sets how many pixels one mouse wheel notch scrolls.
func (s *Scene) SetWheelStep(px float64) {
	s.wheelStep = px
}

// Title returns the last title set with SetTitle.
func (s *Scene) Title() string {
	return s.title
}

// SetTitle changes the scene title. Under Run the window title follows it.
func (s *Scene) SetTitle(title string) {
	s.title = title
	if s.onTitle != nil {
		s.onTitle(title)
	}
}

// Navigate asks the host to leave this scene for target.
func (s *Scene) Navigate(target string) {
	s.logger.Printf("navigate to %s", target)
	if s.OnNavigate != nil {
		s.OnNavigate(target)
	}
}

// Present forwards content to the popup collaborator.
func (s *Scene) Present(kind ContentKind, payload string) {
	if kind == ContentNone || s.presenter == nil {
		return
	}
	s.presenter.Present(kind, payload)
}

// PlaySound plays a sound through the audio collaborator. Failures are
// logged and never reach the caller.
func (s *Scene) PlaySound(ref string) {
	if s.sound == nil {
		s.debugf("sound %q: no player", ref)
		return
	}
	if err := s.sound.Play(ref); err != nil {
		s.logger.Printf("sound %q: %v", ref, err)
	}
}

// Update processes input and advances timers and tweens by one tick.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.advance(dt)
}

// Draw renders the surface into screen, if the surface knows how to draw.
func (s *Scene) Draw(screen *ebiten.Image) {
	if d, ok := s.surface.(drawer); ok {
		d.Draw(screen, s.viewport)
	}
	if s.debug {
		s.drawDebugOverlay(screen)
	}
	s.flushScreenshots(screen)
}

// Close tears the scene down: every item is destroyed (grabbed items are
// dropped first), timers and tweens are cancelled, and code-pad progress is
// forgotten. The scene must not be used afterwards.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	for len(s.registry.order) > 0 {
		s.Destroy(s.registry.order[len(s.registry.order)-1].id)
	}
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = nil
	s.tweens = nil
	s.progress.Reset()
	clear(s.pads)
	s.injectQueue = nil
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Scene) Closed() bool {
	return s.closed
}

func (s *Scene) emit(e ItemEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(e)
}
