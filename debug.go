package puzzlebox

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// misuse reports a scene-definition bug such as a duplicate spawn. In debug
// mode it panics so the bug surfaces at its source; otherwise it logs and
// returns err.
func (s *Scene) misuse(err error) error {
	if s.debug {
		panic(fmt.Sprintf("puzzlebox debug: %v", err))
	}
	s.logger.Printf("warning: %v", err)
	return err
}

// debugf writes a trace line when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	s.logger.Printf("debug: "+format, args...)
}

// drawDebugOverlay prints frame rate, scroll and drag state in the top-left
// corner of the screen.
func (s *Scene) drawDebugOverlay(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "items: %d  timers: %d\n", s.registry.Len(), len(s.timers))
	fmt.Fprintf(&b, "scroll: (%.0f, %.0f)  policy: %s\n",
		s.viewport.Scroll.X, s.viewport.Scroll.Y, s.scrollPolicy)
	if s.captured != nil {
		fmt.Fprintf(&b, "grabbed: %s", s.captured.id)
	} else if s.hover != nil {
		fmt.Fprintf(&b, "hover: %s", s.hover.id)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}
