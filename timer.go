package puzzlebox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Timer runs a function once after a delay measured in scene ticks. Timers
// are driven by Scene.Update; there is no wall-clock goroutine behind them.
type Timer struct {
	clock *gween.Tween
	fn    func()
	done  bool
}

// After schedules fn to run once, seconds from now. A timer scheduled from
// inside another timer's function first advances on the next tick.
func (s *Scene) After(seconds float32, fn func()) *Timer {
	t := &Timer{
		clock: gween.New(0, 1, seconds, ease.Linear),
		fn:    fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Cancel stops the timer. Cancelling a finished timer is a no-op.
func (t *Timer) Cancel() {
	t.done = true
}

// Done reports whether the timer has fired or been cancelled.
func (t *Timer) Done() bool {
	return t.done
}

func (t *Timer) update(dt float32) {
	if t.done {
		return
	}
	if _, finished := t.clock.Update(dt); finished {
		t.done = true
		if t.fn != nil {
			t.fn()
		}
	}
}

// ItemTween moves an item's position to a target over a duration. The tween
// stops as soon as the item is destroyed or grabbed, leaving the item where
// it is.
type ItemTween struct {
	x, y   *gween.Tween
	target *Item
	Done   bool
}

// TweenItem creates a tween that slides it to (toX, toY) over duration
// seconds. Add it to a scene with Scene.AddTween, or call Update yourself.
func TweenItem(it *Item, toX, toY float64, duration float32, fn ease.TweenFunc) *ItemTween {
	return &ItemTween{
		x:      gween.New(float32(it.pos.X), float32(toX), duration, fn),
		y:      gween.New(float32(it.pos.Y), float32(toY), duration, fn),
		target: it,
	}
}

// Update advances the tween by dt seconds and moves the item.
func (g *ItemTween) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.destroyed || g.target.Grabbed() {
		g.Done = true
		return
	}
	x, xDone := g.x.Update(dt)
	y, yDone := g.y.Update(dt)
	g.target.MoveTo(float64(x), float64(y))
	g.Done = xDone && yDone
}

// AddTween registers g to be advanced by Scene.Update until it finishes.
func (s *Scene) AddTween(g *ItemTween) {
	s.tweens = append(s.tweens, g)
}

// advance moves timers and tweens forward by dt and drops finished ones.
func (s *Scene) advance(dt float32) {
	// Entries appended by callbacks during this pass wait for the next tick.
	n := len(s.timers)
	for i := 0; i < n; i++ {
		s.timers[i].update(dt)
		// Close from a callback tears the timer list down.
		if s.closed {
			return
		}
	}
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.done {
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept

	n = len(s.tweens)
	for i := 0; i < n; i++ {
		s.tweens[i].Update(dt)
	}
	keptTweens := s.tweens[:0]
	for _, g := range s.tweens {
		if !g.Done {
			keptTweens = append(keptTweens, g)
		}
	}
	clear(s.tweens[len(keptTweens):])
	s.tweens = keptTweens
}
