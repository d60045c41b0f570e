package puzzlebox

// syntheticPointerEvent is a queued mouse sample. Coordinates are window
// pixels, so a script can be written against a screenshot.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

func (s *Scene) queuePointer(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed})
}

// InjectPress queues a button-down sample. Each queued sample replaces the
// real mouse for one Update.
func (s *Scene) InjectPress(x, y float64) {
	s.queuePointer(x, y, true)
}

// InjectMove queues a sample with the button still down.
func (s *Scene) InjectMove(x, y float64) {
	s.queuePointer(x, y, true)
}

// InjectRelease queues a button-up sample.
func (s *Scene) InjectRelease(x, y float64) {
	s.queuePointer(x, y, false)
}

// InjectClick presses and releases at one spot over two updates. Clicking a
// stationary item fires its grab callbacks.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag drags from one point to another over frames updates, at least
// two. The samples in between are spaced evenly along the line.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	inner := frames - 2
	for i := 1; i <= inner; i++ {
		t := float64(i) / float64(inner+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput runs the oldest queued sample and reports whether
// there was one.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]
	if len(s.injectQueue) == 0 {
		s.injectQueue = nil
	}
	s.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
