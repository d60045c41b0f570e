package puzzlebox

// Viewport returns the current viewport snapshot.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// SetOrigin sets the surface's top-left corner in document space.
func (s *Scene) SetOrigin(x, y float64) {
	s.viewport.Origin = Vec2{X: x, Y: y}
}

// SetScrollPolicy selects what a scroll does to a grabbed item.
func (s *Scene) SetScrollPolicy(p ScrollPolicy) {
	s.scrollPolicy = p
}

// ScrollPolicy returns the active scroll policy.
func (s *Scene) ScrollPolicy() ScrollPolicy {
	return s.scrollPolicy
}

// Resize records new window dimensions. Every idle item shifts right by half
// the width change, which keeps it in place relative to a horizontally
// centered surface. A grabbed item keeps following the pointer instead.
func (s *Scene) Resize(width, height float64) {
	if width == s.viewport.Width && height == s.viewport.Height {
		return
	}
	dx := (width - s.viewport.Width) / 2
	s.viewport.Width = width
	s.viewport.Height = height
	if dx == 0 {
		return
	}

	s.debugf("resize to %.0fx%.0f, idle items shift %.1f", width, height, dx)
	for _, it := range s.registry.order {
		if it.Grabbed() {
			continue
		}
		it.MoveTo(it.pos.X+dx, it.pos.Y)
	}
}

// Scroll sets the document scroll offset. Idle items are anchored to the
// document and do not move. A grabbed item is handled by the scroll policy.
func (s *Scene) Scroll(x, y float64) {
	prev := s.viewport.Scroll
	s.viewport.Scroll = Vec2{X: x, Y: y}
	delta := s.viewport.Scroll.Sub(prev)
	if delta == (Vec2{}) {
		return
	}

	it := s.captured
	if it == nil || !it.Grabbed() {
		return
	}
	switch s.scrollPolicy {
	case ScrollForceDrop:
		s.debugf("scroll by (%.0f, %.0f): force-drop %q", delta.X, delta.Y, it.id)
		s.dropItem(it, it.drag.pointer, true)
	case ScrollCompensate:
		// The pointer did not move in the window, so in surface space it
		// moved by the scroll delta. The item follows it.
		p := it.drag.pointer.Add(delta)
		if it.pointerMove(p) {
			s.fireMove(it)
		}
	}
}

// ScrollBy scrolls relative to the current offset. Scrolling above the top
// of the document is clamped to zero.
func (s *Scene) ScrollBy(dx, dy float64) {
	x := max(s.viewport.Scroll.X+dx, 0)
	y := max(s.viewport.Scroll.Y+dy, 0)
	s.Scroll(x, y)
}
