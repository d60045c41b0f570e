package puzzlebox

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultWheelStep = 40.0 // pixels per wheel notch

// --- Per-pointer state ---

type pointerState struct {
	down bool
	last Vec2 // viewport space
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

type handlerRegistry struct {
	grab    []handler[GrabContext]
	drop    []handler[GrabContext]
	move    []handler[GrabContext]
	hover   []handler[HoverContext]
	collide []handler[CollisionContext]
	nextID  uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventGrab:
		h.reg.grab = removeHandler(h.reg.grab, h.id)
	case EventDrop:
		h.reg.drop = removeHandler(h.reg.drop, h.id)
	case EventMove:
		h.reg.move = removeHandler(h.reg.move, h.id)
	case EventHover:
		h.reg.hover = removeHandler(h.reg.hover, h.id)
	case EventCollide:
		h.reg.collide = removeHandler(h.reg.collide, h.id)
	}
}

func (s *Scene) nextHandle(event EventType) CallbackHandle {
	s.handlers.nextID++
	return CallbackHandle{id: s.handlers.nextID, reg: &s.handlers, event: event}
}

// --- Scene-level event registration ---

// OnGrab registers a scene-level callback for pointer-down on any item. It
// runs before the item's own callbacks.
func (s *Scene) OnGrab(fn func(GrabContext)) CallbackHandle {
	h := s.nextHandle(EventGrab)
	s.handlers.grab = append(s.handlers.grab, handler[GrabContext]{id: h.id, fn: fn})
	return h
}

// OnDrop registers a scene-level callback for drops, forced or not. It runs
// after the item's own callbacks.
func (s *Scene) OnDrop(fn func(GrabContext)) CallbackHandle {
	h := s.nextHandle(EventDrop)
	s.handlers.drop = append(s.handlers.drop, handler[GrabContext]{id: h.id, fn: fn})
	return h
}

// OnMove registers a scene-level callback fired after a grabbed item moves.
func (s *Scene) OnMove(fn func(GrabContext)) CallbackHandle {
	h := s.nextHandle(EventMove)
	s.handlers.move = append(s.handlers.move, handler[GrabContext]{id: h.id, fn: fn})
	return h
}

// OnHover registers a scene-level callback for the pointer entering an item.
func (s *Scene) OnHover(fn func(HoverContext)) CallbackHandle {
	h := s.nextHandle(EventHover)
	s.handlers.hover = append(s.handlers.hover, handler[HoverContext]{id: h.id, fn: fn})
	return h
}

// OnCollide registers a scene-level callback for every watch-list overlap. It
// runs before the watch entry's own reaction.
func (s *Scene) OnCollide(fn func(CollisionContext)) CallbackHandle {
	h := s.nextHandle(EventCollide)
	s.handlers.collide = append(s.handlers.collide, handler[CollisionContext]{id: h.id, fn: fn})
	return h
}

// --- Direct input API ---

// PointerDown delivers a pointer press on item id at viewport position (x, y).
// While another item is grabbed the press is ignored: only one drag exists at
// a time.
func (s *Scene) PointerDown(id string, x, y float64) error {
	it, err := s.Lookup(id)
	if err != nil {
		return err
	}
	if s.captured != nil {
		return nil
	}
	s.grabItem(it, PointerToSurface(Vec2{X: x, Y: y}, s.viewport))
	return nil
}

// PointerMove delivers a pointer move at viewport position (x, y). Only the
// grabbed item, if any, reacts; the pointer does not need to be over it.
func (s *Scene) PointerMove(x, y float64) {
	it := s.captured
	if it == nil {
		return
	}
	if it.pointerMove(PointerToSurface(Vec2{X: x, Y: y}, s.viewport)) {
		s.fireMove(it)
	}
}

// PointerUp delivers a pointer release at viewport position (x, y), dropping
// the grabbed item if there is one.
func (s *Scene) PointerUp(x, y float64) {
	if s.captured == nil {
		return
	}
	s.dropItem(s.captured, PointerToSurface(Vec2{X: x, Y: y}, s.viewport), false)
}

// Hover delivers the pointer entering item id at viewport position (x, y).
func (s *Scene) Hover(id string, x, y float64) error {
	it, err := s.Lookup(id)
	if err != nil {
		return err
	}
	s.fireHover(it, PointerToSurface(Vec2{X: x, Y: y}, s.viewport))
	return nil
}

// Grabbed returns the item currently being dragged, or nil.
func (s *Scene) Grabbed() *Item {
	return s.captured
}

// --- Input processing ---

// processInput is called from Scene.Update to poll mouse input.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		s.ScrollBy(0, -wy*s.wheelStep)
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
	s.updateCursor()
}

// processPointer runs the pointer state machine for one sample at viewport
// position (x, y).
func (s *Scene) processPointer(x, y float64, pressed bool) {
	v := Vec2{X: x, Y: y}
	p := PointerToSurface(v, s.viewport)

	target := s.captured
	if target == nil {
		target = s.hitTest(p)
	}

	// Hover fires on entering an item, not while staying on it.
	if target != s.hover {
		s.hover = target
		if target != nil {
			s.fireHover(target, p)
		}
	}

	switch {
	case pressed && !s.pointer.down:
		s.pointer.down = true
		if target != nil && s.captured == nil {
			s.grabItem(target, p)
		}
	case !pressed && s.pointer.down:
		s.pointer.down = false
		if it := s.captured; it != nil {
			// The release sample may carry the final leg of the drag.
			if v != s.pointer.last && it.pointerMove(p) {
				s.fireMove(it)
			}
			if s.captured == it {
				s.dropItem(it, p, false)
			}
		}
	case pressed && s.pointer.down:
		if v != s.pointer.last && s.captured != nil {
			it := s.captured
			if it.pointerMove(p) {
				s.fireMove(it)
			}
		}
	}
	s.pointer.last = v
}

// updateCursor shows a move cursor over grabbable items and a pointer cursor
// over stationary ones.
func (s *Scene) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if s.hover != nil {
		if s.hover.grabbable {
			shape = ebiten.CursorShapeMove
		} else {
			shape = ebiten.CursorShapePointer
		}
	}
	ebiten.SetCursorShape(shape)
}

// --- Event dispatch ---

func (s *Scene) grabItem(it *Item, p Vec2) {
	ctx := GrabContext{Scene: s, Item: it, Pointer: p}
	for _, h := range s.handlers.grab {
		h.fn(ctx)
	}
	if it.destroyed {
		return
	}
	if it.pointerDown(p) {
		s.captured = it
	}
	s.debugf("grab %q (%s)", it.id, it.drag.state)
	s.emit(ItemEvent{Type: EventGrab, ItemID: it.id, X: it.pos.X, Y: it.pos.Y, Grabbed: it.Grabbed()})
}

func (s *Scene) dropItem(it *Item, p Vec2, forced bool) {
	if s.captured == it {
		s.captured = nil
	}
	if !it.pointerUp(p, forced) {
		return
	}
	ctx := GrabContext{Scene: s, Item: it, Pointer: p, Forced: forced}
	for _, h := range s.handlers.drop {
		h.fn(ctx)
	}
	s.debugf("drop %q at (%.0f, %.0f) forced=%v", it.id, it.pos.X, it.pos.Y, forced)
	s.emit(ItemEvent{
		Type: EventDrop, ItemID: it.id, X: it.pos.X, Y: it.pos.Y,
		Forced: forced, Grabbed: it.Grabbed(),
	})
}

func (s *Scene) fireMove(it *Item) {
	if it.destroyed {
		return
	}
	ctx := GrabContext{Scene: s, Item: it, Pointer: it.drag.pointer}
	for _, h := range s.handlers.move {
		h.fn(ctx)
	}
	s.emit(ItemEvent{Type: EventMove, ItemID: it.id, X: it.pos.X, Y: it.pos.Y, Grabbed: it.Grabbed()})
}

func (s *Scene) fireHover(it *Item, p Vec2) {
	ctx := HoverContext{Scene: s, Item: it, Pointer: p}
	for _, h := range s.handlers.hover {
		h.fn(ctx)
	}
	if it.OnHover != nil {
		it.OnHover(ctx)
	}
	s.emit(ItemEvent{Type: EventHover, ItemID: it.id, X: it.pos.X, Y: it.pos.Y})
}

func (s *Scene) fireCollide(ctx CollisionContext, react CollisionFunc) {
	for _, h := range s.handlers.collide {
		h.fn(ctx)
	}
	if react != nil {
		react(ctx)
	}
	s.debugf("collide %q with %q", ctx.Dragged.id, ctx.Target.id)
	s.emit(ItemEvent{
		Type: EventCollide, ItemID: ctx.Dragged.id, OtherID: ctx.Target.id,
		X: ctx.Dragged.pos.X, Y: ctx.Dragged.pos.Y,
	})
}
