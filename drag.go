package puzzlebox

// dragMachine is the per-item drag state. The machine only leaves DragIdle
// through pointerDown and only returns to it through pointerUp.
type dragMachine struct {
	state   DragState
	offset  Vec2 // pointer minus item top-left, surface space
	pointer Vec2 // last pointer position, surface space
}

// pointerDown runs the grab callbacks and, for grabbable items, enters
// DragGrabbed. It reports whether a drag started.
func (it *Item) pointerDown(p Vec2) bool {
	if it.drag.state != DragIdle {
		return false
	}

	ctx := GrabContext{Scene: it.scene, Item: it, Pointer: p}
	if !it.firstGrabbedFired {
		it.firstGrabbedFired = true
		if it.OnFirstGrabbed != nil {
			it.OnFirstGrabbed(ctx)
		}
	}
	if it.OnGrabbed != nil {
		it.OnGrabbed(ctx)
	}

	// A grab callback may have destroyed the item or made it stationary.
	if it.destroyed || !it.grabbable {
		return false
	}

	it.drag.state = DragGrabbed
	it.drag.offset = p.Sub(it.pos)
	it.drag.pointer = p
	it.place()
	return true
}

// pointerMove moves a grabbed item so the captured offset is preserved, then
// checks collisions. It reports whether the item moved.
func (it *Item) pointerMove(p Vec2) bool {
	if it.drag.state != DragGrabbed {
		return false
	}
	it.drag.pointer = p
	it.pos = p.Sub(it.drag.offset)
	it.place()
	if it.scene != nil {
		it.scene.checkCollisions(it)
	}
	return true
}

// pointerUp ends a drag and runs the drop callbacks. The state returns to
// DragIdle before the callbacks run, so a callback that destroys the item
// cannot trigger a second drop.
func (it *Item) pointerUp(p Vec2, forced bool) bool {
	if it.drag.state != DragGrabbed {
		return false
	}
	it.drag.state = DragIdle
	it.drag.offset = Vec2{}
	it.place()

	ctx := GrabContext{Scene: it.scene, Item: it, Pointer: p, Forced: forced}
	if !it.firstDroppedFired {
		it.firstDroppedFired = true
		if it.OnFirstDropped != nil {
			it.OnFirstDropped(ctx)
		}
	}
	if it.OnDropped != nil {
		it.OnDropped(ctx)
	}
	return true
}
