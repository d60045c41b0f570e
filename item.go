package puzzlebox

import "github.com/google/uuid"

// GrabContext carries grab and drop event data.
type GrabContext struct {
	Scene *Scene
	Item  *Item
	// Pointer is the surface-space pointer position at the event.
	Pointer Vec2
	// Forced is true when the drop was caused by Destroy or a scroll rather
	// than by the pointer being released.
	Forced bool
}

// HoverContext carries hover event data.
type HoverContext struct {
	Scene   *Scene
	Item    *Item
	Pointer Vec2
}

// CollisionContext carries the pair of items whose boxes overlapped.
type CollisionContext struct {
	Scene   *Scene
	Dragged *Item
	Target  *Item
}

// CollisionFunc reacts to a dragged item overlapping a watched item. It is
// called on every move tick while the boxes overlap, so it must be safe to
// call repeatedly (for example by destroying one of the items).
type CollisionFunc func(CollisionContext)

type watchEntry struct {
	targetID string
	react    CollisionFunc
}

// Item is one interactive object on the surface. Variants are configuration:
// behavior is attached through the nil-by-default handler fields.
type Item struct {
	id string

	// Presentation, forwarded to the surface as-is.
	Image string
	Alt   string

	pos       Vec2
	size      Vec2
	hasSize   bool
	zIndex    int
	visible   bool
	grabbable bool

	drag              dragMachine
	firstGrabbedFired bool
	firstDroppedFired bool

	// Per-item callbacks. The one-shot callbacks fire at most once per item
	// lifetime, always before the matching every-time callback.
	OnFirstGrabbed func(GrabContext)
	OnFirstDropped func(GrabContext)
	OnGrabbed      func(GrabContext)
	OnDropped      func(GrabContext)
	OnHover        func(HoverContext)

	watch []watchEntry

	scene     *Scene
	destroyed bool
}

// NewItem creates an idle, visible, grabbable item at surface position (x, y).
// An empty id is replaced with a generated one.
func NewItem(id string, x, y float64) *Item {
	if id == "" {
		id = "item-" + uuid.NewString()
	}
	return &Item{
		id:        id,
		pos:       Vec2{X: x, Y: y},
		visible:   true,
		grabbable: true,
	}
}

// ID returns the item's identifier.
func (it *Item) ID() string {
	return it.id
}

// Position returns the item's top-left corner in surface space.
func (it *Item) Position() Vec2 {
	return it.pos
}

// MoveTo sets the item's top-left corner in surface space.
func (it *Item) MoveTo(x, y float64) {
	it.pos = Vec2{X: x, Y: y}
	it.place()
}

// SetSize fixes the item's width and height.
func (it *Item) SetSize(w, h float64) {
	it.size = Vec2{X: w, Y: h}
	it.hasSize = true
	it.place()
}

// ClearSize reverts to the surface's natural size for the item.
func (it *Item) ClearSize() {
	it.size = Vec2{}
	it.hasSize = false
	it.place()
}

// Size returns the explicit size, if one was set.
func (it *Item) Size() (Vec2, bool) {
	return it.size, it.hasSize
}

// ZIndex returns the stacking priority. Higher draws above lower.
func (it *Item) ZIndex() int {
	return it.zIndex
}

// SetZIndex sets the stacking priority.
func (it *Item) SetZIndex(z int) {
	it.zIndex = z
	it.place()
}

// Visible reports whether the item is drawn and hit-testable.
func (it *Item) Visible() bool {
	return it.visible
}

// SetVisible shows or hides the item.
func (it *Item) SetVisible(v bool) {
	it.visible = v
	it.place()
}

// Grabbable reports whether pointer-down starts a drag.
func (it *Item) Grabbable() bool {
	return it.grabbable
}

// SetGrabbable controls whether pointer-down starts a drag. Grab callbacks
// fire either way.
func (it *Item) SetGrabbable(g bool) {
	it.grabbable = g
	it.place()
}

// Grabbed reports whether the item is currently following the pointer.
func (it *Item) Grabbed() bool {
	return it.drag.state == DragGrabbed
}

// DragState returns the current drag state.
func (it *Item) DragState() DragState {
	return it.drag.state
}

// Live reports whether the item is spawned and not destroyed.
func (it *Item) Live() bool {
	return it.scene != nil && !it.destroyed
}

// IsDestroyed reports whether the item has been removed from its scene.
func (it *Item) IsDestroyed() bool {
	return it.destroyed
}

// Bounds returns the item's box in surface space. Without an explicit size
// the surface's natural size is used.
func (it *Item) Bounds() Rect {
	size := it.size
	if !it.hasSize && it.scene != nil {
		if s, ok := it.scene.surface.NaturalSize(it.id); ok {
			size = s
		}
	}
	return Rect{X: it.pos.X, Y: it.pos.Y, Width: size.X, Height: size.Y}
}

// Watch adds targetID to the collision watch-list. While this item is
// dragged, react runs whenever its box overlaps the target's box.
func (it *Item) Watch(targetID string, react CollisionFunc) {
	it.watch = append(it.watch, watchEntry{targetID: targetID, react: react})
}

// Unwatch removes every watch entry for targetID.
func (it *Item) Unwatch(targetID string) {
	kept := it.watch[:0]
	for _, w := range it.watch {
		if w.targetID != targetID {
			kept = append(kept, w)
		}
	}
	for i := len(kept); i < len(it.watch); i++ {
		it.watch[i] = watchEntry{}
	}
	it.watch = kept
}

// ClearWatch empties the watch-list.
func (it *Item) ClearWatch() {
	clear(it.watch)
	it.watch = it.watch[:0]
}

// Watching returns the watched target ids in order.
func (it *Item) Watching() []string {
	ids := make([]string, len(it.watch))
	for i, w := range it.watch {
		ids[i] = w.targetID
	}
	return ids
}

func (it *Item) placement() Placement {
	return Placement{
		ID:        it.id,
		Image:     it.Image,
		Alt:       it.Alt,
		Position:  it.pos,
		Size:      it.size,
		HasSize:   it.hasSize,
		ZIndex:    it.zIndex,
		Visible:   it.visible,
		Grabbable: it.grabbable,
		Dragging:  it.drag.state == DragGrabbed,
	}
}

// place pushes the current placement to the surface. No-op until spawned.
func (it *Item) place() {
	if !it.Live() {
		return
	}
	it.scene.surface.Place(it.placement())
}
