package puzzlebox

import "testing"

func TestNewItemDefaults(t *testing.T) {
	it := NewItem("paper", 544, 400)
	if !it.Visible() || !it.Grabbable() || it.Grabbed() || it.ZIndex() != 0 {
		t.Errorf("defaults: visible=%v grabbable=%v grabbed=%v z=%d",
			it.Visible(), it.Grabbable(), it.Grabbed(), it.ZIndex())
	}
	if it.Live() || it.IsDestroyed() {
		t.Error("an unspawned item is neither live nor destroyed")
	}
	if it.DragState() != DragIdle {
		t.Errorf("DragState = %s, want idle", it.DragState())
	}
}

func TestItemSettersPlace(t *testing.T) {
	s := newTestScene()
	fs := s.Surface().(*fakeSurface)
	it := NewItem("rotary_phone", 0, 0)
	it.Image = "rotary_phone.png"
	it.Alt = "Rotary Phone"
	it.MoveTo(5, 5) // not spawned, nothing placed
	if len(fs.placed) != 0 {
		t.Fatal("unspawned items must not reach the surface")
	}
	s.Spawn(it)

	it.MoveTo(700, 300)
	it.SetZIndex(3)
	it.SetGrabbable(false)
	it.SetVisible(false)

	p := fs.placed["rotary_phone"]
	want := Placement{
		ID: "rotary_phone", Image: "rotary_phone.png", Alt: "Rotary Phone",
		Position: Vec2{X: 700, Y: 300}, ZIndex: 3,
	}
	if p != want {
		t.Errorf("placement = %+v, want %+v", p, want)
	}
}

func TestItemBounds(t *testing.T) {
	s := newTestScene()
	fs := s.Surface().(*fakeSurface)
	fs.natural["sign"] = Vec2{X: 120, Y: 80}

	sign := NewItem("sign", 10, 20)
	if got := sign.Bounds(); got != (Rect{X: 10, Y: 20}) {
		t.Errorf("unspawned unsized Bounds = %v", got)
	}
	s.Spawn(sign)
	if got := sign.Bounds(); got != (Rect{X: 10, Y: 20, Width: 120, Height: 80}) {
		t.Errorf("natural Bounds = %v", got)
	}

	sign.SetSize(30, 40)
	if got := sign.Bounds(); got != (Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("explicit Bounds = %v", got)
	}
	if size, ok := sign.Size(); !ok || size != (Vec2{X: 30, Y: 40}) {
		t.Errorf("Size = %v, %v", size, ok)
	}

	sign.ClearSize()
	if got := sign.Bounds().Width; got != 120 {
		t.Errorf("Width after ClearSize = %v, want natural 120", got)
	}
}

func TestItemDraggingPlacement(t *testing.T) {
	s := newTestScene()
	fs := s.Surface().(*fakeSurface)
	spawnBox(t, s, "rock", 0, 0, 10, 10)

	s.PointerDown("rock", 1, 1)
	if !fs.placed["rock"].Dragging {
		t.Error("placement should mark the grabbed item as dragging")
	}
	s.PointerUp(1, 1)
	if fs.placed["rock"].Dragging {
		t.Error("placement should clear dragging on drop")
	}
}
