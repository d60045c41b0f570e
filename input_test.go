package puzzlebox

import "testing"

func TestHoverFiresOnEnter(t *testing.T) {
	s := newTestScene()
	it := spawnBox(t, s, "frozen_tomb_sign", 100, 100, 50, 50)

	var item, scene int
	it.OnHover = func(HoverContext) { item++ }
	s.OnHover(func(ctx HoverContext) {
		if ctx.Item != it {
			t.Errorf("hover item = %v", ctx.Item)
		}
		scene++
	})

	s.processPointer(10, 10, false)
	s.processPointer(110, 110, false)
	s.processPointer(120, 120, false)
	s.processPointer(130, 110, false)
	if item != 1 || scene != 1 {
		t.Fatalf("hover item=%d scene=%d, want 1 each while staying inside", item, scene)
	}

	s.processPointer(10, 10, false)
	s.processPointer(110, 110, false)
	if item != 2 {
		t.Errorf("hover = %d after re-entering, want 2", item)
	}
}

func TestHoverDirect(t *testing.T) {
	s := newTestScene()
	it := spawnBox(t, s, "paper", 0, 0, 10, 10)
	var got Vec2
	it.OnHover = func(ctx HoverContext) { got = ctx.Pointer }

	if err := s.Hover("paper", 4, 6); err != nil {
		t.Fatal(err)
	}
	if got != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Pointer = %v, want (4, 6)", got)
	}
	if err := s.Hover("missing", 0, 0); err == nil {
		t.Error("Hover on a missing id should fail")
	}
}

func TestSceneGrabDropOrder(t *testing.T) {
	s := newTestScene()
	it := spawnBox(t, s, "rock", 0, 0, 10, 10)

	var order []string
	rec := func(name string) func(GrabContext) {
		return func(GrabContext) { order = append(order, name) }
	}
	s.OnGrab(rec("scene-grab"))
	s.OnDrop(rec("scene-drop"))
	it.OnFirstGrabbed = rec("first-grab")
	it.OnGrabbed = rec("grab")
	it.OnFirstDropped = rec("first-drop")
	it.OnDropped = rec("drop")

	s.PointerDown("rock", 5, 5)
	s.PointerUp(5, 5)
	s.PointerDown("rock", 5, 5)
	s.PointerUp(5, 5)

	want := []string{
		"scene-grab", "first-grab", "grab", "first-drop", "drop", "scene-drop",
		"scene-grab", "grab", "drop", "scene-drop",
	}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := newTestScene()
	spawnBox(t, s, "rock", 0, 0, 10, 10)

	var a, b int
	ha := s.OnGrab(func(GrabContext) { a++ })
	s.OnGrab(func(GrabContext) { b++ })

	s.PointerDown("rock", 1, 1)
	s.PointerUp(1, 1)
	ha.Remove()
	ha.Remove()
	s.PointerDown("rock", 1, 1)
	s.PointerUp(1, 1)

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 and 2", a, b)
	}
	CallbackHandle{}.Remove()
}

func TestPointerDownWhileGrabbedIgnored(t *testing.T) {
	s := newTestScene()
	rock := spawnBox(t, s, "rock", 0, 0, 10, 10)
	paper := spawnBox(t, s, "paper", 50, 0, 10, 10)

	s.PointerDown("rock", 1, 1)
	if err := s.PointerDown("paper", 51, 1); err != nil {
		t.Fatal(err)
	}
	if s.Grabbed() != rock || paper.Grabbed() {
		t.Error("only one item may be grabbed at a time")
	}
}

func TestPointerMoveWithoutGrab(t *testing.T) {
	s := newTestScene()
	it := spawnBox(t, s, "rock", 0, 0, 10, 10)
	s.PointerMove(50, 50)
	s.PointerUp(50, 50)
	if it.Position() != (Vec2{}) {
		t.Errorf("Position = %v, idle items must not follow the pointer", it.Position())
	}
}

func TestPressOnEmptySpace(t *testing.T) {
	s := newTestScene()
	it := spawnBox(t, s, "rock", 0, 0, 10, 10)

	s.processPointer(500, 500, true)
	s.processPointer(5, 5, true) // dragged onto the rock with the button held
	if it.Grabbed() {
		t.Error("a press that started elsewhere must not grab")
	}
	s.processPointer(5, 5, false)
	s.processPointer(5, 5, true)
	if !it.Grabbed() {
		t.Error("a fresh press on the rock should grab it")
	}
}
