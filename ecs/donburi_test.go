package ecs

import (
	"testing"

	"github.com/phanxgames/puzzlebox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []puzzlebox.ItemEvent
	ItemEventType.Subscribe(world, func(w donburi.World, e puzzlebox.ItemEvent) {
		received = append(received, e)
	})

	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventSpawn, ItemID: "rock", X: 100, Y: 200})
	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventCollide, ItemID: "rock", OtherID: "button"})

	// Events are queued until processed.
	ItemEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != puzzlebox.EventSpawn || e.X != 100 || e.Y != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.OtherID != "button" {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_MirrorsItems(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventSpawn, ItemID: "rock", X: 1, Y: 2})
	e, ok := store.Entity("rock")
	if !ok {
		t.Fatal("expected entity for rock")
	}

	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventGrab, ItemID: "rock", X: 1, Y: 2, Grabbed: true})
	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventMove, ItemID: "rock", X: 50, Y: 60, Grabbed: true})
	d := Item.Get(world.Entry(e))
	if d.X != 50 || d.Y != 60 || !d.Grabbed {
		t.Errorf("after move: %+v", *d)
	}

	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventDrop, ItemID: "rock", X: 50, Y: 60})
	if Item.Get(world.Entry(e)).Grabbed {
		t.Error("Grabbed should be false after drop")
	}

	store.EmitEvent(puzzlebox.ItemEvent{Type: puzzlebox.EventDestroy, ItemID: "rock"})
	if world.Valid(e) {
		t.Error("entity should be removed on destroy")
	}
	if _, ok := store.Entity("rock"); ok {
		t.Error("store should forget destroyed item")
	}
}

func TestDonburiStore_SceneIntegration(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	var _ puzzlebox.EntityStore = store

	scene := puzzlebox.NewScene()
	scene.SetEntityStore(store)

	var types []puzzlebox.EventType
	ItemEventType.Subscribe(world, func(w donburi.World, e puzzlebox.ItemEvent) {
		types = append(types, e.Type)
	})

	rock := puzzlebox.NewItem("rock", 0, 0)
	rock.SetSize(10, 10)
	if err := scene.Spawn(rock); err != nil {
		t.Fatal(err)
	}
	if err := scene.PointerDown("rock", 5, 5); err != nil {
		t.Fatal(err)
	}
	scene.Destroy("rock")
	events.ProcessAllEvents(world)

	want := []puzzlebox.EventType{puzzlebox.EventSpawn, puzzlebox.EventGrab, puzzlebox.EventDrop, puzzlebox.EventDestroy}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_StationaryItemNeverGrabbed(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	scene := puzzlebox.NewScene()
	scene.SetEntityStore(store)

	sign := puzzlebox.NewItem("frozen_tomb_sign", 0, 0)
	sign.SetSize(20, 20)
	sign.SetGrabbable(false)
	if err := scene.Spawn(sign); err != nil {
		t.Fatal(err)
	}
	e, ok := store.Entity("frozen_tomb_sign")
	if !ok {
		t.Fatal("expected entity for the sign")
	}

	if err := scene.PointerDown("frozen_tomb_sign", 5, 5); err != nil {
		t.Fatal(err)
	}
	scene.PointerUp(5, 5)
	if Item.Get(world.Entry(e)).Grabbed {
		t.Error("a stationary item must not be mirrored as grabbed")
	}

	// A grabbable item is mirrored while it follows the pointer.
	rock := puzzlebox.NewItem("rock", 50, 0)
	rock.SetSize(10, 10)
	if err := scene.Spawn(rock); err != nil {
		t.Fatal(err)
	}
	re, _ := store.Entity("rock")
	scene.PointerDown("rock", 55, 5)
	if !Item.Get(world.Entry(re)).Grabbed {
		t.Error("rock should be mirrored as grabbed")
	}
	scene.PointerUp(55, 5)
	if Item.Get(world.Entry(re)).Grabbed {
		t.Error("rock should be mirrored as dropped")
	}
}
