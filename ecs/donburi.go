// Package ecs provides ECS adapters for puzzlebox.
package ecs

import (
	"github.com/phanxgames/puzzlebox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ItemEventType is the Donburi event type for puzzlebox item events.
// Subscribe to this in your ECS systems to receive spawn, drag, collision
// and code pad events.
var ItemEventType = events.NewEventType[puzzlebox.ItemEvent]()

// ItemData mirrors one live item in the world.
type ItemData struct {
	ID      string
	X, Y    float64
	Grabbed bool
}

// Item is the component attached to every mirrored item entity.
var Item = donburi.NewComponentType[ItemData]()

// DonburiStore is an EntityStore backed by a Donburi world. Besides
// publishing events it keeps one entity with an Item component per live
// item.
type DonburiStore struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Item events are published to ItemEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[string]donburi.Entity)}
}

// Entity returns the entity mirroring item id.
func (s *DonburiStore) Entity(id string) (donburi.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// EmitEvent updates the mirrored entities and publishes the event.
func (s *DonburiStore) EmitEvent(event puzzlebox.ItemEvent) {
	switch event.Type {
	case puzzlebox.EventSpawn:
		e := s.world.Create(Item)
		Item.SetValue(s.world.Entry(e), ItemData{ID: event.ItemID, X: event.X, Y: event.Y})
		s.entities[event.ItemID] = e
	case puzzlebox.EventDestroy:
		if e, ok := s.entities[event.ItemID]; ok {
			s.world.Remove(e)
			delete(s.entities, event.ItemID)
		}
	case puzzlebox.EventGrab, puzzlebox.EventMove, puzzlebox.EventDrop:
		if e, ok := s.entities[event.ItemID]; ok && s.world.Valid(e) {
			d := Item.Get(s.world.Entry(e))
			d.X, d.Y = event.X, event.Y
			d.Grabbed = event.Grabbed
		}
	}
	ItemEventType.Publish(s.world, event)
}
