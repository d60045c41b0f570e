// Package ecs provides ECS adapters for puzzlebox's item event system.
//
// The primary adapter is [NewDonburiStore], which bridges puzzlebox item
// events (spawn, destroy, grab, move, drop, hover, collide, submit) into a
// [Donburi] world as typed events, and mirrors each live item as an entity
// carrying the [Item] component. Subscribe to [ItemEventType] in your ECS
// systems to receive the events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
