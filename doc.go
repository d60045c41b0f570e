// Package puzzlebox is a point-and-click puzzle scene engine for [Ebitengine].
//
// A [Scene] holds interactive items on a scrollable surface. Items can be
// grabbed and dragged with the pointer, react to overlapping other items, and
// be spawned or destroyed by those reactions. In-world code pads (a rotary
// phone, a door keypad) hash what the player types and look the result up in
// a [CodeTable] to decide what to show.
//
// # Quick start
//
//	scene := puzzlebox.NewScene()
//
//	rock := puzzlebox.NewItem("small_rock", 200, 300)
//	rock.Image = "rock.png"
//	rock.Watch("entrance_button", func(ctx puzzlebox.CollisionContext) {
//		ctx.Scene.Destroy("entrance_button")
//		ctx.Scene.Spawn(puzzlebox.NewItem("bunker_hatch", 600, 320))
//	})
//	scene.Spawn(rock)
//
//	puzzlebox.Run(scene, puzzlebox.RunConfig{Title: "Bunker"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Coordinates
//
// Pointer positions are in viewport space (window pixels). Item positions
// are in surface space, anchored to the scrollable document. See
// [PointerToSurface] and [SurfaceToViewport].
//
// # Items and dragging
//
// Pointer-down on an item fires OnFirstGrabbed (once per item lifetime) and
// then OnGrabbed. Grabbable items then follow the pointer, keeping the offset
// at which they were picked up, until pointer-up fires OnFirstDropped and
// OnDropped. Destroying a grabbed item, or scrolling under the default
// [ScrollForceDrop] policy, drops it first with [GrabContext].Forced set.
//
// # Code pads
//
// [Scene.NewCodePad] creates a pad with a [CodeFormat]. A full submission is
// hashed with [HashCode]; tables whose entry holds several responses walk
// through them on repeated submissions and stay on the last one.
//
// # Configuration
//
// Scenes can be described in YAML and loaded with [LoadSceneConfig]. The
// optional ECS bridge in puzzlebox/ecs forwards item events to [Donburi].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package puzzlebox
