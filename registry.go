package puzzlebox

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateID is returned when spawning an id that is already live.
	ErrDuplicateID = errors.New("duplicate item id")
	// ErrItemNotFound is returned when looking up an id that is not live.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemDestroyed is returned when spawning an item that was destroyed.
	ErrItemDestroyed = errors.New("item already destroyed")
	// ErrItemSpawned is returned when spawning an item that is already live.
	ErrItemSpawned = errors.New("item already spawned")
)

// Registry holds the live items keyed by id. It is the single source of truth
// for what exists in a scene. Only Scene.Spawn and Scene.Destroy mutate it.
type Registry struct {
	items map[string]*Item
	order []*Item // spawn order
}

func newRegistry() *Registry {
	return &Registry{items: make(map[string]*Item)}
}

// Len returns the number of live items.
func (r *Registry) Len() int {
	return len(r.order)
}

// Has reports whether id is live.
func (r *Registry) Has(id string) bool {
	_, ok := r.items[id]
	return ok
}

// Lookup returns the live item for id.
func (r *Registry) Lookup(id string) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", id, ErrItemNotFound)
	}
	return it, nil
}

// Items returns the live items in spawn order. The returned slice MUST NOT be
// mutated.
func (r *Registry) Items() []*Item {
	return r.order
}

func (r *Registry) insert(it *Item) error {
	if _, ok := r.items[it.id]; ok {
		return fmt.Errorf("spawn %q: %w", it.id, ErrDuplicateID)
	}
	r.items[it.id] = it
	r.order = append(r.order, it)
	return nil
}

func (r *Registry) remove(id string) *Item {
	it, ok := r.items[id]
	if !ok {
		return nil
	}
	delete(r.items, id)
	if i := slices.Index(r.order, it); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return it
}

// paintOrder appends the live items to buf sorted bottom to top: by z-index,
// then by spawn order.
func (r *Registry) paintOrder(buf []*Item) []*Item {
	buf = append(buf[:0], r.order...)
	slices.SortStableFunc(buf, func(a, b *Item) int {
		return a.zIndex - b.zIndex
	})
	return buf
}

// hitTest returns the topmost visible item containing the surface point p.
func (s *Scene) hitTest(p Vec2) *Item {
	s.hitBuf = s.registry.paintOrder(s.hitBuf)
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		it := s.hitBuf[i]
		if it.visible && it.Bounds().Contains(p.X, p.Y) {
			return it
		}
	}
	return nil
}

// Spawn makes an item live: it is added to the registry, placed on the
// surface and becomes hit-testable.
func (s *Scene) Spawn(it *Item) error {
	switch {
	case it.destroyed:
		return s.misuse(fmt.Errorf("spawn %q: %w", it.id, ErrItemDestroyed))
	case it.scene != nil:
		return s.misuse(fmt.Errorf("spawn %q: %w", it.id, ErrItemSpawned))
	}
	if err := s.registry.insert(it); err != nil {
		return s.misuse(err)
	}
	it.scene = s
	it.place()
	s.debugf("spawn %q at (%.0f, %.0f)", it.id, it.pos.X, it.pos.Y)
	s.emit(ItemEvent{Type: EventSpawn, ItemID: it.id, X: it.pos.X, Y: it.pos.Y})
	return nil
}

// Lookup returns the live item for id. Looking up an id that is not live is a
// scene-definition bug; in debug mode it panics.
func (s *Scene) Lookup(id string) (*Item, error) {
	it, err := s.registry.Lookup(id)
	if err != nil {
		return nil, s.misuse(err)
	}
	return it, nil
}

// Has reports whether id is live, without treating absence as an error.
func (s *Scene) Has(id string) bool {
	return s.registry.Has(id)
}

// Items returns the live items in spawn order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Items() []*Item {
	return s.registry.Items()
}

// Destroy removes an item from the scene. A grabbed item is dropped first, so
// its drop callbacks run before removal. Destroying an id that is not live is
// a no-op.
func (s *Scene) Destroy(id string) {
	it, ok := s.registry.items[id]
	if !ok {
		s.debugf("destroy %q: not live", id)
		return
	}
	if it.Grabbed() {
		s.dropItem(it, it.drag.pointer, true)
		// The drop callbacks may have destroyed it already.
		if it.destroyed {
			return
		}
	}

	s.registry.remove(id)
	it.destroyed = true
	it.ClearWatch()
	if s.captured == it {
		s.captured = nil
	}
	if s.hover == it {
		s.hover = nil
	}
	s.surface.Remove(id)
	s.debugf("destroy %q", id)
	s.emit(ItemEvent{Type: EventDestroy, ItemID: id, X: it.pos.X, Y: it.pos.Y})
}
