package puzzlebox

import "slices"

// Overlaps reports whether two boxes overlap using the separating axis test.
// Boxes that only share an edge overlap. Overlaps(a, b) == Overlaps(b, a).
func Overlaps(a, b Rect) bool {
	return a.Intersects(b)
}

// checkCollisions tests the dragged item's box against every watched target
// and runs the reaction for each overlap. Targets are resolved by id at the
// moment of use; destroyed targets are skipped. Repeat firing while the boxes
// keep overlapping is left to the reactions to guard against.
func (s *Scene) checkCollisions(dragged *Item) {
	if len(dragged.watch) == 0 {
		return
	}
	// Reactions may edit the watch-list.
	watch := slices.Clone(dragged.watch)

	for _, w := range watch {
		if dragged.destroyed {
			return
		}
		target, ok := s.registry.items[w.targetID]
		if !ok || target == dragged {
			continue
		}
		if !Overlaps(dragged.Bounds(), target.Bounds()) {
			continue
		}
		s.fireCollide(CollisionContext{Scene: s, Dragged: dragged, Target: target}, w.react)
	}
}
