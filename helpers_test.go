package puzzlebox

import (
	"errors"
	"io"
	"log"
	"testing"
)

// fakeSurface records placements and reports explicit sizes as natural sizes.
type fakeSurface struct {
	placed  map[string]Placement
	removed []string
	natural map[string]Vec2
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{placed: make(map[string]Placement), natural: make(map[string]Vec2)}
}

func (f *fakeSurface) Place(p Placement) { f.placed[p.ID] = p }

func (f *fakeSurface) Remove(id string) {
	delete(f.placed, id)
	f.removed = append(f.removed, id)
}

func (f *fakeSurface) NaturalSize(id string) (Vec2, bool) {
	v, ok := f.natural[id]
	return v, ok
}

type presented struct {
	kind    ContentKind
	payload string
}

type recordingPresenter struct {
	got []presented
}

func (r *recordingPresenter) Present(kind ContentKind, payload string) {
	r.got = append(r.got, presented{kind, payload})
}

var errNoSound = errors.New("no such sound")

type recordingSound struct {
	played []string
	fail   bool
}

func (r *recordingSound) Play(ref string) error {
	r.played = append(r.played, ref)
	if r.fail {
		return errNoSound
	}
	return nil
}

// newTestScene returns a quiet scene drawing to a fakeSurface.
func newTestScene() *Scene {
	s := NewScene()
	s.SetLogger(log.New(io.Discard, "", 0))
	s.SetSurface(newFakeSurface())
	return s
}

func spawnBox(t *testing.T, s *Scene, id string, x, y, w, h float64) *Item {
	t.Helper()
	it := NewItem(id, x, y)
	it.SetSize(w, h)
	if err := s.Spawn(it); err != nil {
		t.Fatalf("Spawn(%q): %v", id, err)
	}
	return it
}
