package puzzlebox

import "testing"

func TestPointerSurfaceRoundTrip(t *testing.T) {
	viewports := []Viewport{
		{Width: 1280, Height: 720},
		{Width: 1280, Height: 720, Scroll: Vec2{Y: 300}},
		{Width: 800, Height: 600, Origin: Vec2{X: 240, Y: 64}, Scroll: Vec2{X: 12, Y: 950}},
	}
	points := []Vec2{{0, 0}, {640, 360}, {-15.5, 2048.25}}

	for _, vp := range viewports {
		for _, p := range points {
			if got := SurfaceToViewport(PointerToSurface(p, vp), vp); got != p {
				t.Errorf("round trip of %v through %+v = %v", p, vp, got)
			}
			if got := PointerToSurface(SurfaceToViewport(p, vp), vp); got != p {
				t.Errorf("reverse round trip of %v through %+v = %v", p, vp, got)
			}
		}
	}
}

func TestPointerToSurface(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Origin: Vec2{X: 100, Y: 50}, Scroll: Vec2{Y: 200}}
	got := PointerToSurface(Vec2{X: 150, Y: 60}, vp)
	if want := (Vec2{X: 50, Y: 210}); got != want {
		t.Errorf("PointerToSurface = %v, want %v", got, want)
	}
}

func TestViewportVisibleSurface(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480, Origin: Vec2{X: 20}, Scroll: Vec2{Y: 100}}
	if got, want := vp.VisibleSurface(), (Rect{X: -20, Y: 100, Width: 640, Height: 480}); got != want {
		t.Errorf("VisibleSurface = %v, want %v", got, want)
	}
	if got, want := vp.ToViewport(Rect{X: 0, Y: 100, Width: 10, Height: 10}), (Rect{X: 20, Y: 0, Width: 10, Height: 10}); got != want {
		t.Errorf("ToViewport = %v, want %v", got, want)
	}
}
