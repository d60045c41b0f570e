package puzzlebox

// Viewport is one snapshot of the window metrics pointer input is relative to.
//
// Pointer positions are in viewport space: (0, 0) is the top-left of the
// window. Item positions are in surface space: (0, 0) is the top-left of the
// interactive surface. Origin is the surface's top-left corner in document
// space and Scroll is how far the document is scrolled, so a surface point
// stays put in the document no matter how the viewport scrolls.
type Viewport struct {
	Width, Height float64
	Origin        Vec2
	Scroll        Vec2
}

// PointerToSurface converts a pointer position to surface space.
func PointerToSurface(p Vec2, vp Viewport) Vec2 {
	return Vec2{
		X: p.X + vp.Scroll.X - vp.Origin.X,
		Y: p.Y + vp.Scroll.Y - vp.Origin.Y,
	}
}

// SurfaceToViewport converts a surface position to viewport space. It is the
// inverse of PointerToSurface for the same snapshot.
func SurfaceToViewport(q Vec2, vp Viewport) Vec2 {
	return Vec2{
		X: q.X + vp.Origin.X - vp.Scroll.X,
		Y: q.Y + vp.Origin.Y - vp.Scroll.Y,
	}
}

// ToViewport converts a surface-space rectangle to viewport space.
func (vp Viewport) ToViewport(r Rect) Rect {
	p := SurfaceToViewport(r.Min(), vp)
	return Rect{X: p.X, Y: p.Y, Width: r.Width, Height: r.Height}
}

// VisibleSurface returns the part of the surface currently inside the window.
func (vp Viewport) VisibleSurface() Rect {
	p := PointerToSurface(Vec2{}, vp)
	return Rect{X: p.X, Y: p.Y, Width: vp.Width, Height: vp.Height}
}
