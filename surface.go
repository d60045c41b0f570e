package puzzlebox

import "github.com/hajimehoshi/ebiten/v2"

// Placement is everything a surface needs to show one item. Positions are in
// surface space.
type Placement struct {
	ID        string
	Image     string
	Alt       string
	Position  Vec2
	Size      Vec2
	HasSize   bool
	ZIndex    int
	Visible   bool
	Grabbable bool
	Dragging  bool
}

// Surface is the rendering collaborator. The scene calls Place whenever an
// item's placement changes and Remove when it is destroyed. NaturalSize
// supplies the box of items without an explicit size.
type Surface interface {
	Place(p Placement)
	Remove(id string)
	NaturalSize(id string) (Vec2, bool)
}

// drawer is implemented by surfaces that render through ebiten.
type drawer interface {
	Draw(screen *ebiten.Image, vp Viewport)
}
