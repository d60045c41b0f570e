package puzzlebox

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawDraggingAlpha is applied to an item while it follows the pointer.
const drawDraggingAlpha = 0.85

// drawCommand is one item to draw this frame.
type drawCommand struct {
	place Placement
	img   *ebiten.Image
	seq   int // placement order, for stable sorting
}

// EbitenSurface is the Surface that draws items with ebiten. Images are
// registered by reference; an item whose image is unknown is drawn as a
// solid box in Fill.
type EbitenSurface struct {
	images  map[string]*ebiten.Image
	placed  map[string]*drawCommand
	nextSeq int

	// Fill is the color of items without a registered image.
	Fill Color

	commands []drawCommand
	sortBuf  []drawCommand
	pixel    *ebiten.Image
}

// NewEbitenSurface creates an empty surface.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		images: make(map[string]*ebiten.Image),
		placed: make(map[string]*drawCommand),
		Fill:   Color{R: 0.6, G: 0.6, B: 0.6, A: 1},
	}
}

// RegisterImage makes img available to items whose Image is ref.
func (e *EbitenSurface) RegisterImage(ref string, img *ebiten.Image) {
	e.images[ref] = img
	for _, c := range e.placed {
		if c.place.Image == ref {
			c.img = img
		}
	}
}

// LoadImages decodes each ref from fsys (PNG or JPEG) and registers it.
func (e *EbitenSurface) LoadImages(fsys fs.FS, refs ...string) error {
	for _, ref := range refs {
		f, err := fsys.Open(ref)
		if err != nil {
			return fmt.Errorf("open image %s: %w", ref, err)
		}
		src, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("decode image %s: %w", ref, err)
		}
		e.RegisterImage(ref, ebiten.NewImageFromImage(src))
	}
	return nil
}

// Place records or updates an item placement.
func (e *EbitenSurface) Place(p Placement) {
	c, ok := e.placed[p.ID]
	if !ok {
		e.nextSeq++
		c = &drawCommand{seq: e.nextSeq}
		e.placed[p.ID] = c
	}
	c.place = p
	c.img = e.images[p.Image]
}

// Remove forgets an item.
func (e *EbitenSurface) Remove(id string) {
	delete(e.placed, id)
}

// NaturalSize is the registered image size for the item, if it has one.
func (e *EbitenSurface) NaturalSize(id string) (Vec2, bool) {
	c, ok := e.placed[id]
	if !ok || c.img == nil {
		return Vec2{}, false
	}
	b := c.img.Bounds()
	return Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}, true
}

// Draw renders every visible placement that intersects the viewport, bottom
// to top.
func (e *EbitenSurface) Draw(screen *ebiten.Image, vp Viewport) {
	e.buildCommands(vp)
	e.mergeSort()

	for i := range e.commands {
		e.drawOne(screen, &e.commands[i], vp)
	}
}

func (e *EbitenSurface) buildCommands(vp Viewport) {
	e.commands = e.commands[:0]
	visible := vp.VisibleSurface()
	for _, c := range e.placed {
		if !c.place.Visible {
			continue
		}
		if !visible.Intersects(e.bounds(c)) {
			continue
		}
		e.commands = append(e.commands, *c)
	}
}

func (e *EbitenSurface) bounds(c *drawCommand) Rect {
	size := c.place.Size
	if !c.place.HasSize && c.img != nil {
		b := c.img.Bounds()
		size = Vec2{X: float64(b.Dx()), Y: float64(b.Dy())}
	}
	return Rect{X: c.place.Position.X, Y: c.place.Position.Y, Width: size.X, Height: size.Y}
}

func (e *EbitenSurface) drawOne(screen *ebiten.Image, c *drawCommand, vp Viewport) {
	r := e.bounds(c)
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	at := SurfaceToViewport(c.place.Position, vp)

	img := c.img
	op := &ebiten.DrawImageOptions{}
	if img == nil {
		img = e.whitePixel()
		op.ColorScale.ScaleWithColor(e.Fill.toRGBA())
	}
	b := img.Bounds()
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(at.X, at.Y)
	if c.place.Dragging {
		op.ColorScale.ScaleAlpha(drawDraggingAlpha)
	}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (e *EbitenSurface) whitePixel() *ebiten.Image {
	if e.pixel == nil {
		e.pixel = ebiten.NewImage(1, 1)
		e.pixel.Fill(ColorWhite.toRGBA())
	}
	return e.pixel
}

// --- Merge sort ---

// commandLessOrEqual orders by z-index, then placement order. Using <= for
// seq keeps the sort stable.
func commandLessOrEqual(a, b drawCommand) bool {
	if a.place.ZIndex != b.place.ZIndex {
		return a.place.ZIndex < b.place.ZIndex
	}
	return a.seq <= b.seq
}

// mergeSort sorts e.commands in place using e.sortBuf as scratch space.
// Bottom-up merge sort: no allocations once the buffer reaches its high-water
// mark.
func (e *EbitenSurface) mergeSort() {
	n := len(e.commands)
	if n <= 1 {
		return
	}
	if cap(e.sortBuf) < n {
		e.sortBuf = make([]drawCommand, n)
	}
	e.sortBuf = e.sortBuf[:n]

	a, b := e.commands, e.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(e.commands, e.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) of src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
