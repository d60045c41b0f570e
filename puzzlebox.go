package puzzlebox

import (
	"fmt"
	"image/color"
	"strings"
)

// BaseWidth and BaseHeight are the surface size scenes are authored for.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill for items drawn without an image.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// EventType identifies a kind of item event.
type EventType uint8

const (
	EventSpawn   EventType = iota // item entered the registry
	EventDestroy                  // item left the registry
	EventGrab                     // pointer went down on an item
	EventDrop                     // a grabbed item was released
	EventMove                     // a grabbed item followed the pointer
	EventHover                    // pointer entered an item
	EventCollide                  // a dragged item overlapped a watched item
	EventSubmit                   // a code pad accepted a full input
)

var eventNames = [...]string{"spawn", "destroy", "grab", "drop", "move", "hover", "collide", "submit"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("EventType(%d)", e)
}

// DragState is the state of an item's drag state machine.
type DragState uint8

const (
	DragIdle    DragState = iota // not being dragged
	DragGrabbed                  // following the pointer
)

func (d DragState) String() string {
	if d == DragGrabbed {
		return "grabbed"
	}
	return "idle"
}

// ScrollPolicy selects what happens to a grabbed item when the viewport scrolls.
type ScrollPolicy uint8

const (
	ScrollForceDrop  ScrollPolicy = iota // end the drag as if the pointer was released
	ScrollCompensate                     // shift the item so it stays under the pointer
)

func (p ScrollPolicy) String() string {
	if p == ScrollCompensate {
		return "compensate"
	}
	return "force-drop"
}

// ParseScrollPolicy parses "force-drop" or "compensate". The empty string
// yields the default policy.
func ParseScrollPolicy(s string) (ScrollPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "force-drop", "forcedrop", "drop":
		return ScrollForceDrop, nil
	case "compensate":
		return ScrollCompensate, nil
	}
	return ScrollForceDrop, fmt.Errorf("unknown scroll policy %q", s)
}

// ContentKind selects how the popup collaborator shows a payload.
type ContentKind uint8

const (
	ContentNone   ContentKind = iota // nothing to show
	ContentText                      // plain text
	ContentImage                     // image asset reference
	ContentMarkup                    // custom markup rendered by the presenter
)

var contentNames = [...]string{"none", "text", "image", "markup"}

func (k ContentKind) String() string {
	if int(k) < len(contentNames) {
		return contentNames[k]
	}
	return fmt.Sprintf("ContentKind(%d)", k)
}

// ParseContentKind parses a content kind name. "html" is accepted as an
// alias for "markup".
func ParseContentKind(s string) (ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return ContentText, nil
	case "image", "img":
		return ContentImage, nil
	case "markup", "html":
		return ContentMarkup, nil
	case "none":
		return ContentNone, nil
	}
	return ContentNone, fmt.Errorf("unknown content kind %q", s)
}
