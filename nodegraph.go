package nodegraph

import "math"

// NodeID identifies a node. IDs are supplied by the caller and should be
// stable across frames for the same logical node.
type NodeID int

// PinID identifies an attribute (pin). Pin IDs must be unique across all
// nodes of a frame, not just within their owning node.
type PinID int

// LinkID identifies a link between two pins.
type LinkID int

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the rectangle spanned by two corners in any order.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// rgba8 builds a Color from 8-bit channel values.
func rgba8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// PinKind is the connection role of an attribute.
type PinKind uint8

const (
	PinStatic PinKind = iota // not connectable
	PinInput                 // connects to outputs of other nodes; anchored on the left border
	PinOutput                // connects to inputs of other nodes; anchored on the right border
)

// String returns the kind name.
func (k PinKind) String() string {
	switch k {
	case PinInput:
		return "input"
	case PinOutput:
		return "output"
	default:
		return "static"
	}
}

// PinShape selects how a pin is drawn. It does not affect hit-testing.
type PinShape uint8

const (
	PinCircleFilled PinShape = iota // default
	PinCircle
	PinTriangle
	PinTriangleFilled
	PinQuad
	PinQuadFilled
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every modifier in want is held. A zero want never
// matches, so a zero-valued modifier setting disables the feature it guards.
func (m KeyModifiers) Has(want KeyModifiers) bool {
	return want != 0 && m&want == want
}

// EventType identifies a kind of editor output event.
type EventType uint8

const (
	EventLinkCreated          EventType = iota // a new link was drawn between two compatible pins
	EventLinkDestroyed                         // the user deleted or detached a link
	EventNodeDeleteRequested                   // the user asked to delete a node
	EventNodeSelectionChanged                  // the set of selected nodes changed
	EventLinkSelectionChanged                  // the set of selected links changed
	EventHoveredNode                           // the hovered node changed
	EventHoveredLink                           // the hovered link changed
	EventHoveredPin                            // the hovered pin changed
)

var eventTypeNames = [...]string{
	"LinkCreated",
	"LinkDestroyed",
	"NodeDeleteRequested",
	"NodeSelectionChanged",
	"LinkSelectionChanged",
	"HoveredNode",
	"HoveredLink",
	"HoveredPin",
}

// String returns the event type name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event is one output of a frame. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// LinkCreated: Start is always the Output pin and End the Input pin.
	Start PinID
	End   PinID

	// LinkDestroyed, HoveredLink.
	Link LinkID
	// NodeDeleteRequested, HoveredNode.
	Node NodeID
	// HoveredPin.
	Pin PinID
	// Hovered* events: false when the pointer left the element and nothing
	// of that kind is hovered now.
	Present bool

	// Selection change events carry the full new selection, sorted.
	Nodes []NodeID
	Links []LinkID
}
