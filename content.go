package nodegraph

// Content is the caller-owned body of a title bar or attribute. The engine
// only measures it before layout and invokes Draw during the draw pass.
type Content interface {
	// Size returns the intrinsic size in canvas units.
	Size() Vec2
	// Draw paints the content inside bounds (screen space) at the given zoom.
	Draw(p Painter, bounds Rect, zoom float64)
}

// TextMeasurer reports the size of a string at unit zoom.
type TextMeasurer interface {
	MeasureText(s string) Vec2
}

// ContentFunc adapts a size and a draw function to Content.
type ContentFunc struct {
	W, H   float64
	DrawFn func(p Painter, bounds Rect, zoom float64)
}

// Size implements Content.
func (c ContentFunc) Size() Vec2 { return Vec2{c.W, c.H} }

// Draw implements Content.
func (c ContentFunc) Draw(p Painter, bounds Rect, zoom float64) {
	if c.DrawFn != nil {
		c.DrawFn(p, bounds, zoom)
	}
}

type label struct {
	text  string
	size  Vec2
	color Color
}

// Label returns a text content. A nil measurer falls back to a fixed-width
// estimate of 7x13 per rune.
func Label(text string, m TextMeasurer) Content {
	var size Vec2
	if m != nil {
		size = m.MeasureText(text)
	} else {
		size = Vec2{float64(len([]rune(text))) * 7, 13}
	}
	return &label{text: text, size: size, color: DarkPalette().Text}
}

// ColoredLabel is Label with an explicit text colour.
func ColoredLabel(text string, m TextMeasurer, c Color) Content {
	l := Label(text, m).(*label)
	l.color = c
	return l
}

func (l *label) Size() Vec2 { return l.size }

func (l *label) Draw(p Painter, bounds Rect, zoom float64) {
	p.Text(l.text, Vec2{bounds.X, bounds.Y}, zoom, l.color)
}

// Spacer returns an empty content of the given size.
func Spacer(size Vec2) Content {
	return ContentFunc{W: size.X, H: size.Y}
}

// NodeStyle overrides per-node colours. Zero colours fall back to the editor
// style.
type NodeStyle struct {
	Background Color
	TitleBar   Color
}

// LinkStyle overrides per-link drawing. Zero values fall back to the editor
// style.
type LinkStyle struct {
	Color     Color
	Thickness float64
}

// AttributeDecl declares one attribute of a node.
type AttributeDecl struct {
	ID      PinID
	Kind    PinKind
	Shape   PinShape
	Content Content
}

// NodeDecl declares one node for the current frame.
type NodeDecl struct {
	ID         NodeID
	Title      Content // nil for no title bar
	Attributes []AttributeDecl

	// Origin sets the canvas position the first time the node is seen.
	// Later frames ignore it.
	Origin *Vec2
	// Pinned nodes are never moved by drags.
	Pinned bool
	Style  NodeStyle
}

// LinkDecl declares an existing link. Links are trusted as given; the editor
// only checks pin compatibility for links it creates itself.
type LinkDecl struct {
	ID         LinkID
	Start, End PinID
	Style      LinkStyle
}

// Frame is one frame's worth of declarations.
type Frame struct {
	// Canvas is the screen region the editor occupies. A zero-sized canvas is
	// treated as unbounded.
	Canvas Rect
	Nodes  []NodeDecl
	Links  []LinkDecl
}

// Input is the pointer and keyboard state for one frame. Pointer is in
// screen space.
type Input struct {
	Pointer             Vec2
	Left, Middle, Right bool
	Modifiers           KeyModifiers
	Delete              bool    // delete key pressed this frame
	Wheel               float64 // vertical wheel notches; positive zooms in
	DeltaTime           float32 // seconds since the previous frame
}

func (in Input) button(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return in.Left
	case MouseButtonMiddle:
		return in.Middle
	case MouseButtonRight:
		return in.Right
	}
	return false
}
