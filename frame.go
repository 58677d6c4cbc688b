package nodegraph

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Transform maps canvas space to screen space:
// screen = Origin + Pan + canvas*Zoom.
type Transform struct {
	Origin Vec2 // top-left of the editor canvas on screen
	Pan    Vec2
	Zoom   float64
}

// ToScreen converts a canvas point to screen space.
func (t Transform) ToScreen(p Vec2) Vec2 {
	return t.Origin.Add(t.Pan).Add(p.Scale(t.Zoom))
}

// ToCanvas converts a screen point to canvas space.
func (t Transform) ToCanvas(p Vec2) Vec2 {
	return p.Sub(t.Origin).Sub(t.Pan).Scale(1 / t.Zoom)
}

// RectToScreen converts a canvas rectangle to screen space.
func (t Transform) RectToScreen(r Rect) Rect {
	tl := t.ToScreen(r.Min())
	return Rect{X: tl.X, Y: tl.Y, Width: r.Width * t.Zoom, Height: r.Height * t.Zoom}
}

// NodeGeometry is the laid-out form of one declared node, in canvas space.
type NodeGeometry struct {
	ID       NodeID
	Rect     Rect
	TitleBar Rect // zero height when the node has no title
	Pins     []PinID
	Pinned   bool
	Style    NodeStyle

	title Content
}

// PinGeometry is one laid-out attribute.
type PinGeometry struct {
	ID     PinID
	Node   NodeID
	Kind   PinKind
	Shape  PinShape
	Rect   Rect // attribute content area
	Anchor Vec2 // connection point; meaningless for static attributes

	content Content
}

// Connectable reports whether links may attach to the pin.
func (p *PinGeometry) Connectable() bool { return p.Kind != PinStatic }

// LinkGeometry is one renderable link. Curve runs from the Output end to the
// Input end, whichever order the link was declared in.
type LinkGeometry struct {
	ID    LinkID
	Start PinID // as declared
	End   PinID
	Curve LinkCurve
	Style LinkStyle
}

// Geometry is everything the engine derived from one frame's declarations.
// It is a snapshot valid until the next Update.
type Geometry struct {
	Nodes     map[NodeID]*NodeGeometry
	Pins      map[PinID]*PinGeometry
	Links     []LinkGeometry
	Order     []NodeID // draw order, back to front
	Transform Transform
	Canvas    Rect
}

// NodeRect returns the canvas rectangle of id.
func (g *Geometry) NodeRect(id NodeID) (Rect, bool) {
	n, ok := g.Nodes[id]
	if !ok {
		return Rect{}, false
	}
	return n.Rect, true
}

// PinAnchor returns the canvas anchor of a connectable pin.
func (g *Geometry) PinAnchor(id PinID) (Vec2, bool) {
	p, ok := g.Pins[id]
	if !ok || !p.Connectable() {
		return Vec2{}, false
	}
	return p.Anchor, true
}

// Link returns the geometry of a link by id.
func (g *Geometry) Link(id LinkID) (LinkGeometry, bool) {
	for _, l := range g.Links {
		if l.ID == id {
			return l, true
		}
	}
	return LinkGeometry{}, false
}

// inCanvas reports whether a screen point lies inside the editor region.
func (g *Geometry) inCanvas(p Vec2) bool {
	return g.Canvas.Empty() || g.Canvas.ContainsPoint(p)
}

// DiagKind classifies a non-fatal declaration problem.
type DiagKind uint8

const (
	DiagDuplicateNode DiagKind = iota
	DiagDuplicatePin
	DiagDuplicateLink
)

// Diagnostic reports a declaration that was dropped during a frame.
type Diagnostic struct {
	Kind DiagKind
	Node NodeID
	Pin  PinID
	Link LinkID
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagDuplicateNode:
		return fmt.Sprintf("duplicate node id %d dropped", d.Node)
	case DiagDuplicatePin:
		return fmt.Sprintf("duplicate pin id %d on node %d dropped", d.Pin, d.Node)
	case DiagDuplicateLink:
		return fmt.Sprintf("duplicate link id %d dropped", d.Link)
	}
	return "unknown diagnostic"
}

// buildGeometry lays out one frame. First declaration of an id wins; later
// ones are dropped and reported. Links whose pins are missing or static are
// skipped. The only state mutation is lazy placement of unseen nodes.
func buildGeometry(s *GraphState, f *Frame, cfg *Config, st *Style, logger *log.Logger) (*Geometry, []Diagnostic) {
	g := &Geometry{
		Nodes:  make(map[NodeID]*NodeGeometry, len(f.Nodes)),
		Pins:   make(map[PinID]*PinGeometry),
		Canvas: f.Canvas,
		Transform: Transform{
			Origin: f.Canvas.Min(),
			Pan:    s.Pan(),
			Zoom:   s.Zoom(),
		},
	}
	var diags []Diagnostic

	for i := range f.Nodes {
		decl := &f.Nodes[i]
		if _, dup := g.Nodes[decl.ID]; dup {
			diags = append(diags, Diagnostic{Kind: DiagDuplicateNode, Node: decl.ID})
			logger.Warn("duplicate node id", "node", decl.ID)
			continue
		}
		var pos Vec2
		if decl.Origin != nil {
			pos = s.placeAt(decl.ID, *decl.Origin)
		} else {
			pos = s.PositionOf(decl.ID)
		}
		diags = layoutNode(g, decl, pos, st, diags, logger)
	}

	for _, id := range s.DepthOrder() {
		if _, ok := g.Nodes[id]; ok {
			g.Order = append(g.Order, id)
		}
	}

	seenLinks := make(map[LinkID]struct{}, len(f.Links))
	for _, decl := range f.Links {
		if _, dup := seenLinks[decl.ID]; dup {
			diags = append(diags, Diagnostic{Kind: DiagDuplicateLink, Link: decl.ID})
			logger.Warn("duplicate link id", "link", decl.ID)
			continue
		}
		seenLinks[decl.ID] = struct{}{}

		a, okA := g.Pins[decl.Start]
		b, okB := g.Pins[decl.End]
		if !okA || !okB || !a.Connectable() || !b.Connectable() {
			logger.Debug("link skipped", "link", decl.ID, "start", decl.Start, "end", decl.End)
			continue
		}
		from, to := a.Anchor, b.Anchor
		if a.Kind == PinInput && b.Kind == PinOutput {
			from, to = to, from
		}
		g.Links = append(g.Links, LinkGeometry{
			ID:    decl.ID,
			Start: decl.Start,
			End:   decl.End,
			Curve: NewLinkCurve(from, to, cfg.CurveMin, cfg.CurveMax),
			Style: decl.Style,
		})
	}
	return g, diags
}

func layoutNode(g *Geometry, decl *NodeDecl, pos Vec2, st *Style, diags []Diagnostic, logger *log.Logger) []Diagnostic {
	pad := st.NodePadding

	type kept struct {
		attr *AttributeDecl
		size Vec2
	}
	attrs := make([]kept, 0, len(decl.Attributes))
	local := make(map[PinID]struct{}, len(decl.Attributes))
	for i := range decl.Attributes {
		a := &decl.Attributes[i]
		_, seen := local[a.ID]
		if _, dup := g.Pins[a.ID]; dup || seen {
			diags = append(diags, Diagnostic{Kind: DiagDuplicatePin, Node: decl.ID, Pin: a.ID})
			logger.Warn("duplicate pin id", "pin", a.ID, "node", decl.ID)
			continue
		}
		local[a.ID] = struct{}{}
		attrs = append(attrs, kept{attr: a, size: contentSize(a.Content)})
	}

	title := contentSize(decl.Title)
	width := title.X
	bodyH := 0.0
	for i, k := range attrs {
		width = max(width, k.size.X)
		bodyH += k.size.Y
		if i > 0 {
			bodyH += st.AttributeSpacing
		}
	}

	titleH := 0.0
	if decl.Title != nil {
		titleH = title.Y + 2*pad.Y
	}
	w := width + 2*pad.X
	h := titleH + bodyH + 2*pad.Y

	ng := &NodeGeometry{
		ID:       decl.ID,
		Rect:     Rect{X: pos.X, Y: pos.Y, Width: w, Height: h},
		TitleBar: Rect{X: pos.X, Y: pos.Y, Width: w, Height: titleH},
		Pinned:   decl.Pinned,
		Style:    decl.Style,
		title:    decl.Title,
	}

	y := pos.Y + titleH + pad.Y
	for _, k := range attrs {
		r := Rect{X: pos.X + pad.X, Y: y, Width: width, Height: k.size.Y}
		pg := &PinGeometry{
			ID:      k.attr.ID,
			Node:    decl.ID,
			Kind:    k.attr.Kind,
			Shape:   k.attr.Shape,
			Rect:    r,
			content: k.attr.Content,
		}
		cy := r.Y + r.Height/2
		switch k.attr.Kind {
		case PinInput:
			pg.Anchor = Vec2{pos.X - st.PinOffset, cy}
		case PinOutput:
			pg.Anchor = Vec2{pos.X + w + st.PinOffset, cy}
		}
		g.Pins[pg.ID] = pg
		ng.Pins = append(ng.Pins, pg.ID)
		y += k.size.Y + st.AttributeSpacing
	}

	g.Nodes[decl.ID] = ng
	return diags
}

func contentSize(c Content) Vec2 {
	if c == nil {
		return Vec2{}
	}
	return c.Size()
}
