package nodegraph

import "math"

// Painter is the drawing surface the editor renders onto. All coordinates
// are in screen space. The ebitenui package implements it for Ebitengine.
type Painter interface {
	Line(a, b Vec2, c Color, width float64)
	Bezier(p0, p1, p2, p3 Vec2, c Color, width float64)
	FillRect(r Rect, c Color, rounding float64)
	StrokeRect(r Rect, c Color, rounding, width float64)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius float64, c Color, width float64)
	FillPolygon(pts []Vec2, c Color)
	StrokePolygon(pts []Vec2, c Color, width float64)
	// Text draws s with its top-left at pos, scaled by scale.
	Text(s string, pos Vec2, scale float64, c Color)
	// PushClip restricts drawing to r intersected with the current clip.
	PushClip(r Rect)
	PopClip()
}

// Draw paints the last frame's geometry: background and grid, links, nodes
// in depth order with their pins, the pending link, and the box selector.
// It does nothing before the first Update.
func (e *Editor) Draw(p Painter) {
	g := e.geo
	if g == nil {
		return
	}
	tr := g.Transform
	st := &e.style
	col := &st.Colors

	clipped := !g.Canvas.Empty()
	if clipped {
		p.PushClip(g.Canvas)
		p.FillRect(g.Canvas, col.GridBackground, 0)
		if st.Flags&StyleGridLines != 0 {
			drawGrid(p, g.Canvas, tr, st.GridSpacing, col.GridLine)
		}
	}

	for i := range g.Links {
		e.drawLink(p, &g.Links[i])
	}

	for _, id := range g.Order {
		e.drawNode(p, g.Nodes[id])
	}

	e.drawPendingLink(p)

	if d, ok := e.state.Drag(); ok && d.Kind == DragBoxSelect {
		box := RectFromPoints(d.Origin, d.Last)
		p.FillRect(box, col.BoxSelector, 0)
		p.StrokeRect(box, col.BoxSelectorOutline, 0, st.BoxSelectorLineWide)
	}

	if clipped {
		p.PopClip()
	}
}

func drawGrid(p Painter, canvas Rect, tr Transform, spacing float64, c Color) {
	step := spacing * tr.Zoom
	if step < 4 {
		return
	}
	ox := math.Mod(tr.Pan.X, step)
	oy := math.Mod(tr.Pan.Y, step)
	for x := canvas.X + ox; x < canvas.X+canvas.Width; x += step {
		p.Line(Vec2{x, canvas.Y}, Vec2{x, canvas.Y + canvas.Height}, c, 1)
	}
	for y := canvas.Y + oy; y < canvas.Y+canvas.Height; y += step {
		p.Line(Vec2{canvas.X, y}, Vec2{canvas.X + canvas.Width, y}, c, 1)
	}
}

func (e *Editor) drawLink(p Painter, l *LinkGeometry) {
	tr := e.geo.Transform
	st := &e.style

	c := st.Colors.Link
	if l.Style.Color != (Color{}) {
		c = l.Style.Color
	}
	switch {
	case e.state.IsLinkSelected(l.ID):
		c = st.Colors.LinkSelected
	case e.lastHover.HasLink && e.lastHover.Link == l.ID:
		c = st.Colors.LinkHovered
	}
	width := st.LinkThickness
	if l.Style.Thickness > 0 {
		width = l.Style.Thickness
	}
	cv := l.Curve
	p.Bezier(tr.ToScreen(cv.P0), tr.ToScreen(cv.P1), tr.ToScreen(cv.P2), tr.ToScreen(cv.P3), c, width*tr.Zoom)
}

func (e *Editor) drawNode(p Painter, n *NodeGeometry) {
	tr := e.geo.Transform
	st := &e.style
	col := &st.Colors
	hovered := e.lastHover.HasNode && e.lastHover.Node == n.ID
	selected := e.state.IsNodeSelected(n.ID)

	bg, title := col.NodeBackground, col.TitleBar
	if n.Style.Background != (Color{}) {
		bg = n.Style.Background
	}
	if n.Style.TitleBar != (Color{}) {
		title = n.Style.TitleBar
	}
	switch {
	case selected:
		bg, title = col.NodeBackgroundSelected, col.TitleBarSelected
	case hovered:
		bg, title = col.NodeBackgroundHovered, col.TitleBarHovered
	}

	rounding := st.NodeCornerRounding * tr.Zoom
	r := tr.RectToScreen(n.Rect)
	p.FillRect(r, bg, rounding)
	if n.TitleBar.Height > 0 {
		p.FillRect(tr.RectToScreen(n.TitleBar), title, rounding)
	}
	if st.Flags&StyleNodeOutline != 0 {
		p.StrokeRect(r, col.NodeOutline, rounding, st.NodeBorderWidth*tr.Zoom)
	}

	p.PushClip(r)
	if n.title != nil {
		inner := Rect{
			X:      n.TitleBar.X + st.NodePadding.X,
			Y:      n.TitleBar.Y + st.NodePadding.Y,
			Width:  n.TitleBar.Width - 2*st.NodePadding.X,
			Height: n.TitleBar.Height - 2*st.NodePadding.Y,
		}
		n.title.Draw(p, tr.RectToScreen(inner), tr.Zoom)
	}
	for _, id := range n.Pins {
		if pin := e.geo.Pins[id]; pin.content != nil {
			pin.content.Draw(p, tr.RectToScreen(pin.Rect), tr.Zoom)
		}
	}
	p.PopClip()

	for _, id := range n.Pins {
		if pin := e.geo.Pins[id]; pin.Connectable() {
			e.drawPin(p, pin)
		}
	}
}

func (e *Editor) drawPin(p Painter, pin *PinGeometry) {
	tr := e.geo.Transform
	st := &e.style
	c := st.Colors.Pin
	if e.lastHover.HasPin && e.lastHover.Pin == pin.ID {
		c = st.Colors.PinHovered
	}
	if id, ok := e.Snap(); ok && id == pin.ID {
		c = st.Colors.PinHovered
	}
	center := tr.ToScreen(pin.Anchor)
	line := st.PinLineThickness * tr.Zoom

	switch pin.Shape {
	case PinCircle:
		p.StrokeCircle(center, st.PinCircleRadius*tr.Zoom, c, line)
	case PinCircleFilled:
		p.FillCircle(center, st.PinCircleRadius*tr.Zoom, c)
	case PinQuad:
		p.StrokePolygon(quadPoints(center, st.PinQuadSideLength*tr.Zoom), c, line)
	case PinQuadFilled:
		p.FillPolygon(quadPoints(center, st.PinQuadSideLength*tr.Zoom), c)
	case PinTriangle:
		p.StrokePolygon(trianglePoints(center, st.PinTriangleSideLen*tr.Zoom), c, line)
	case PinTriangleFilled:
		p.FillPolygon(trianglePoints(center, st.PinTriangleSideLen*tr.Zoom), c)
	}
}

func quadPoints(c Vec2, side float64) []Vec2 {
	h := side / 2
	return []Vec2{{c.X - h, c.Y - h}, {c.X + h, c.Y - h}, {c.X + h, c.Y + h}, {c.X - h, c.Y + h}}
}

// trianglePoints returns a right-pointing equilateral triangle centred on c.
func trianglePoints(c Vec2, side float64) []Vec2 {
	left := -side * math.Sqrt(3) / 6
	right := side * math.Sqrt(3) / 3
	v := side / 2
	return []Vec2{{c.X + left, c.Y - v}, {c.X + right, c.Y}, {c.X + left, c.Y + v}}
}

func (e *Editor) drawPendingLink(p Painter) {
	pl, ok := e.state.PendingLink()
	if !ok {
		return
	}
	start, ok := e.geo.Pins[pl.StartPin]
	if !ok {
		return
	}
	end := pl.Pointer
	if id, ok := e.Snap(); ok {
		end = e.geo.Pins[id].Anchor
	}
	from, to := start.Anchor, end
	if start.Kind == PinInput {
		from, to = to, from
	}
	cv := NewLinkCurve(from, to, e.cfg.CurveMin, e.cfg.CurveMax)
	tr := e.geo.Transform
	p.Bezier(tr.ToScreen(cv.P0), tr.ToScreen(cv.P1), tr.ToScreen(cv.P2), tr.ToScreen(cv.P3),
		e.style.Colors.LinkHovered, e.style.LinkThickness*tr.Zoom)
}
