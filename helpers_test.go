package nodegraph

import "testing"

// attrSize is the content size used by test attributes. With the default
// style a title-less node with one attribute is 96x36 and its pins sit at
// y = origin.Y + 18.
var attrSize = Vec2{80, 20}

func at(x, y float64) *Vec2 { return &Vec2{x, y} }

func attr(id PinID, kind PinKind) AttributeDecl {
	return AttributeDecl{ID: id, Kind: kind, Content: Spacer(attrSize)}
}

func node(id NodeID, origin *Vec2, attrs ...AttributeDecl) NodeDecl {
	return NodeDecl{ID: id, Origin: origin, Attributes: attrs}
}

// twoNodes is node 1 at (0,0) with Output pin 2 (anchor (96,18)) and node 3
// at (300,0) with Input pin 5 (anchor (300,18)).
func twoNodes(links ...LinkDecl) Frame {
	return Frame{
		Nodes: []NodeDecl{
			node(1, at(0, 0), attr(2, PinOutput)),
			node(3, at(300, 0), attr(5, PinInput)),
		},
		Links: links,
	}
}

// driver feeds one frame of input at a time to an editor.
type driver struct {
	t     *testing.T
	ed    *Editor
	frame Frame
	in    Input
}

func newDriver(t *testing.T, cfg Config, f Frame) *driver {
	t.Helper()
	d := &driver{t: t, ed: New(cfg), frame: f}
	d.step()
	return d
}

func (d *driver) step() *Result {
	return d.ed.Update(d.frame, d.in)
}

func (d *driver) move(x, y float64) *Result {
	d.in.Pointer = Vec2{x, y}
	return d.step()
}

func (d *driver) press(x, y float64) *Result {
	d.in.Pointer = Vec2{x, y}
	d.in.Left = true
	return d.step()
}

func (d *driver) release(x, y float64) *Result {
	d.in.Pointer = Vec2{x, y}
	d.in.Left = false
	return d.step()
}

// drag presses at from, moves halfway, moves to to, and releases there.
// It returns the results of the release frame.
func (d *driver) drag(from, to Vec2) *Result {
	d.press(from.X, from.Y)
	d.move((from.X+to.X)/2, (from.Y+to.Y)/2)
	d.move(to.X, to.Y)
	return d.release(to.X, to.Y)
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

// recordingPainter counts draw calls by kind.
type recordingPainter struct {
	calls  map[string]int
	texts  []string
	clips  int
	maxDep int
}

func newRecorder() *recordingPainter {
	return &recordingPainter{calls: make(map[string]int)}
}

func (r *recordingPainter) Line(a, b Vec2, c Color, w float64) { r.calls["Line"]++ }
func (r *recordingPainter) Bezier(p0, p1, p2, p3 Vec2, c Color, w float64) {
	r.calls["Bezier"]++
}
func (r *recordingPainter) FillRect(rc Rect, c Color, rounding float64) { r.calls["FillRect"]++ }
func (r *recordingPainter) StrokeRect(rc Rect, c Color, rounding, w float64) {
	r.calls["StrokeRect"]++
}
func (r *recordingPainter) FillCircle(center Vec2, radius float64, c Color) { r.calls["FillCircle"]++ }
func (r *recordingPainter) StrokeCircle(center Vec2, radius float64, c Color, w float64) {
	r.calls["StrokeCircle"]++
}
func (r *recordingPainter) FillPolygon(pts []Vec2, c Color)             { r.calls["FillPolygon"]++ }
func (r *recordingPainter) StrokePolygon(pts []Vec2, c Color, w float64) { r.calls["StrokePolygon"]++ }
func (r *recordingPainter) Text(s string, pos Vec2, scale float64, c Color) {
	r.calls["Text"]++
	r.texts = append(r.texts, s)
}
func (r *recordingPainter) PushClip(rc Rect) {
	r.clips++
	r.maxDep = max(r.maxDep, r.clips)
}
func (r *recordingPainter) PopClip() { r.clips-- }
