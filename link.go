package nodegraph

import "math"

// LinkCurve is the cubic bezier drawn for a link, in canvas space. P0 is the
// Output end and P3 the Input end.
type LinkCurve struct {
	P0, P1, P2, P3 Vec2
}

// NewLinkCurve builds the curve between two anchors. The control points are
// pushed horizontally by k = clamp(0.5*|dx|, kMin, kMax) so the curve leaves
// the output to the right and enters the input from the left.
func NewLinkCurve(p0, p3 Vec2, kMin, kMax float64) LinkCurve {
	k := clamp(0.5*math.Abs(p3.X-p0.X), kMin, kMax)
	return LinkCurve{
		P0: p0,
		P1: Vec2{p0.X + k, p0.Y},
		P2: Vec2{p3.X - k, p3.Y},
		P3: p3,
	}
}

// Eval returns the point at parameter t in [0, 1].
func (c LinkCurve) Eval(t float64) Vec2 {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	return Vec2{
		X: w0*c.P0.X + w1*c.P1.X + w2*c.P2.X + w3*c.P3.X,
		Y: w0*c.P0.Y + w1*c.P1.Y + w2*c.P2.Y + w3*c.P3.Y,
	}
}

// Bounds returns the bounding box of the four control points, which always
// contains the curve.
func (c LinkCurve) Bounds() Rect {
	minX := math.Min(math.Min(c.P0.X, c.P1.X), math.Min(c.P2.X, c.P3.X))
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxX := math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Points samples the curve at n equal parameter steps, returning n+1 points.
func (c LinkCurve) Points(n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	return pts
}

// Distance returns the minimum distance from p to the n-step polyline
// approximation of the curve.
func (c LinkCurve) Distance(p Vec2, n int) float64 {
	if n < 1 {
		n = 1
	}
	best := math.Inf(1)
	prev := c.P0
	for i := 1; i <= n; i++ {
		cur := c.Eval(float64(i) / float64(n))
		if d := segmentDistSq(p, prev, cur); d < best {
			best = d
		}
		prev = cur
	}
	return math.Sqrt(best)
}

// Hit reports whether p is within threshold screen pixels of the curve at the
// given zoom, along with the distance in canvas units. Points outside the
// control-point box expanded by threshold/zoom are rejected without sampling.
func (c LinkCurve) Hit(p Vec2, threshold, zoom float64, n int) (float64, bool) {
	limit := threshold / zoom
	if !c.Bounds().Expand(limit).ContainsPoint(p) {
		return math.Inf(1), false
	}
	d := c.Distance(p, n)
	return d, d < limit
}

// OverlapsRect reports whether any part of the n-step polyline lies inside r.
func (c LinkCurve) OverlapsRect(r Rect, n int) bool {
	if !c.Bounds().Intersects(r) {
		return false
	}
	if n < 1 {
		n = 1
	}
	prev := c.P0
	if r.ContainsPoint(prev) {
		return true
	}
	for i := 1; i <= n; i++ {
		cur := c.Eval(float64(i) / float64(n))
		if r.ContainsPoint(cur) || segmentIntersectsRect(prev, cur, r) {
			return true
		}
		prev = cur
	}
	return false
}

func segmentDistSq(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.DistSq(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = clamp(t, 0, 1)
	return p.DistSq(a.Add(ab.Scale(t)))
}

// segmentIntersectsRect tests a segment against the four rect edges.
func segmentIntersectsRect(a, b Vec2, r Rect) bool {
	tl := r.Min()
	br := r.Max()
	tr := Vec2{br.X, tl.Y}
	bl := Vec2{tl.X, br.Y}
	return segmentsCross(a, b, tl, tr) || segmentsCross(a, b, tr, br) ||
		segmentsCross(a, b, br, bl) || segmentsCross(a, b, bl, tl)
}

func segmentsCross(p1, p2, q1, q2 Vec2) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0))
}

func cross(o, a, b Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
