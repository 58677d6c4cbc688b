package ebitenui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/nodegraph"
)

const (
	bezierSegments = 32
	cornerSegments = 4
	circleSegments = 24
)

// --- White pixel singleton (single-threaded, like the game loop) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

var _ nodegraph.Painter = (*Painter)(nil)

// Painter draws onto an *ebiten.Image. Create one per frame with NewPainter
// or reuse it with Reset.
type Painter struct {
	screen *ebiten.Image
	clips  []image.Rectangle
	font   *Font

	verts []ebiten.Vertex
	inds  []uint16
}

// NewPainter returns a Painter targeting dst. Labels are drawn with font;
// nil uses DefaultFont.
func NewPainter(dst *ebiten.Image, font *Font) *Painter {
	if font == nil {
		font = DefaultFont()
	}
	return &Painter{screen: dst, font: font}
}

// Reset retargets the painter and clears the clip stack.
func (p *Painter) Reset(dst *ebiten.Image) {
	p.screen = dst
	p.clips = p.clips[:0]
}

// target returns the image clipped to the innermost clip rect.
func (p *Painter) target() *ebiten.Image {
	if len(p.clips) == 0 {
		return p.screen
	}
	return p.screen.SubImage(p.clips[len(p.clips)-1]).(*ebiten.Image)
}

// PushClip implements nodegraph.Painter.
func (p *Painter) PushClip(r nodegraph.Rect) {
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
	if len(p.clips) > 0 {
		rect = rect.Intersect(p.clips[len(p.clips)-1])
	} else {
		rect = rect.Intersect(p.screen.Bounds())
	}
	p.clips = append(p.clips, rect)
}

// PopClip implements nodegraph.Painter.
func (p *Painter) PopClip() {
	if len(p.clips) > 0 {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

func (p *Painter) clippedOut() bool {
	return len(p.clips) > 0 && p.clips[len(p.clips)-1].Empty()
}

// Line implements nodegraph.Painter.
func (p *Painter) Line(a, b nodegraph.Vec2, c nodegraph.Color, width float64) {
	if p.clippedOut() {
		return
	}
	vector.StrokeLine(p.target(), float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(width), toRGBA(c), true)
}

// Bezier implements nodegraph.Painter.
func (p *Painter) Bezier(p0, p1, p2, p3 nodegraph.Vec2, c nodegraph.Color, width float64) {
	curve := nodegraph.LinkCurve{P0: p0, P1: p1, P2: p2, P3: p3}
	p.stroke(curve.Points(bezierSegments), false, c, width)
}

// FillRect implements nodegraph.Painter.
func (p *Painter) FillRect(r nodegraph.Rect, c nodegraph.Color, rounding float64) {
	if p.clippedOut() {
		return
	}
	if rounding <= 0 {
		vector.DrawFilledRect(p.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			toRGBA(c), true)
		return
	}
	p.FillPolygon(roundedRectPoints(r, rounding), c)
}

// StrokeRect implements nodegraph.Painter.
func (p *Painter) StrokeRect(r nodegraph.Rect, c nodegraph.Color, rounding, width float64) {
	if p.clippedOut() {
		return
	}
	if rounding <= 0 {
		vector.StrokeRect(p.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			float32(width), toRGBA(c), true)
		return
	}
	p.StrokePolygon(roundedRectPoints(r, rounding), c, width)
}

// FillCircle implements nodegraph.Painter.
func (p *Painter) FillCircle(center nodegraph.Vec2, radius float64, c nodegraph.Color) {
	if p.clippedOut() {
		return
	}
	vector.DrawFilledCircle(p.target(), float32(center.X), float32(center.Y), float32(radius), toRGBA(c), true)
}

// StrokeCircle implements nodegraph.Painter.
func (p *Painter) StrokeCircle(center nodegraph.Vec2, radius float64, c nodegraph.Color, width float64) {
	if p.clippedOut() {
		return
	}
	vector.StrokeCircle(p.target(), float32(center.X), float32(center.Y), float32(radius),
		float32(width), toRGBA(c), true)
}

// FillPolygon implements nodegraph.Painter. Points must describe a convex
// polygon.
func (p *Painter) FillPolygon(pts []nodegraph.Vec2, c nodegraph.Color) {
	if len(pts) < 3 || p.clippedOut() {
		return
	}
	p.verts = p.verts[:0]
	p.inds = p.inds[:0]
	for _, pt := range pts {
		p.verts = append(p.verts, vertex(pt, c))
	}
	for i := 1; i < len(pts)-1; i++ {
		p.inds = append(p.inds, 0, uint16(i), uint16(i+1))
	}
	p.flush()
}

// StrokePolygon implements nodegraph.Painter.
func (p *Painter) StrokePolygon(pts []nodegraph.Vec2, c nodegraph.Color, width float64) {
	p.stroke(pts, true, c, width)
}

// Text implements nodegraph.Painter.
func (p *Painter) Text(s string, pos nodegraph.Vec2, scale float64, c nodegraph.Color) {
	if p.clippedOut() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(toRGBA(c))
	op.LineSpacing = p.font.lineHeight
	text.Draw(p.target(), s, p.font.face, op)
}

// stroke draws a polyline as one quad per segment.
func (p *Painter) stroke(pts []nodegraph.Vec2, closed bool, c nodegraph.Color, width float64) {
	if len(pts) < 2 || p.clippedOut() {
		return
	}
	p.verts = p.verts[:0]
	p.inds = p.inds[:0]
	half := width / 2
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		nx, ny := perpendicular(a, b)
		off := nodegraph.Vec2{X: nx * half, Y: ny * half}
		v := uint16(len(p.verts))
		p.verts = append(p.verts,
			vertex(a.Add(off), c), vertex(a.Sub(off), c),
			vertex(b.Add(off), c), vertex(b.Sub(off), c),
		)
		p.inds = append(p.inds, v, v+1, v+2, v+1, v+3, v+2)
	}
	p.flush()
}

func (p *Painter) flush() {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	p.target().DrawTriangles(p.verts, p.inds, ensureWhitePixel(), op)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b nodegraph.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// roundedRectPoints approximates a rounded rectangle with a convex polygon.
func roundedRectPoints(r nodegraph.Rect, radius float64) []nodegraph.Vec2 {
	radius = min(radius, r.Width/2, r.Height/2)
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + r.Width - radius, r.Y + radius, -math.Pi / 2},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, math.Pi / 2},
		{r.X + radius, r.Y + radius, math.Pi},
	}
	pts := make([]nodegraph.Vec2, 0, 4*(cornerSegments+1))
	for _, k := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := k.start + float64(i)/cornerSegments*math.Pi/2
			pts = append(pts, nodegraph.Vec2{X: k.cx + radius*math.Cos(a), Y: k.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

func vertex(p nodegraph.Vec2, c nodegraph.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0, SrcY: 0,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: float32(c.A),
	}
}

// toRGBA converts a straight-alpha colour to the premultiplied color.RGBA.
func toRGBA(c nodegraph.Color) color.RGBA {
	ch := func(f float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
	}
	return color.RGBA{R: ch(c.R * c.A), G: ch(c.G * c.A), B: ch(c.B * c.A), A: ch(c.A)}
}
