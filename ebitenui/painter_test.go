package ebitenui

import (
	"image/color"
	"math"
	"testing"

	"github.com/phanxgames/nodegraph"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   nodegraph.Color
		want color.RGBA
	}{
		{"opaque white", nodegraph.Color{R: 1, G: 1, B: 1, A: 1}, color.RGBA{255, 255, 255, 255}},
		{"half red premultiplied", nodegraph.Color{R: 1, A: 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", nodegraph.Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
		{"transparent", nodegraph.Color{R: 1, G: 1, B: 1}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRGBA(tt.in); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		name   string
		a, b   nodegraph.Vec2
		nx, ny float64
	}{
		{"right", nodegraph.Vec2{}, nodegraph.Vec2{X: 5}, 0, 1},
		{"down", nodegraph.Vec2{}, nodegraph.Vec2{Y: 3}, -1, 0},
		{"degenerate", nodegraph.Vec2{X: 2, Y: 2}, nodegraph.Vec2{X: 2, Y: 2}, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := perpendicular(tt.a, tt.b)
			if math.Abs(nx-tt.nx) > 1e-12 || math.Abs(ny-tt.ny) > 1e-12 {
				t.Errorf("perpendicular = (%v, %v), want (%v, %v)", nx, ny, tt.nx, tt.ny)
			}
		})
	}
}

func TestRoundedRectPointsInsideRect(t *testing.T) {
	r := nodegraph.Rect{X: 10, Y: 20, Width: 100, Height: 40}
	pts := roundedRectPoints(r, 8)
	if len(pts) != 4*(cornerSegments+1) {
		t.Fatalf("len(pts) = %d, want %d", len(pts), 4*(cornerSegments+1))
	}
	grown := r.Expand(1e-9)
	for _, p := range pts {
		if !grown.ContainsPoint(p) {
			t.Errorf("point %v outside %v", p, r)
		}
	}
	// First point is the top edge right after the top-right corner begins.
	if first := pts[0]; math.Abs(first.Y-r.Y) > 1e-9 || math.Abs(first.X-(r.X+r.Width-8)) > 1e-9 {
		t.Errorf("first point = %v, want (102, 20)", first)
	}
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	r := nodegraph.Rect{Width: 10, Height: 4}
	pts := roundedRectPoints(r, 50)
	for _, p := range pts {
		if p.Y < -1e-9 || p.Y > 4+1e-9 {
			t.Errorf("point %v escapes a 4px tall rect", p)
		}
	}
}

func TestDefaultFontMeasure(t *testing.T) {
	f := DefaultFont()
	if f != DefaultFont() {
		t.Error("DefaultFont is not cached")
	}
	short := f.MeasureText("ab")
	long := f.MeasureText("abcdef")
	if short.X <= 0 || long.X <= short.X {
		t.Errorf("widths = %v, %v, want positive and growing", short.X, long.X)
	}
	if short.Y <= 0 || f.LineHeight() <= 0 {
		t.Errorf("height = %v, line height = %v, want positive", short.Y, f.LineHeight())
	}
	if got := f.Label("ab").Size(); got != short {
		t.Errorf("Label size = %v, want %v", got, short)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("LoadFont accepted garbage")
	}
}
