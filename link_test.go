package nodegraph

import (
	"math"
	"testing"
)

func TestNewLinkCurveControlPoints(t *testing.T) {
	tests := []struct {
		name   string
		p0, p3 Vec2
		k      float64
	}{
		{"far apart clamps to max", Vec2{0, 0}, Vec2{1000, 0}, 200},
		{"moderate uses half distance", Vec2{0, 0}, Vec2{200, 50}, 100},
		{"stacked clamps to min", Vec2{0, 0}, Vec2{10, 300}, 25},
		{"backwards uses absolute distance", Vec2{200, 0}, Vec2{0, 0}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLinkCurve(tt.p0, tt.p3, 25, 200)
			if want := (Vec2{tt.p0.X + tt.k, tt.p0.Y}); c.P1 != want {
				t.Errorf("P1 = %v, want %v", c.P1, want)
			}
			if want := (Vec2{tt.p3.X - tt.k, tt.p3.Y}); c.P2 != want {
				t.Errorf("P2 = %v, want %v", c.P2, want)
			}
		})
	}
}

func TestLinkCurveEvalEndpoints(t *testing.T) {
	c := NewLinkCurve(Vec2{10, 20}, Vec2{300, 150}, 25, 200)
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	if got := len(c.Points(16)); got != 17 {
		t.Errorf("len(Points(16)) = %d, want 17", got)
	}
}

func TestLinkCurveDistanceOnCurve(t *testing.T) {
	c := NewLinkCurve(Vec2{0, 0}, Vec2{300, 120}, 25, 200)
	mid := c.Eval(0.5)
	// With an even sample count t=0.5 is a polyline vertex.
	if d := c.Distance(mid, 32); d > 1e-9 {
		t.Errorf("Distance(Eval(0.5)) = %v, want ~0", d)
	}
	if _, ok := c.Hit(mid, 10, 1, 32); !ok {
		t.Error("Hit(Eval(0.5)) = false, want true")
	}
}

func TestLinkCurveHitRejectsFarPoint(t *testing.T) {
	c := NewLinkCurve(Vec2{0, 0}, Vec2{300, 120}, 25, 200)
	d, ok := c.Hit(Vec2{5000, -4000}, 10, 1, 32)
	if ok {
		t.Error("Hit far point = true, want false")
	}
	if !math.IsInf(d, 1) {
		t.Errorf("far point distance = %v, want +Inf from the box pre-check", d)
	}
}

func TestLinkCurveHitScalesWithZoom(t *testing.T) {
	// Horizontal link: the curve lies on y = 0.
	c := NewLinkCurve(Vec2{0, 0}, Vec2{400, 0}, 25, 200)
	p := Vec2{200, 8}

	tests := []struct {
		zoom float64
		want bool
	}{
		{1, true},    // 8 < 10
		{2, false},   // 8 >= 5
		{0.5, true},  // 8 < 20
		{0.75, true}, // 8 < 13.3
	}
	for _, tt := range tests {
		if _, got := c.Hit(p, 10, tt.zoom, 32); got != tt.want {
			t.Errorf("Hit at zoom %v = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestLinkCurveOverlapsRect(t *testing.T) {
	c := NewLinkCurve(Vec2{0, 0}, Vec2{400, 0}, 25, 200)

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"contains a sample", Rect{190, -5, 20, 10}, true},
		{"crossed between samples", Rect{201, -5, 1, 10}, true},
		{"above", Rect{100, -50, 100, 20}, false},
		{"beyond the end", Rect{500, -5, 20, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.OverlapsRect(tt.r, 32); got != tt.want {
				t.Errorf("OverlapsRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
