package nodegraph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// navAnim holds active tweens for pan X, pan Y, and zoom.
type navAnim struct {
	tweenX, tweenY, tweenZ *gween.Tween
	doneX, doneY, doneZ    bool
}

// ScrollTo animates the pan so the canvas point p ends up at the centre of
// the editor canvas. A non-positive duration jumps immediately.
func (e *Editor) ScrollTo(p Vec2, duration float32, easeFn ease.TweenFunc) {
	z := e.state.Zoom()
	e.animateTo(e.panCentering(p, z), z, duration, easeFn)
}

// ZoomTo animates the zoom factor, keeping the canvas point at the centre of
// the editor fixed. The target is clamped to the zoom bounds.
func (e *Editor) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	lo, hi := e.state.ZoomBounds()
	z = clamp(z, lo, hi)
	center := e.transform().ToCanvas(e.canvasCenter())
	e.animateTo(e.panCentering(center, z), z, duration, easeFn)
}

// FrameNodes animates pan and zoom so every node of the last frame fits in
// the editor canvas. It does nothing before the first frame or when no nodes
// were declared.
func (e *Editor) FrameNodes(duration float32, easeFn ease.TweenFunc) {
	if e.geo == nil || len(e.geo.Order) == 0 || e.canvas.Empty() {
		return
	}
	bounds := e.geo.Nodes[e.geo.Order[0]].Rect
	for _, id := range e.geo.Order[1:] {
		bounds = bounds.Union(e.geo.Nodes[id].Rect)
	}
	bounds = bounds.Expand(e.style.GridSpacing)

	z := min(e.canvas.Width/bounds.Width, e.canvas.Height/bounds.Height)
	lo, hi := e.state.ZoomBounds()
	z = clamp(z, lo, hi)
	e.animateTo(e.panCentering(bounds.Center(), z), z, duration, easeFn)
}

// Animating reports whether a navigation tween is running.
func (e *Editor) Animating() bool { return e.nav != nil }

// StopAnimation cancels any running navigation tween, leaving pan and zoom
// where they are.
func (e *Editor) StopAnimation() { e.nav = nil }

func (e *Editor) animateTo(pan Vec2, zoom float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		e.state.SetPan(pan)
		e.state.SetZoom(zoom)
		e.nav = nil
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	cur := e.state.Pan()
	e.nav = &navAnim{
		tweenX: gween.New(float32(cur.X), float32(pan.X), duration, easeFn),
		tweenY: gween.New(float32(cur.Y), float32(pan.Y), duration, easeFn),
		tweenZ: gween.New(float32(e.state.Zoom()), float32(zoom), duration, easeFn),
	}
}

// updateNav advances the navigation tweens. Called from Editor.Update.
func (e *Editor) updateNav(dt float32) {
	a := e.nav
	if a == nil {
		return
	}
	pan := e.state.Pan()
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		pan.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		pan.Y = float64(val)
		a.doneY = done
	}
	if !a.doneZ {
		val, done := a.tweenZ.Update(dt)
		e.state.SetZoom(float64(val))
		a.doneZ = done
	}
	e.state.SetPan(pan)
	if a.doneX && a.doneY && a.doneZ {
		e.nav = nil
	}
}

// panCentering returns the pan that puts canvas point p at the canvas centre
// at zoom z.
func (e *Editor) panCentering(p Vec2, z float64) Vec2 {
	return e.canvasCenter().Sub(e.canvas.Min()).Sub(p.Scale(z))
}

func (e *Editor) canvasCenter() Vec2 {
	return e.canvas.Center()
}
