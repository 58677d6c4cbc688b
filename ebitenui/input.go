package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/nodegraph"
)

// ReadInput samples the mouse and keyboard for one frame.
func ReadInput() nodegraph.Input {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return nodegraph.Input{
		Pointer:   nodegraph.Vec2{X: float64(mx), Y: float64(my)},
		Left:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Middle:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Right:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Modifiers: readModifiers(),
		Delete: inpututil.IsKeyJustPressed(ebiten.KeyDelete) ||
			inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Wheel:     wy,
		DeltaTime: float32(1.0 / float64(ebiten.TPS())),
	}
}

// readModifiers returns the currently held modifier keys as a bitmask.
func readModifiers() nodegraph.KeyModifiers {
	var mods nodegraph.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= nodegraph.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= nodegraph.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= nodegraph.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= nodegraph.ModMeta
	}
	return mods
}
