// Package ebitenui renders a nodegraph editor with [Ebitengine] and feeds it
// mouse and keyboard input.
//
// [Painter] implements nodegraph.Painter over an *ebiten.Image, [Font]
// measures and draws labels with text/v2, [ReadInput] samples the current
// input state, and [Run] wraps everything in a game loop:
//
//	ed := nodegraph.New(nodegraph.DefaultConfig())
//	err := ebitenui.Run(ed, buildFrame, ebitenui.RunConfig{
//		Title: "Graph", Width: 1024, Height: 768,
//	})
//
// [Ebitengine]: https://ebitengine.org
package ebitenui
