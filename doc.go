// Package nodegraph is an immediate-mode node graph editor engine.
//
// Every frame the caller declares its nodes, their attributes (pins), and the
// links between pins. The editor lays them out, hit-tests the pointer, runs
// an interaction state machine (node dragging, link creation, box selection,
// panning, zooming) and reports what the user did as events. The caller owns
// the graph data; the editor only keeps what must survive between frames,
// keyed by the caller's integer ids: node positions, pan, zoom, selection,
// depth order, and the gesture in progress.
//
// # Quick start
//
//	ed := nodegraph.New(nodegraph.DefaultConfig())
//
//	// each frame:
//	res := ed.Update(nodegraph.Frame{
//		Canvas: nodegraph.Rect{Width: 800, Height: 600},
//		Nodes: []nodegraph.NodeDecl{
//			{ID: 1, Title: title, Attributes: []nodegraph.AttributeDecl{
//				{ID: 2, Kind: nodegraph.PinOutput, Content: out},
//			}},
//			{ID: 3, Attributes: []nodegraph.AttributeDecl{
//				{ID: 5, Kind: nodegraph.PinInput, Content: in},
//			}},
//		},
//		Links: links,
//	}, input)
//	if start, end, ok := res.LinkCreated(); ok {
//		links = append(links, nodegraph.LinkDecl{ID: nextID(), Start: start, End: end})
//	}
//	ed.Draw(painter)
//
// The ebitenui sub-package provides a Painter, text measurement, and input
// reading for Ebitengine, plus a ready-made game loop.
//
// # Coordinates
//
// Node positions live in canvas space. Screen space is derived as
// Origin + Pan + canvas*Zoom, where Origin is the top-left of Frame.Canvas.
// Hit distances in [Config] are in screen pixels and are divided by the zoom
// before being compared with canvas geometry.
//
// # Events
//
// [Editor.Update] returns a [Result] whose Events hold link creation and
// destruction, node delete requests, and selection and hover changes. The
// editor never edits the caller's links or nodes: acting on an event is the
// caller's job. Nodes that stop being declared keep their stored position;
// call [GraphState.RemoveNode] to forget one.
//
// # Persistence
//
// [Editor.SaveLayout] and [Editor.LoadLayout] round-trip positions, pan, and
// zoom as versioned JSON. Loading an unknown version fails with a
// [*FormatError] and leaves the state unchanged.
//
// # Configuration
//
// [LoadConfig] reads a TOML document with optional [editor] and [style]
// tables on top of [DefaultConfig] and [DefaultStyle].
//
// # Testing
//
// InjectPress, InjectMove, InjectRelease, InjectClick, and InjectDrag queue
// synthetic pointer events consumed one per Update. [LoadTestScript] builds a
// [TestRunner] from a JSON list of steps.
package nodegraph
