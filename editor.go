package nodegraph

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// EventSink receives every event an Editor emits, after the frame that
// produced it. The ecs sub-package provides a donburi-backed sink.
type EventSink interface {
	EmitEvent(Event)
}

// Result is the output of one Update call. It is a snapshot valid until the
// next Update.
type Result struct {
	Geometry    *Geometry
	Events      []Event
	Hover       Hover
	Diagnostics []Diagnostic
}

// LinkCreated returns the first link-created event of the frame.
func (r *Result) LinkCreated() (start, end PinID, ok bool) {
	for _, ev := range r.Events {
		if ev.Type == EventLinkCreated {
			return ev.Start, ev.End, true
		}
	}
	return 0, 0, false
}

// LinkDestroyed returns the ids of every link destroyed this frame.
func (r *Result) LinkDestroyed() []LinkID {
	var ids []LinkID
	for _, ev := range r.Events {
		if ev.Type == EventLinkDestroyed {
			ids = append(ids, ev.Link)
		}
	}
	return ids
}

// NodesDeleted returns the ids of every node the user asked to delete.
func (r *Result) NodesDeleted() []NodeID {
	var ids []NodeID
	for _, ev := range r.Events {
		if ev.Type == EventNodeDeleteRequested {
			ids = append(ids, ev.Node)
		}
	}
	return ids
}

// SelectionChanged reports whether the node or link selection changed.
func (r *Result) SelectionChanged() bool {
	for _, ev := range r.Events {
		if ev.Type == EventNodeSelectionChanged || ev.Type == EventLinkSelectionChanged {
			return true
		}
	}
	return false
}

// Editor is one node editor instance. Call Update once per frame with the
// frame's declarations and input, then Draw to render it.
type Editor struct {
	cfg   Config
	style Style
	state *GraphState

	it        interactor
	prev      pointerState
	lastHover Hover
	geo       *Geometry
	canvas    Rect
	nav       *navAnim

	sink   EventSink
	logger *log.Logger
	debug  bool

	injectQueue []syntheticPointerEvent
	injectDel   bool
	testRunner  *TestRunner
}

// New creates an editor with the given interaction settings and the default
// style.
func New(cfg Config) *Editor {
	cfg.sanitize()
	e := &Editor{
		cfg:    cfg,
		style:  DefaultStyle(),
		state:  newGraphState(&cfg),
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
	}
	e.it = interactor{cfg: &e.cfg, state: e.state}
	return e
}

// State returns the persistent graph state.
func (e *Editor) State() *GraphState { return e.state }

// Config returns the interaction settings.
func (e *Editor) Config() Config { return e.cfg }

// Style returns the draw style.
func (e *Editor) Style() Style { return e.style }

// SetStyle replaces the draw style. Layout paddings take effect next frame.
func (e *Editor) SetStyle(st Style) { e.style = st }

// SetEventSink sets the receiver of emitted events. Pass nil to detach.
func (e *Editor) SetEventSink(sink EventSink) { e.sink = sink }

// SetLogger replaces the logger used for diagnostics.
func (e *Editor) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(io.Discard, log.Options{})
	}
	e.logger = l
	e.applyLogLevel()
}

// SetDebugMode enables per-frame timing stats at debug level.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
	e.applyLogLevel()
}

func (e *Editor) applyLogLevel() {
	if e.debug {
		e.logger.SetLevel(log.DebugLevel)
	} else {
		e.logger.SetLevel(log.WarnLevel)
	}
}

// Geometry returns the geometry of the last frame, or nil before the first.
func (e *Editor) Geometry() *Geometry { return e.geo }

// CanvasToScreen converts a canvas point using the current pan and zoom.
func (e *Editor) CanvasToScreen(p Vec2) Vec2 { return e.transform().ToScreen(p) }

// ScreenToCanvas converts a screen point using the current pan and zoom.
func (e *Editor) ScreenToCanvas(p Vec2) Vec2 { return e.transform().ToCanvas(p) }

func (e *Editor) transform() Transform {
	return Transform{Origin: e.canvas.Min(), Pan: e.state.Pan(), Zoom: e.state.Zoom()}
}

// Update runs one frame: scripted and injected input, navigation tweens,
// layout, hover, the interaction state machine, and event delivery.
func (e *Editor) Update(frame Frame, in Input) *Result {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	in = e.applyInjected(in)

	dt := in.DeltaTime
	if dt <= 0 {
		dt = 1.0 / 60
	}
	e.updateNav(dt)
	e.canvas = frame.Canvas

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	geo, diags := buildGeometry(e.state, &frame, &e.cfg, &e.style, e.logger)

	if e.debug {
		stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}

	fi := frameInput{
		Input:    in,
		canvas:   geo.Transform.ToCanvas(in.Pointer),
		inCanvas: geo.inCanvas(in.Pointer),
		prev:     e.prev,
	}
	prevNodes, prevLinks := e.state.SelectedNodes(), e.state.SelectedLinks()

	it := &e.it
	it.geo, it.in = geo, &fi
	it.events = nil
	it.navigated = false
	it.hover = it.resolveHover()
	it.step()
	if it.navigated {
		e.nav = nil
	}

	events := it.events
	events = append(events, selectionEvents(prevNodes, prevLinks, e.state)...)
	events = append(events, hoverEvents(e.lastHover, it.hover)...)

	e.lastHover = it.hover
	e.prev = pointerState{left: in.Left, middle: in.Middle, right: in.Right}
	e.geo = geo

	if e.sink != nil {
		for _, ev := range events {
			e.sink.EmitEvent(ev)
		}
	}

	if e.debug {
		stats.interactTime = time.Since(t0)
		stats.nodes, stats.pins, stats.links = len(geo.Nodes), len(geo.Pins), len(geo.Links)
		stats.events = len(events)
		e.debugLog(stats)
	}

	return &Result{
		Geometry:    geo,
		Events:      events,
		Hover:       it.hover,
		Diagnostics: diags,
	}
}

// Snap returns the pin the pending link currently snaps to, if any.
func (e *Editor) Snap() (PinID, bool) {
	if e.state.Mode() != ModeDraggingLink || !e.it.hasSnap {
		return 0, false
	}
	return e.it.snap, true
}
