package nodegraph

import (
	"math"
	"slices"
)

// Hover is the element under the pointer this frame. At most one of pin,
// node or link is set, in that priority order.
type Hover struct {
	Pin     PinID
	HasPin  bool
	Node    NodeID
	HasNode bool
	Link    LinkID
	HasLink bool
}

// pointerState tracks button edges across frames.
type pointerState struct {
	left, middle, right bool
}

func (p pointerState) held(b MouseButton) bool {
	switch b {
	case MouseButtonLeft:
		return p.left
	case MouseButtonMiddle:
		return p.middle
	case MouseButtonRight:
		return p.right
	}
	return false
}

// frameInput is one frame of input with press/release edges resolved.
type frameInput struct {
	Input
	canvas   Vec2 // pointer in canvas space
	inCanvas bool
	prev     pointerState
}

func (f *frameInput) pressed(b MouseButton) bool { return f.button(b) && !f.prev.held(b) }

// interactor advances the interaction state machine for one editor.
type interactor struct {
	cfg   *Config
	state *GraphState
	geo   *Geometry
	in    *frameInput
	hover Hover

	events []Event

	// dragStart holds the positions of dragged nodes at dragAnchor, the
	// pointer position they are offset from. Both are rebased whenever the
	// zoom changes mid-drag so only movement after the change uses the new
	// zoom.
	dragStart  map[NodeID]Vec2
	dragAnchor Vec2
	dragZoom   float64
	// detached is the link removed by a detach gesture; it no longer counts
	// as an existing connection.
	detached    LinkID
	hasDetached bool
	// snap is the compatible pin the pending link end snaps to.
	snap    PinID
	hasSnap bool
	// navigated is set when the user panned or zoomed this frame.
	navigated bool
}

// resolveHover finds the element under the pointer: pins first, then the
// topmost node, then the closest link.
func (it *interactor) resolveHover() Hover {
	var h Hover
	if !it.in.inCanvas {
		return h
	}
	p := it.in.canvas
	zoom := it.geo.Transform.Zoom

	radius := it.cfg.PinHoverRadius / zoom
	best := radius * radius
	for _, nid := range it.geo.Order {
		for _, pid := range it.geo.Nodes[nid].Pins {
			pin := it.geo.Pins[pid]
			if !pin.Connectable() {
				continue
			}
			d := p.DistSq(pin.Anchor)
			if d > best || it.occluded(pin) {
				continue
			}
			best = d
			h.Pin, h.HasPin = pid, true
		}
	}
	if h.HasPin {
		return h
	}

	for i := len(it.geo.Order) - 1; i >= 0; i-- {
		id := it.geo.Order[i]
		if it.geo.Nodes[id].Rect.ContainsPoint(p) {
			h.Node, h.HasNode = id, true
			return h
		}
	}

	bestDist := math.Inf(1)
	for _, l := range it.geo.Links {
		if d, ok := l.Curve.Hit(p, it.cfg.LinkHitThreshold, zoom, it.cfg.CurveSamples); ok && d < bestDist {
			bestDist = d
			h.Link, h.HasLink = l.ID, true
		}
	}
	return h
}

// occluded reports whether pin's anchor is covered by a node drawn above its
// owner.
func (it *interactor) occluded(pin *PinGeometry) bool {
	order := it.geo.Order
	i := slices.Index(order, pin.Node)
	for _, above := range order[i+1:] {
		if it.geo.Nodes[above].Rect.ContainsPoint(pin.Anchor) {
			return true
		}
	}
	return false
}

// step runs the state machine once.
func (it *interactor) step() {
	s := it.state
	switch s.act.mode {
	case ModeIdle:
		it.idle()
	case ModeDraggingNode:
		it.dragNodes()
	case ModeDraggingLink:
		it.dragLink()
	case ModeBoxSelecting:
		it.boxSelect()
	case ModePanningCanvas:
		it.pan()
	}
	if s.act.mode == ModeIdle && it.in.Delete {
		it.deleteSelection()
	}
	if it.zoomWheel() {
		it.navigated = true
	}
}

func (it *interactor) idle() {
	in := it.in
	if !in.inCanvas {
		return
	}
	if it.cfg.PanButton != MouseButtonLeft && in.pressed(it.cfg.PanButton) {
		it.beginDrag(ModePanningCanvas, DragPan, it.cfg.PanButton)
		return
	}
	if !in.pressed(MouseButtonLeft) {
		return
	}
	h := it.hover
	empty := !h.HasPin && !h.HasNode && !h.HasLink
	switch {
	case empty && in.Modifiers.Has(it.cfg.PanModifier):
		it.beginDrag(ModePanningCanvas, DragPan, MouseButtonLeft)
	case h.HasPin:
		it.state.act = interaction{
			mode:    ModeDraggingLink,
			pending: PendingLink{StartPin: h.Pin, Pointer: in.canvas},
		}
		it.hasDetached = false
	case h.HasNode:
		it.pressNode(h.Node)
	case h.HasLink:
		it.pressLink(h.Link)
	default:
		it.beginDrag(ModeBoxSelecting, DragBoxSelect, MouseButtonLeft)
	}
}

func (it *interactor) beginDrag(mode InteractionMode, kind DragKind, b MouseButton) {
	it.state.act = interaction{
		mode: mode,
		drag: DragState{Kind: kind, Origin: it.in.Pointer, Last: it.in.Pointer, Button: b},
	}
}

func (it *interactor) pressNode(id NodeID) {
	s := it.state
	additive := it.in.Modifiers.Has(it.cfg.AdditiveModifier)
	toggle := false
	switch {
	case additive && s.IsNodeSelected(id):
		toggle = true
	case additive:
		s.SelectNodes([]NodeID{id}, true)
	case !s.IsNodeSelected(id):
		s.SelectNodes([]NodeID{id}, false)
	}
	s.BringToFront(id)
	it.beginDrag(ModeDraggingNode, DragNode, MouseButtonLeft)
	s.act.drag.Node = id
	s.act.drag.toggleOnClick = toggle
	clear(it.dragStart)
}

func (it *interactor) pressLink(id LinkID) {
	l, ok := it.geo.Link(id)
	if !ok {
		return
	}
	if it.in.Modifiers.Has(it.cfg.DetachModifier) {
		// Grab the end nearest the pointer; the pending link keeps the other.
		start, end := l.Start, l.End
		sa, _ := it.geo.PinAnchor(start)
		ea, _ := it.geo.PinAnchor(end)
		from := start
		if it.in.canvas.DistSq(sa) < it.in.canvas.DistSq(ea) {
			from = end
		}
		it.events = append(it.events, Event{Type: EventLinkDestroyed, Link: id})
		it.state.DeselectLink(id)
		it.state.act = interaction{
			mode:    ModeDraggingLink,
			pending: PendingLink{StartPin: from, Pointer: it.in.canvas},
		}
		it.detached, it.hasDetached = id, true
		return
	}
	it.state.SelectLinks([]LinkID{id}, it.in.Modifiers.Has(it.cfg.AdditiveModifier))
}

func (it *interactor) dragNodes() {
	s := it.state
	d := &s.act.drag
	in := it.in
	if !d.Moved && in.Pointer.Sub(d.Origin).Len() > it.cfg.DragDeadZone {
		d.Moved = true
		if it.dragStart == nil {
			it.dragStart = make(map[NodeID]Vec2)
		}
		clear(it.dragStart)
		for id := range s.selectedNodes {
			if n, ok := it.geo.Nodes[id]; ok && n.Pinned {
				continue
			}
			if p, ok := s.Position(id); ok {
				it.dragStart[id] = p
			}
		}
		it.dragAnchor, it.dragZoom = d.Origin, s.Zoom()
	}
	if d.Moved {
		if s.Zoom() != it.dragZoom {
			for id := range it.dragStart {
				it.dragStart[id] = s.positions[id]
			}
			it.dragAnchor, it.dragZoom = d.Last, s.Zoom()
		}
		delta := in.Pointer.Sub(it.dragAnchor).Scale(1 / it.dragZoom)
		for id, start := range it.dragStart {
			if s.IsNodeSelected(id) {
				s.positions[id] = start.Add(delta)
			}
		}
	}
	d.Last = in.Pointer

	if in.Left {
		return
	}
	if !d.Moved {
		switch {
		case d.toggleOnClick:
			s.DeselectNode(d.Node)
		case !in.Modifiers.Has(it.cfg.AdditiveModifier) && len(s.selectedNodes) > 1:
			s.SelectNodes([]NodeID{d.Node}, false)
		}
	}
	s.resetInteraction()
}

func (it *interactor) dragLink() {
	s := it.state
	start, ok := it.geo.Pins[s.act.pending.StartPin]
	if !ok || !start.Connectable() {
		s.resetInteraction()
		return
	}
	s.act.pending.Pointer = it.in.canvas

	it.hasSnap = false
	if it.hover.HasPin {
		if end := it.geo.Pins[it.hover.Pin]; it.compatible(start, end) {
			it.snap, it.hasSnap = end.ID, true
		}
	}

	if it.in.Left {
		return
	}
	if it.hasSnap {
		out, inp := start.ID, it.snap
		if start.Kind == PinInput {
			out, inp = inp, out
		}
		it.events = append(it.events, Event{Type: EventLinkCreated, Start: out, End: inp})
	}
	it.hasSnap = false
	it.hasDetached = false
	s.resetInteraction()
}

// compatible reports whether a link may be created between a and b.
func (it *interactor) compatible(a, b *PinGeometry) bool {
	if a.ID == b.ID || a.Node == b.Node || a.Kind == b.Kind {
		return false
	}
	if !a.Connectable() || !b.Connectable() {
		return false
	}
	for _, l := range it.geo.Links {
		if it.hasDetached && l.ID == it.detached {
			continue
		}
		if (l.Start == a.ID && l.End == b.ID) || (l.Start == b.ID && l.End == a.ID) {
			return false
		}
	}
	return true
}

func (it *interactor) boxSelect() {
	s := it.state
	d := &s.act.drag
	d.Last = it.in.Pointer
	if it.in.Left {
		return
	}
	tr := it.geo.Transform
	box := RectFromPoints(tr.ToCanvas(d.Origin), tr.ToCanvas(d.Last))

	var nodes []NodeID
	for _, id := range it.geo.Order {
		if it.geo.Nodes[id].Rect.Intersects(box) {
			nodes = append(nodes, id)
		}
	}
	var links []LinkID
	for _, l := range it.geo.Links {
		if l.Curve.OverlapsRect(box, it.cfg.CurveSamples) {
			links = append(links, l.ID)
		}
	}
	if !it.in.Modifiers.Has(it.cfg.AdditiveModifier) {
		s.ClearSelection()
	}
	s.SelectNodes(nodes, true)
	s.SelectLinks(links, true)
	s.resetInteraction()
}

func (it *interactor) pan() {
	s := it.state
	d := &s.act.drag
	if !it.in.button(d.Button) {
		s.resetInteraction()
		return
	}
	if delta := it.in.Pointer.Sub(d.Last); delta != (Vec2{}) {
		s.pan = s.pan.Add(delta)
		it.navigated = true
	}
	d.Last = it.in.Pointer
}

// deleteSelection emits destroy and delete-request events for the selected
// links and nodes declared this frame and deselects them. Selected ids that
// are not declared stay selected and are not reported. The editor never
// removes anything itself.
func (it *interactor) deleteSelection() {
	s := it.state
	for _, id := range s.SelectedLinks() {
		if _, ok := it.geo.Link(id); !ok {
			continue
		}
		it.events = append(it.events, Event{Type: EventLinkDestroyed, Link: id})
		s.DeselectLink(id)
	}
	for _, id := range s.SelectedNodes() {
		if _, ok := it.geo.Nodes[id]; !ok {
			continue
		}
		it.events = append(it.events, Event{Type: EventNodeDeleteRequested, Node: id})
		s.DeselectNode(id)
	}
}

// zoomWheel zooms around the pointer so the canvas point under it stays put.
func (it *interactor) zoomWheel() bool {
	in := it.in
	if in.Wheel == 0 || !in.inCanvas {
		return false
	}
	s := it.state
	old := s.Zoom()
	s.SetZoom(old * math.Pow(1+it.cfg.ZoomStep, in.Wheel))
	if s.Zoom() == old {
		return false
	}
	tr := it.geo.Transform
	tr.Pan = s.Pan()
	tr.Zoom = old
	c := tr.ToCanvas(in.Pointer)
	s.pan = in.Pointer.Sub(tr.Origin).Sub(c.Scale(s.Zoom()))
	return true
}

// selectionEvents compares selections before and after the frame.
func selectionEvents(prevNodes []NodeID, prevLinks []LinkID, s *GraphState) []Event {
	var out []Event
	if nodes := s.SelectedNodes(); !slices.Equal(prevNodes, nodes) {
		out = append(out, Event{Type: EventNodeSelectionChanged, Nodes: nodes})
	}
	if links := s.SelectedLinks(); !slices.Equal(prevLinks, links) {
		out = append(out, Event{Type: EventLinkSelectionChanged, Links: links})
	}
	return out
}

// hoverEvents reports hover changes between two frames.
func hoverEvents(prev, cur Hover) []Event {
	var out []Event
	if prev.HasNode != cur.HasNode || prev.Node != cur.Node {
		out = append(out, Event{Type: EventHoveredNode, Node: cur.Node, Present: cur.HasNode})
	}
	if prev.HasLink != cur.HasLink || prev.Link != cur.Link {
		out = append(out, Event{Type: EventHoveredLink, Link: cur.Link, Present: cur.HasLink})
	}
	if prev.HasPin != cur.HasPin || prev.Pin != cur.Pin {
		out = append(out, Event{Type: EventHoveredPin, Pin: cur.Pin, Present: cur.HasPin})
	}
	return out
}
