package nodegraph

import (
	"maps"
	"slices"
)

// InteractionMode is the state of the interaction state machine. Exactly one
// mode is active at a time; it lives in GraphState so a gesture survives the
// frame boundary.
type InteractionMode uint8

const (
	ModeIdle          InteractionMode = iota // no gesture in progress
	ModeDraggingNode                         // selected nodes follow the pointer
	ModeDraggingLink                         // a pending link follows the pointer
	ModeBoxSelecting                         // a selection rectangle is being dragged
	ModePanningCanvas                        // the canvas follows the pointer
)

var modeNames = [...]string{"Idle", "DraggingNode", "DraggingLink", "BoxSelecting", "PanningCanvas"}

// String returns the mode name.
func (m InteractionMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// PendingLink is the unconfirmed link being dragged out of StartPin.
type PendingLink struct {
	StartPin PinID
	Pointer  Vec2 // current pointer position, canvas space
}

// DragKind distinguishes the pointer-drag gestures.
type DragKind uint8

const (
	DragNode DragKind = iota
	DragBoxSelect
	DragPan
)

// DragState records an active press-drag gesture. Origin and Last are in
// screen space.
type DragState struct {
	Kind   DragKind
	Origin Vec2
	Last   Vec2
	Button MouseButton

	// Node drags only.
	Node          NodeID // node that was pressed
	Moved         bool   // pointer left the dead zone; positions are being written
	toggleOnClick bool   // additive press on an already selected node
}

type interaction struct {
	mode    InteractionMode
	pending PendingLink
	drag    DragState
}

// GraphState is the persistent, cross-frame store of one editor instance:
// node positions, pan and zoom, selections, depth order, and the interaction
// state machine. All persistent data is keyed by caller-supplied ids.
//
// GraphState is not safe for concurrent use.
type GraphState struct {
	positions map[NodeID]Vec2
	depth     []NodeID // back to front

	placed        bool
	lastPlaced    Vec2
	defaultOrigin Vec2
	cascade       Vec2

	pan              Vec2
	zoom             float64
	zoomMin, zoomMax float64

	selectedNodes map[NodeID]struct{}
	selectedLinks map[LinkID]struct{}

	act interaction
}

// NewGraphState creates an empty state with default zoom bounds and
// placement settings.
func NewGraphState() *GraphState {
	cfg := DefaultConfig()
	return newGraphState(&cfg)
}

func newGraphState(cfg *Config) *GraphState {
	return &GraphState{
		positions:     make(map[NodeID]Vec2),
		defaultOrigin: cfg.DefaultOrigin,
		cascade:       cfg.CascadeOffset,
		zoom:          1,
		zoomMin:       cfg.ZoomMin,
		zoomMax:       cfg.ZoomMax,
		selectedNodes: make(map[NodeID]struct{}),
		selectedLinks: make(map[LinkID]struct{}),
	}
}

// --- Positions ---

// PositionOf returns the canvas position of id, creating an entry with the
// cascade placement heuristic on first access. Later calls return the stored
// value unchanged. The cascade skips slots already taken by another node,
// including positions restored with SetPosition or UnmarshalLayout.
func (s *GraphState) PositionOf(id NodeID) Vec2 {
	if p, ok := s.positions[id]; ok {
		return p
	}
	p := s.defaultOrigin
	if s.placed {
		p = s.lastPlaced.Add(s.cascade)
	}
	for i := 0; i < len(s.positions) && s.occupied(p); i++ {
		p = p.Add(s.cascade)
	}
	s.insert(id, p)
	return p
}

func (s *GraphState) occupied(p Vec2) bool {
	for _, q := range s.positions {
		if q == p {
			return true
		}
	}
	return false
}

// placeAt creates an entry for id at p if none exists yet.
func (s *GraphState) placeAt(id NodeID, p Vec2) Vec2 {
	if cur, ok := s.positions[id]; ok {
		return cur
	}
	s.insert(id, p)
	return p
}

func (s *GraphState) insert(id NodeID, p Vec2) {
	s.positions[id] = p
	s.depth = append(s.depth, id)
	s.placed = true
	s.lastPlaced = p
}

// Position returns the stored position of id without creating one.
func (s *GraphState) Position(id NodeID) (Vec2, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// SetPosition stores the canvas position of id.
func (s *GraphState) SetPosition(id NodeID, p Vec2) {
	if _, ok := s.positions[id]; !ok {
		s.depth = append(s.depth, id)
	}
	s.positions[id] = p
}

// RemoveNode purges every persistent entry for id: position, depth slot and
// selection. This is the only operation that forgets a node.
func (s *GraphState) RemoveNode(id NodeID) {
	if _, ok := s.positions[id]; !ok {
		return
	}
	delete(s.positions, id)
	delete(s.selectedNodes, id)
	if i := slices.Index(s.depth, id); i >= 0 {
		s.depth = slices.Delete(s.depth, i, i+1)
	}
	if s.act.mode == ModeDraggingNode && s.act.drag.Node == id {
		s.act = interaction{}
	}
}

// NodeIDs returns every node with a stored position, sorted.
func (s *GraphState) NodeIDs() []NodeID {
	return slices.Sorted(maps.Keys(s.positions))
}

// --- Depth order ---

// DepthOrder returns node ids from back to front. The returned slice MUST
// NOT be mutated.
func (s *GraphState) DepthOrder() []NodeID {
	return s.depth
}

// BringToFront moves id to the top of the depth order.
func (s *GraphState) BringToFront(id NodeID) {
	i := slices.Index(s.depth, id)
	if i < 0 || i == len(s.depth)-1 {
		return
	}
	s.depth = append(slices.Delete(s.depth, i, i+1), id)
}

// --- Transform ---

// Pan returns the canvas-to-screen translation in screen pixels.
func (s *GraphState) Pan() Vec2 { return s.pan }

// SetPan sets the canvas-to-screen translation.
func (s *GraphState) SetPan(p Vec2) { s.pan = p }

// Zoom returns the current zoom factor.
func (s *GraphState) Zoom() float64 { return s.zoom }

// SetZoom sets the zoom factor, silently clamped to the zoom bounds.
func (s *GraphState) SetZoom(z float64) {
	s.zoom = clamp(z, s.zoomMin, s.zoomMax)
}

// ZoomBounds returns the allowed zoom range.
func (s *GraphState) ZoomBounds() (lo, hi float64) { return s.zoomMin, s.zoomMax }

// SetZoomBounds changes the allowed zoom range and re-clamps the current zoom.
func (s *GraphState) SetZoomBounds(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.zoomMin, s.zoomMax = lo, hi
	s.SetZoom(s.zoom)
}

// --- Selection ---

// IsNodeSelected reports whether id is selected.
func (s *GraphState) IsNodeSelected(id NodeID) bool {
	_, ok := s.selectedNodes[id]
	return ok
}

// IsLinkSelected reports whether id is selected.
func (s *GraphState) IsLinkSelected(id LinkID) bool {
	_, ok := s.selectedLinks[id]
	return ok
}

// SelectNodes replaces the node selection with ids, or adds them when
// additive is true. A replacing selection also clears the link selection.
func (s *GraphState) SelectNodes(ids []NodeID, additive bool) {
	if !additive {
		clear(s.selectedNodes)
		clear(s.selectedLinks)
	}
	for _, id := range ids {
		s.selectedNodes[id] = struct{}{}
	}
}

// SelectLinks replaces the link selection with ids, or adds them when
// additive is true. A replacing selection also clears the node selection.
func (s *GraphState) SelectLinks(ids []LinkID, additive bool) {
	if !additive {
		clear(s.selectedNodes)
		clear(s.selectedLinks)
	}
	for _, id := range ids {
		s.selectedLinks[id] = struct{}{}
	}
}

// DeselectNode removes id from the node selection.
func (s *GraphState) DeselectNode(id NodeID) { delete(s.selectedNodes, id) }

// DeselectLink removes id from the link selection.
func (s *GraphState) DeselectLink(id LinkID) { delete(s.selectedLinks, id) }

// ClearSelection deselects every node and link.
func (s *GraphState) ClearSelection() {
	clear(s.selectedNodes)
	clear(s.selectedLinks)
}

// SelectedNodes returns the selected node ids, sorted.
func (s *GraphState) SelectedNodes() []NodeID {
	return slices.Sorted(maps.Keys(s.selectedNodes))
}

// SelectedLinks returns the selected link ids, sorted.
func (s *GraphState) SelectedLinks() []LinkID {
	return slices.Sorted(maps.Keys(s.selectedLinks))
}

// --- Interaction state ---

// Mode returns the active interaction mode.
func (s *GraphState) Mode() InteractionMode { return s.act.mode }

// PendingLink returns the link being dragged, if any.
func (s *GraphState) PendingLink() (PendingLink, bool) {
	if s.act.mode != ModeDraggingLink {
		return PendingLink{}, false
	}
	return s.act.pending, true
}

// Drag returns the active press-drag gesture, if any.
func (s *GraphState) Drag() (DragState, bool) {
	switch s.act.mode {
	case ModeDraggingNode, ModeBoxSelecting, ModePanningCanvas:
		return s.act.drag, true
	}
	return DragState{}, false
}

// resetInteraction returns the state machine to Idle.
func (s *GraphState) resetInteraction() {
	s.act = interaction{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
