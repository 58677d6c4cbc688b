package nodegraph

import (
	"slices"
	"testing"
)

func TestPositionOfPlacement(t *testing.T) {
	s := NewGraphState()

	if got, want := s.PositionOf(7), (Vec2{100, 100}); got != want {
		t.Errorf("first PositionOf = %v, want %v", got, want)
	}
	if got, want := s.PositionOf(3), (Vec2{140, 140}); got != want {
		t.Errorf("second PositionOf = %v, want %v", got, want)
	}
	if got, want := s.PositionOf(9), (Vec2{180, 180}); got != want {
		t.Errorf("third PositionOf = %v, want %v", got, want)
	}
	// Idempotent once created.
	if got, want := s.PositionOf(7), (Vec2{100, 100}); got != want {
		t.Errorf("repeat PositionOf = %v, want %v", got, want)
	}
}

func TestPositionOfAfterSetPosition(t *testing.T) {
	s := NewGraphState()
	s.PositionOf(1)
	s.SetPosition(1, Vec2{500, 20})
	if got, want := s.PositionOf(1), (Vec2{500, 20}); got != want {
		t.Errorf("PositionOf = %v, want %v", got, want)
	}
	if _, ok := s.Position(2); ok {
		t.Error("Position(2) reported a stored value before first access")
	}
}

func TestSetZoomClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 0.1, 0.25},
		{"inside", 1.5, 1.5},
		{"above max", 10, 4},
		{"min edge", 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGraphState()
			s.SetZoom(tt.in)
			if got := s.Zoom(); got != tt.want {
				t.Errorf("SetZoom(%v): Zoom() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetZoomBoundsReclamps(t *testing.T) {
	s := NewGraphState()
	s.SetZoom(3)
	s.SetZoomBounds(2, 0.5) // reversed on purpose
	lo, hi := s.ZoomBounds()
	if lo != 0.5 || hi != 2 {
		t.Errorf("ZoomBounds = (%v, %v), want (0.5, 2)", lo, hi)
	}
	if got := s.Zoom(); got != 2 {
		t.Errorf("Zoom = %v, want 2", got)
	}
}

func TestSelectNodes(t *testing.T) {
	s := NewGraphState()
	s.SelectNodes([]NodeID{3, 1}, false)
	s.SelectLinks([]LinkID{9}, true)

	if got, want := s.SelectedNodes(), []NodeID{1, 3}; !slices.Equal(got, want) {
		t.Errorf("SelectedNodes = %v, want %v", got, want)
	}

	s.SelectNodes([]NodeID{5}, true)
	if got, want := s.SelectedNodes(), []NodeID{1, 3, 5}; !slices.Equal(got, want) {
		t.Errorf("additive SelectedNodes = %v, want %v", got, want)
	}
	if !s.IsLinkSelected(9) {
		t.Error("additive node selection dropped link 9")
	}

	s.SelectNodes([]NodeID{2}, false)
	if got, want := s.SelectedNodes(), []NodeID{2}; !slices.Equal(got, want) {
		t.Errorf("replace SelectedNodes = %v, want %v", got, want)
	}
	if s.IsLinkSelected(9) {
		t.Error("replacing selection kept link 9")
	}

	s.ClearSelection()
	if len(s.SelectedNodes()) != 0 || len(s.SelectedLinks()) != 0 {
		t.Error("ClearSelection left items selected")
	}
}

func TestDeselect(t *testing.T) {
	s := NewGraphState()
	s.SelectNodes([]NodeID{1, 2}, false)
	s.SelectLinks([]LinkID{4}, true)
	s.DeselectNode(1)
	s.DeselectLink(4)
	if s.IsNodeSelected(1) || !s.IsNodeSelected(2) || s.IsLinkSelected(4) {
		t.Errorf("after deselect: nodes %v links %v", s.SelectedNodes(), s.SelectedLinks())
	}
}

func TestRemoveNode(t *testing.T) {
	s := NewGraphState()
	s.PositionOf(1)
	s.PositionOf(2)
	s.SelectNodes([]NodeID{1, 2}, false)

	s.RemoveNode(1)

	if _, ok := s.Position(1); ok {
		t.Error("position survived RemoveNode")
	}
	if s.IsNodeSelected(1) {
		t.Error("selection survived RemoveNode")
	}
	if got, want := s.DepthOrder(), []NodeID{2}; !slices.Equal(got, want) {
		t.Errorf("DepthOrder = %v, want %v", got, want)
	}
	if got, want := s.NodeIDs(), []NodeID{2}; !slices.Equal(got, want) {
		t.Errorf("NodeIDs = %v, want %v", got, want)
	}
	s.RemoveNode(42) // unknown ids are ignored
}

func TestBringToFront(t *testing.T) {
	s := NewGraphState()
	for _, id := range []NodeID{1, 2, 3} {
		s.PositionOf(id)
	}
	s.BringToFront(1)
	if got, want := s.DepthOrder(), []NodeID{2, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("DepthOrder = %v, want %v", got, want)
	}
	s.BringToFront(1)
	s.BringToFront(99)
	if got, want := s.DepthOrder(), []NodeID{2, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("DepthOrder after no-ops = %v, want %v", got, want)
	}
}

func TestInteractionAccessorsIdle(t *testing.T) {
	s := NewGraphState()
	if s.Mode() != ModeIdle {
		t.Errorf("Mode = %v, want Idle", s.Mode())
	}
	if _, ok := s.PendingLink(); ok {
		t.Error("PendingLink reported a link in Idle")
	}
	if _, ok := s.Drag(); ok {
		t.Error("Drag reported a gesture in Idle")
	}
	if got := ModeBoxSelecting.String(); got != "BoxSelecting" {
		t.Errorf("String() = %q, want BoxSelecting", got)
	}
}

func TestPositionOfSkipsOccupiedSlots(t *testing.T) {
	s := NewGraphState()
	s.SetPosition(1, Vec2{100, 100})
	s.SetPosition(2, Vec2{140, 140})

	if got, want := s.PositionOf(7), (Vec2{180, 180}); got != want {
		t.Errorf("PositionOf(7) = %v, want %v", got, want)
	}
	if got, want := s.PositionOf(8), (Vec2{220, 220}); got != want {
		t.Errorf("PositionOf(8) = %v, want %v", got, want)
	}
}
