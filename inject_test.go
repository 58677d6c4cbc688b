package nodegraph

import "testing"

func TestInjectClick(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	d.ed.InjectClick(20, 10)
	if got := d.ed.PendingInjections(); got != 2 {
		t.Fatalf("PendingInjections = %d, want 2", got)
	}

	// Frame 1: press selects and starts a node drag.
	d.step()
	if got := d.ed.PendingInjections(); got != 1 {
		t.Fatalf("PendingInjections after frame 1 = %d, want 1", got)
	}
	if d.ed.State().Mode() != ModeDraggingNode {
		t.Errorf("Mode = %v, want DraggingNode", d.ed.State().Mode())
	}

	// Frame 2: release.
	d.step()
	if d.ed.State().Mode() != ModeIdle {
		t.Errorf("Mode = %v, want Idle", d.ed.State().Mode())
	}
	if !d.ed.State().IsNodeSelected(1) {
		t.Error("injected click did not select node 1")
	}
}

func TestInjectDragCreatesLink(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	d.ed.InjectDrag(96, 18, 300, 18, 4)
	if got := d.ed.PendingInjections(); got != 4 {
		t.Fatalf("PendingInjections = %d, want 4", got)
	}

	var created int
	for range 4 {
		created += countEvents(d.step().Events, EventLinkCreated)
	}
	if created != 1 {
		t.Errorf("LinkCreated count = %d, want 1", created)
	}
	if got := d.ed.PendingInjections(); got != 0 {
		t.Errorf("PendingInjections = %d, want 0", got)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	ed := New(DefaultConfig())
	ed.InjectDrag(0, 0, 10, 10, 0)
	if got := ed.PendingInjections(); got != 2 {
		t.Errorf("PendingInjections = %d, want 2 (press + release)", got)
	}
}

func TestInjectOverridesRealPointer(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	d.in.Pointer = Vec2{700, 700}
	d.ed.InjectMove(320, 10)
	res := d.step()
	if !res.Hover.HasNode || res.Hover.Node != 3 {
		t.Errorf("Hover = %+v, want node 3 under the injected pointer", res.Hover)
	}

	// Queue empty: real input passes through again.
	d.ed.InjectRelease(320, 10)
	d.step()
	if res := d.step(); res.Hover.HasNode {
		t.Errorf("Hover = %+v, want nothing under the real pointer", res.Hover)
	}
}

func TestInjectDelete(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	d.ed.State().SelectNodes([]NodeID{3}, false)
	d.ed.InjectDelete()

	res := d.step()
	if got := res.NodesDeleted(); len(got) != 1 || got[0] != 3 {
		t.Errorf("NodesDeleted = %v, want [3]", got)
	}
	if res := d.step(); len(res.NodesDeleted()) != 0 {
		t.Error("injected delete fired twice")
	}
}
