package nodegraph

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6},
			{"action": "zoom", "zoom": 2}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "click" || st.X != 100 || st.Y != 200 {
		t.Errorf("step 0 = %+v", st)
	}
	if st := runner.steps[2]; st.Action != "drag" || st.ToX != 3 || st.Frames != 6 {
		t.Errorf("step 2 = %+v", st)
	}
	if st := runner.steps[3]; st.Zoom != 2 {
		t.Errorf("step 3 = %+v", st)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "click"}, {"action": "screenshot"}]}`, `step 1: unknown action "screenshot"`},
		{"zero zoom", `{"steps": [{"action": "zoom"}]}`, "step 0: zoom must be positive"},
		{"negative frames", `{"steps": [{"action": "wait", "frames": -2}]}`, "negative frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, d *driver, script string, maxFrames int) []Event {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	d.ed.SetTestRunner(runner)

	var events []Event
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		events = append(events, d.step().Events...)
	}
	if !runner.Done() {
		t.Fatalf("runner not done after %d frames", maxFrames)
	}
	return events
}

func TestRunnerDragCreatesLink(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	events := runScript(t, d,
		`{"steps": [{"action": "drag", "fromX": 96, "fromY": 18, "toX": 300, "toY": 18, "frames": 5}]}`, 20)

	if n := countEvents(events, EventLinkCreated); n != 1 {
		t.Errorf("LinkCreated count = %d, want 1", n)
	}
}

func TestRunnerClickThenDelete(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	events := runScript(t, d,
		`{"steps": [{"action": "click", "x": 340, "y": 10}, {"action": "delete"}, {"action": "wait", "frames": 1}]}`, 20)

	var deleted []NodeID
	for _, ev := range events {
		if ev.Type == EventNodeDeleteRequested {
			deleted = append(deleted, ev.Node)
		}
	}
	if len(deleted) != 1 || deleted[0] != 3 {
		t.Errorf("deleted = %v, want [3]", deleted)
	}
}

func TestRunnerWait(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.ed.SetTestRunner(runner)

	for i := range 3 {
		d.step()
		if runner.Done() {
			t.Fatalf("runner done after %d frames, want 4", i+1)
		}
	}
	d.step()
	if !runner.Done() {
		t.Error("runner not done after 4 frames")
	}
}

func TestRunnerZoom(t *testing.T) {
	d := newDriver(t, DefaultConfig(), twoNodes())
	runScript(t, d, `{"steps": [{"action": "zoom", "zoom": 2}]}`, 5)
	if got := d.ed.State().Zoom(); got != 2 {
		t.Errorf("Zoom = %v, want 2", got)
	}
}
