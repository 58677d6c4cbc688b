package nodegraph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is one entry of a test script. Coordinates are screen pixels.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Zoom   float64 `json:"zoom,omitempty"`
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "click", "delete":
	case "drag", "wait":
		if st.Frames < 0 {
			return errors.New("negative frames")
		}
	case "zoom":
		if st.Zoom <= 0 {
			return errors.New("zoom must be positive")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// TestRunner replays a scripted interaction one step at a time, feeding the
// editor through the inject queue. Attach it with SetTestRunner.
type TestRunner struct {
	steps []scriptStep
	next  int
	wait  int
	done  bool
}

// LoadTestScript parses a JSON script such as
//
//	{"steps": [
//	  {"action": "drag", "fromX": 96, "fromY": 18, "toX": 300, "toY": 18, "frames": 5},
//	  {"action": "click", "x": 320, "y": 10},
//	  {"action": "delete"},
//	  {"action": "wait", "frames": 2},
//	  {"action": "zoom", "zoom": 1.5}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the editor; it advances at the start of
// every Update. A nil runner detaches.
func (e *Editor) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether every step has run and its input was consumed.
func (r *TestRunner) Done() bool { return r.done }

func (r *TestRunner) step(e *Editor) {
	// Injected events from the previous step play out first.
	if r.done || len(e.injectQueue) > 0 {
		return
	}
	if r.wait > 0 {
		r.wait--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "delete":
		e.InjectDelete()
	case "wait":
		r.wait = max(st.Frames-1, 0)
	case "zoom":
		e.state.SetZoom(st.Zoom)
	}

	if r.next == len(r.steps) && r.wait == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
