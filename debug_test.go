package nodegraph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugModeLogsFrameStats(t *testing.T) {
	var buf bytes.Buffer
	ed := New(DefaultConfig())
	ed.SetLogger(log.New(&buf))
	ed.SetDebugMode(true)

	ed.Update(twoNodes(LinkDecl{ID: 1, Start: 2, End: 5}), Input{})

	out := buf.String()
	for _, want := range []string{"frame", "geometry", "nodes=2", "pins=2", "links=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	ed := New(DefaultConfig())
	ed.SetLogger(log.New(&buf))
	ed.SetDebugMode(true)
	ed.SetDebugMode(false)

	ed.Update(twoNodes(), Input{})
	if buf.Len() != 0 {
		t.Errorf("log output with debug off:\n%s", buf.String())
	}
}

func TestWarningsLoggedWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	ed := New(DefaultConfig())
	ed.SetLogger(log.New(&buf))

	f := twoNodes(LinkDecl{ID: 1, Start: 2, End: 5}, LinkDecl{ID: 1, Start: 2, End: 5})
	res := ed.Update(f, Input{})

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != DiagDuplicateLink {
		t.Errorf("Diagnostics = %v, want one duplicate link", res.Diagnostics)
	}
	if !strings.Contains(buf.String(), "duplicate link id") {
		t.Errorf("log output missing duplicate warning:\n%s", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	ed := New(DefaultConfig())
	ed.SetLogger(nil)
	ed.SetDebugMode(true)
	ed.Update(twoNodes(), Input{})
}
