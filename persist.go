package nodegraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// LayoutVersion is the layout format written by MarshalLayout.
const LayoutVersion = 1

// ErrUnknownVersion is wrapped by FormatError when a layout carries a version
// this package cannot read.
var ErrUnknownVersion = errors.New("unknown layout version")

// FormatError reports a layout document that could not be loaded. The graph
// state is left untouched when it is returned.
type FormatError struct {
	Version int // version found in the document, 0 if unreadable
	Err     error
}

func (e *FormatError) Error() string {
	if e.Version != 0 {
		return fmt.Sprintf("layout format (version %d): %v", e.Version, e.Err)
	}
	return fmt.Sprintf("layout format: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

type layoutPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type layoutEntry struct {
	ID NodeID  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type layoutDoc struct {
	Version int           `json:"version"`
	Zoom    float64       `json:"zoom"`
	Pan     layoutPoint   `json:"pan"`
	Nodes   []layoutEntry `json:"nodes"`
}

// MarshalLayout encodes node positions, pan, and zoom. Nodes are sorted by id
// so the output is stable.
func (s *GraphState) MarshalLayout() ([]byte, error) {
	doc := layoutDoc{
		Version: LayoutVersion,
		Zoom:    s.zoom,
		Pan:     layoutPoint{s.pan.X, s.pan.Y},
		Nodes:   make([]layoutEntry, 0, len(s.positions)),
	}
	for _, id := range s.NodeIDs() {
		p := s.positions[id]
		doc.Nodes = append(doc.Nodes, layoutEntry{ID: id, X: p.X, Y: p.Y})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalLayout restores positions, pan, and zoom from a layout document.
// Stored positions of nodes missing from the document are kept. The document
// is fully validated first; on error the state is unchanged.
func (s *GraphState) UnmarshalLayout(data []byte) error {
	var doc layoutDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return &FormatError{Err: err}
	}
	if doc.Version != LayoutVersion {
		return &FormatError{Version: doc.Version, Err: ErrUnknownVersion}
	}
	if !finite(doc.Zoom) || doc.Zoom <= 0 {
		return &FormatError{Version: doc.Version, Err: fmt.Errorf("invalid zoom %v", doc.Zoom)}
	}
	if !finite(doc.Pan.X) || !finite(doc.Pan.Y) {
		return &FormatError{Version: doc.Version, Err: errors.New("invalid pan")}
	}
	seen := make(map[NodeID]struct{}, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, dup := seen[n.ID]; dup {
			return &FormatError{Version: doc.Version, Err: fmt.Errorf("duplicate node id %d", n.ID)}
		}
		if !finite(n.X) || !finite(n.Y) {
			return &FormatError{Version: doc.Version, Err: fmt.Errorf("invalid position for node %d", n.ID)}
		}
		seen[n.ID] = struct{}{}
	}

	for _, n := range doc.Nodes {
		s.SetPosition(n.ID, Vec2{n.X, n.Y})
	}
	s.pan = Vec2{doc.Pan.X, doc.Pan.Y}
	s.SetZoom(doc.Zoom)
	return nil
}

// SaveLayout encodes the editor's layout.
func (e *Editor) SaveLayout() ([]byte, error) {
	return e.state.MarshalLayout()
}

// LoadLayout restores the editor's layout. Running navigation tweens are
// cancelled on success.
func (e *Editor) LoadLayout(data []byte) error {
	if err := e.state.UnmarshalLayout(data); err != nil {
		return err
	}
	e.nav = nil
	return nil
}

// SaveLayoutFile writes the layout to path.
func (e *Editor) SaveLayoutFile(path string) error {
	data, err := e.SaveLayout()
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// LoadLayoutFile reads a layout from path.
func (e *Editor) LoadLayoutFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	return e.LoadLayout(data)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
