package nodegraph

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds interaction tuning. Distances are in screen pixels unless
// noted otherwise; they are divided by the zoom factor before being compared
// against canvas-space geometry so hit targets keep a constant on-screen size.
type Config struct {
	ZoomMin  float64 `toml:"zoom_min"`
	ZoomMax  float64 `toml:"zoom_max"`
	ZoomStep float64 `toml:"zoom_step"` // relative zoom change per wheel notch

	LinkHitThreshold float64 `toml:"link_hit_threshold"`
	PinHoverRadius   float64 `toml:"pin_hover_radius"`
	DragDeadZone     float64 `toml:"drag_dead_zone"`

	// Horizontal control point offset clamp for link curves, in canvas units.
	CurveMin     float64 `toml:"curve_min"`
	CurveMax     float64 `toml:"curve_max"`
	CurveSamples int     `toml:"curve_samples"` // polyline steps used for hit-testing and drawing

	DefaultOrigin Vec2 `toml:"default_origin"` // canvas position of the first auto-placed node
	CascadeOffset Vec2 `toml:"cascade_offset"` // offset between consecutive auto-placed nodes

	PanButton        MouseButton  `toml:"pan_button"`
	PanModifier      KeyModifiers `toml:"pan_modifier"`      // left drag on empty canvas pans while held
	AdditiveModifier KeyModifiers `toml:"additive_modifier"` // selection adds instead of replacing
	DetachModifier   KeyModifiers `toml:"detach_modifier"`   // press on a link detaches it; zero disables
}

// DefaultConfig returns the default interaction settings.
func DefaultConfig() Config {
	return Config{
		ZoomMin:          0.25,
		ZoomMax:          4,
		ZoomStep:         0.1,
		LinkHitThreshold: 10,
		PinHoverRadius:   10,
		DragDeadZone:     4,
		CurveMin:         25,
		CurveMax:         200,
		CurveSamples:     32,
		DefaultOrigin:    Vec2{100, 100},
		CascadeOffset:    Vec2{40, 40},
		PanButton:        MouseButtonMiddle,
		PanModifier:      ModAlt,
		AdditiveModifier: ModShift,
	}
}

// sanitize repairs values that would break the engine (inverted bounds,
// non-positive sample counts) without rejecting the config.
func (c *Config) sanitize() {
	if c.ZoomMin <= 0 {
		c.ZoomMin = 0.01
	}
	if c.ZoomMax < c.ZoomMin {
		c.ZoomMax = c.ZoomMin
	}
	if c.CurveSamples < 2 {
		c.CurveSamples = 2
	}
	if c.CurveMax < c.CurveMin {
		c.CurveMax = c.CurveMin
	}
}

// StyleFlags toggles optional visual elements.
type StyleFlags uint8

const (
	StyleNodeOutline StyleFlags = 1 << iota // stroke node borders
	StyleGridLines                          // draw the background grid
)

// Style controls the look of the editor. Sizes are in canvas units and are
// scaled by the zoom factor when drawn.
type Style struct {
	GridSpacing        float64 `toml:"grid_spacing"`
	NodeCornerRounding float64 `toml:"node_corner_rounding"`
	NodePadding        Vec2    `toml:"node_padding"`
	NodeBorderWidth    float64 `toml:"node_border_width"`
	AttributeSpacing   float64 `toml:"attribute_spacing"`

	LinkThickness float64 `toml:"link_thickness"`

	PinCircleRadius     float64 `toml:"pin_circle_radius"`
	PinQuadSideLength   float64 `toml:"pin_quad_side_length"`
	PinTriangleSideLen  float64 `toml:"pin_triangle_side_length"`
	PinLineThickness    float64 `toml:"pin_line_thickness"`
	// PinOffset moves anchors outward from the node border. Any value
	// above zero puts anchors outside the node rect; hover still finds
	// them by anchor distance.
	PinOffset           float64 `toml:"pin_offset"`
	BoxSelectorLineWide float64 `toml:"box_selector_line_width"`

	Flags StyleFlags `toml:"flags"`

	Colors Palette `toml:"colors"`
}

// Palette holds every colour the draw pass uses.
type Palette struct {
	NodeBackground         Color `toml:"node_background"`
	NodeBackgroundHovered  Color `toml:"node_background_hovered"`
	NodeBackgroundSelected Color `toml:"node_background_selected"`
	NodeOutline            Color `toml:"node_outline"`
	TitleBar               Color `toml:"title_bar"`
	TitleBarHovered        Color `toml:"title_bar_hovered"`
	TitleBarSelected       Color `toml:"title_bar_selected"`
	Link                   Color `toml:"link"`
	LinkHovered            Color `toml:"link_hovered"`
	LinkSelected           Color `toml:"link_selected"`
	Pin                    Color `toml:"pin"`
	PinHovered             Color `toml:"pin_hovered"`
	BoxSelector            Color `toml:"box_selector"`
	BoxSelectorOutline     Color `toml:"box_selector_outline"`
	GridBackground         Color `toml:"grid_background"`
	GridLine               Color `toml:"grid_line"`
	Text                   Color `toml:"text"`
}

// DefaultStyle returns the dark theme.
func DefaultStyle() Style {
	return Style{
		GridSpacing:         32,
		NodeCornerRounding:  4,
		NodePadding:         Vec2{8, 8},
		NodeBorderWidth:     1,
		AttributeSpacing:    4,
		LinkThickness:       3,
		PinCircleRadius:     4,
		PinQuadSideLength:   7,
		PinTriangleSideLen:  9.5,
		PinLineThickness:    1,
		BoxSelectorLineWide: 1,
		Flags:               StyleNodeOutline | StyleGridLines,
		Colors:              DarkPalette(),
	}
}

// DarkPalette is the default colour set.
func DarkPalette() Palette {
	return Palette{
		NodeBackground:         rgba8(50, 50, 50, 255),
		NodeBackgroundHovered:  rgba8(75, 75, 75, 255),
		NodeBackgroundSelected: rgba8(75, 75, 75, 255),
		NodeOutline:            rgba8(100, 100, 100, 255),
		TitleBar:               rgba8(41, 74, 122, 255),
		TitleBarHovered:        rgba8(66, 150, 250, 255),
		TitleBarSelected:       rgba8(66, 150, 250, 255),
		Link:                   rgba8(61, 133, 224, 200),
		LinkHovered:            rgba8(66, 150, 250, 255),
		LinkSelected:           rgba8(66, 150, 250, 255),
		Pin:                    rgba8(53, 150, 250, 180),
		PinHovered:             rgba8(53, 150, 250, 255),
		BoxSelector:            rgba8(61, 133, 224, 30),
		BoxSelectorOutline:     rgba8(61, 133, 224, 150),
		GridBackground:         rgba8(40, 40, 50, 200),
		GridLine:               rgba8(200, 200, 200, 40),
		Text:                   rgba8(230, 230, 230, 255),
	}
}

// ClassicPalette is the blue-violet imnodes "classic" colour set.
func ClassicPalette() Palette {
	return Palette{
		NodeBackground:         rgba8(50, 50, 50, 255),
		NodeBackgroundHovered:  rgba8(75, 75, 75, 255),
		NodeBackgroundSelected: rgba8(75, 75, 75, 255),
		NodeOutline:            rgba8(100, 100, 100, 255),
		TitleBar:               rgba8(69, 69, 138, 255),
		TitleBarHovered:        rgba8(82, 82, 161, 255),
		TitleBarSelected:       rgba8(82, 82, 161, 255),
		Link:                   rgba8(255, 255, 255, 100),
		LinkHovered:            rgba8(105, 99, 204, 153),
		LinkSelected:           rgba8(105, 99, 204, 153),
		Pin:                    rgba8(89, 102, 156, 170),
		PinHovered:             rgba8(102, 122, 179, 200),
		BoxSelector:            rgba8(82, 82, 161, 100),
		BoxSelectorOutline:     rgba8(82, 82, 161, 255),
		GridBackground:         rgba8(29, 29, 29, 200),
		GridLine:               rgba8(200, 200, 200, 40),
		Text:                   rgba8(230, 230, 230, 255),
	}
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa" so colours can be written as
// strings in TOML files.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", string(text))
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(text), err)
	}
	*c = rgba8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
	return nil
}

// MarshalText formats the colour as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	ch := func(f float64) uint8 {
		if f <= 0 {
			return 0
		}
		if f >= 1 {
			return 255
		}
		return uint8(f*255 + 0.5)
	}
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", ch(c.R), ch(c.G), ch(c.B), ch(c.A)), nil
}

// settingsFile is the TOML document layout accepted by LoadConfig.
type settingsFile struct {
	Editor Config `toml:"editor"`
	Style  Style  `toml:"style"`
}

// LoadConfig decodes a TOML document with optional [editor] and [style]
// tables. Keys that are absent keep their default values.
func LoadConfig(data []byte) (Config, Style, error) {
	doc := settingsFile{Editor: DefaultConfig(), Style: DefaultStyle()}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Config{}, Style{}, fmt.Errorf("parse config: %w", err)
	}
	doc.Editor.sanitize()
	return doc.Editor, doc.Style, nil
}

// LoadConfigFile reads and decodes a TOML settings file.
func LoadConfigFile(path string) (Config, Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Style{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}
