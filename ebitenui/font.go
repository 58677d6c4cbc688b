package ebitenui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/nodegraph"
)

const defaultFontSize = 14

// Font wraps a text/v2 face and measures labels for node layout.
type Font struct {
	face       *text.GoTextFace
	lineHeight float64
}

// LoadFont parses TrueType or OpenType data at the given size.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lineHeight: m.HAscent + m.HDescent + m.HLineGap}, nil
}

var defaultFont *Font

// DefaultFont returns Go Regular at 14px.
func DefaultFont() *Font {
	if defaultFont == nil {
		f, err := LoadFont(goregular.TTF, defaultFontSize)
		if err != nil {
			panic(fmt.Sprintf("ebitenui: embedded font: %v", err))
		}
		defaultFont = f
	}
	return defaultFont
}

// MeasureText implements nodegraph.TextMeasurer.
func (f *Font) MeasureText(s string) nodegraph.Vec2 {
	w, h := text.Measure(s, f.face, f.lineHeight)
	return nodegraph.Vec2{X: w, Y: h}
}

// Label is nodegraph.Label measured with f.
func (f *Font) Label(s string) nodegraph.Content {
	return nodegraph.Label(s, f)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lineHeight }
