// Package canvas measures text with real font faces through tdewolff/canvas.
package canvas

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/fwojciec/chatlayout"
	"github.com/tdewolff/canvas"
)

var _ chatlayout.FontMetrics = (*Metrics)(nil)

// pxPerMM converts canvas millimetres to CSS pixels at 96 dpi.
const pxPerMM = 96 / 25.4

// Fonts holds encoded TrueType or OpenType data. Bold and Italic fall back
// to Regular when empty.
type Fonts struct {
	Regular []byte
	Bold    []byte
	Italic  []byte
}

// Metrics measures text in pixels. It is safe for concurrent use.
type Metrics struct {
	family *canvas.FontFamily

	mu    sync.Mutex
	faces map[faceKey]*canvas.FontFace
}

type faceKey struct {
	style canvas.FontStyle
	size  float64
}

// NewMetrics loads fonts into a single family.
func NewMetrics(name string, fonts Fonts) (*Metrics, error) {
	if len(fonts.Regular) == 0 {
		return nil, fmt.Errorf("load font %s: no regular face", name)
	}
	family := canvas.NewFontFamily(name)
	load := []struct {
		data  []byte
		style canvas.FontStyle
	}{
		{fonts.Regular, canvas.FontRegular},
		{orRegular(fonts.Bold, fonts.Regular), canvas.FontBold},
		{orRegular(fonts.Italic, fonts.Regular), canvas.FontItalic},
	}
	for _, l := range load {
		if err := family.LoadFont(l.data, 0, l.style); err != nil {
			return nil, fmt.Errorf("load font %s: %w", name, err)
		}
	}
	return &Metrics{family: family, faces: make(map[faceKey]*canvas.FontFace)}, nil
}

func orRegular(data, regular []byte) []byte {
	if len(data) == 0 {
		return regular
	}
	return data
}

// Measure returns the advance width and line height of text in pixels.
func (m *Metrics) Measure(text string, style chatlayout.FontStyle, scale float64) (int, int) {
	face := m.face(style, scale)
	w := face.TextWidth(text) * pxPerMM
	h := face.Metrics().LineHeight * pxPerMM
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (m *Metrics) face(style chatlayout.FontStyle, scale float64) *canvas.FontFace {
	key := faceKey{style: canvasStyle(style), size: style.PointSize() * scale}
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := m.family.Face(key.size, color.Black, key.style, canvas.FontNormal)
	m.faces[key] = f
	return f
}

func canvasStyle(style chatlayout.FontStyle) canvas.FontStyle {
	switch {
	case style.Bold():
		return canvas.FontBold
	case style.Italic():
		return canvas.FontItalic
	default:
		return canvas.FontRegular
	}
}
