// Package uniseg measures text in terminal cells using Unicode grapheme
// cluster widths.
package uniseg

import (
	"math"

	"github.com/fwojciec/chatlayout"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var _ chatlayout.FontMetrics = (*Metrics)(nil)

// Metrics implements chatlayout.FontMetrics for a monospace grid. A cell is
// CellWidth by CellHeight pixels at scale 1.
type Metrics struct {
	CellWidth  int
	CellHeight int

	// EastAsian counts ambiguous-width runes as two cells, matching
	// terminals configured for CJK locales.
	EastAsian bool
}

// NewMetrics returns metrics where one cell is one pixel, so widths are
// reported in cells.
func NewMetrics() *Metrics {
	return &Metrics{CellWidth: 1, CellHeight: 1}
}

// Measure returns the width and height of text. The style does not change
// cell widths.
func (m *Metrics) Measure(text string, _ chatlayout.FontStyle, scale float64) (int, int) {
	cells := m.cells(text)
	w := math.Round(float64(cells*m.CellWidth) * scale)
	h := math.Round(float64(m.CellHeight) * scale)
	return int(w), int(h)
}

func (m *Metrics) cells(text string) int {
	if m.EastAsian {
		cond := runewidth.NewCondition()
		cond.EastAsianWidth = true
		return cond.StringWidth(text)
	}
	return uniseg.StringWidth(text)
}
