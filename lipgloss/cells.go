package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatlayout"
)

var _ chatlayout.ImageResolver = CellImages{}

// IconSize fits a moderation icon label such as "[ban]" on one row.
var IconSize = chatlayout.Size{Width: 5, Height: 1}

// CellImages sizes images as one-row labels so that a Painter can draw
// them. An image unknown to Images resolves empty.
type CellImages struct {
	// Images decides which refs exist. Nil treats every ref as loaded.
	Images chatlayout.ImageResolver
	// Label names an image. Defaults to the ref.
	Label func(ref chatlayout.ImageRef) string
}

// Resolve returns the label size of ref in cells. Scale is applied by the
// image element, not here.
func (c CellImages) Resolve(ref chatlayout.ImageRef, scale float64) chatlayout.Image {
	if c.Images != nil && c.Images.Resolve(ref, scale).Empty() {
		return chatlayout.Image{Ref: ref}
	}
	label := string(ref)
	if c.Label != nil {
		label = c.Label(ref)
	}
	return chatlayout.Image{Ref: ref, Width: lipgloss.Width("[" + label + "]"), Height: 1}
}
