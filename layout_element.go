package chatlayout

import (
	"image"
	"image/color"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// LayoutElement is a sized, positioned unit ready for painting. Elements are
// created by AddToContainer and positioned by the Container; after that they
// are not modified.
type LayoutElement struct {
	// Creator is the element that produced this layout element.
	Creator Element

	X, Y          int
	Size          Size
	Link          Link
	TrailingSpace bool
	Backing       Backing
}

// Rect returns the element's bounds.
func (e LayoutElement) Rect() image.Rectangle {
	return image.Rect(e.X, e.Y, e.X+e.Size.Width, e.Y+e.Size.Height)
}

// Text returns the text carried by a text-backed element and "" otherwise.
func (e LayoutElement) Text() string {
	if t, ok := e.Backing.(TextBacking); ok {
		return t.Text
	}
	return ""
}

// Backing is a sealed interface describing what a LayoutElement paints.
// The unexported marker method prevents external implementations.
type Backing interface {
	backing()
}

// ImageBacking paints an image.
type ImageBacking struct {
	Image ImageRef
}

func (ImageBacking) backing() {}

// TextBacking paints a run of text.
type TextBacking struct {
	Text  string
	Color color.RGBA
	Style FontStyle
	Scale float64
}

func (TextBacking) backing() {}

// TextIconBacking paints two short lines of text stacked in an icon-sized box.
type TextIconBacking struct {
	Line1 string
	Line2 string
	Scale float64
}

func (TextIconBacking) backing() {}

// Interface compliance checks.
var (
	_ Backing = ImageBacking{}
	_ Backing = TextBacking{}
	_ Backing = TextIconBacking{}
)

// Line is a closed row of layout elements.
type Line struct {
	Y        int
	Height   int
	Width    int
	Elements []LayoutElement
}
