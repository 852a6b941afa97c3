package chatlayout

import (
	"image/color"
	"strings"
	"sync"
)

// Word is a space-delimited piece of a text element. Width holds the width
// measured by the most recent layout pass, or -1 before the first pass.
type Word struct {
	Text  string
	Width int
}

// TextElement is a run of text in one color and font style. It is laid out
// word by word; a word wider than a whole line is split between characters.
type TextElement struct {
	base
	color MessageColor
	style FontStyle

	mu    sync.Mutex
	words []Word
}

// NewTextElement splits text on spaces into words.
func NewTextElement(text string, flags RenderFlags, color MessageColor, style FontStyle) *TextElement {
	e := &TextElement{
		base:  newBase(flags),
		color: color,
		style: style,
	}
	for _, w := range strings.Split(text, " ") {
		e.words = append(e.words, Word{Text: w, Width: -1})
	}
	return e
}

// Words returns a copy of the element's words.
func (e *TextElement) Words() []Word {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Word, len(e.words))
	copy(out, e.words)
	return out
}

// Style returns the element's font style.
func (e *TextElement) Style() FontStyle { return e.style }

// Color returns the element's color.
func (e *TextElement) Color() MessageColor { return e.color }

// AddToContainer packs the element's words greedily into c.
func (e *TextElement) AddToContainer(c *Container, rc RenderContext) {
	if !e.visible(rc) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	scale := c.Scale()
	for i := range e.words {
		w := &e.words[i]
		// Widths are measured on every pass; the scale may have changed.
		width, height := rc.Fonts.Measure(w.Text, e.style, scale)
		w.Width = width

		run := textRun{
			element: e,
			color:   rc.Themes.Normalize(e.color.Resolve(rc.Themes)),
			height:  height,
			scale:   scale,
		}

		if c.FitsInLine(width) {
			c.AddElementNoLineBreak(run.layout(w.Text, width, e.trailingSpace))
			continue
		}
		if !c.AtStartOfLine() {
			c.BreakLine()
			if c.FitsInLine(width) {
				c.AddElementNoLineBreak(run.layout(w.Text, width, e.trailingSpace))
				continue
			}
		}
		e.splitWord(c, rc, w.Text, run)
	}
}

// splitWord lays out a word that is wider than an empty line, breaking it
// between characters. Every character is emitted exactly once and in order.
func (e *TextElement) splitWord(c *Container, rc RenderContext, text string, run textRun) {
	runes := []rune(text)
	if len(runes) == 0 {
		c.AddElement(run.layout("", 0, e.trailingSpace))
		c.BreakLine()
		return
	}
	charWidth := func(r rune) int {
		w, _ := rc.Fonts.Measure(string(r), e.style, run.scale)
		return w
	}

	start := 0
	width := charWidth(runes[0])
	i := 1
	for i < len(runes) {
		cw := charWidth(runes[i])
		if c.FitsInLine(width + cw) {
			width += cw
			i++
			continue
		}
		c.AddElementNoLineBreak(run.layout(string(runes[start:i]), width, false))
		c.BreakLine()

		start = i
		width = cw
		i++
		// Take the next character along so the new line does not start
		// with a lone character fragment.
		if i+1 < len(runes) {
			if next := charWidth(runes[i]); c.FitsInLine(width + next) {
				width += next
				i++
			}
		}
	}

	c.AddElement(run.layout(string(runes[start:]), width, e.trailingSpace))
	c.BreakLine()
}

// textRun holds what every fragment of one word shares.
type textRun struct {
	element *TextElement
	color   color.RGBA
	height  int
	scale   float64
}

func (r textRun) layout(text string, width int, trailingSpace bool) LayoutElement {
	return LayoutElement{
		Creator:       r.element,
		Size:          Size{Width: width, Height: r.height},
		Link:          r.element.link,
		TrailingSpace: trailingSpace,
		Backing: TextBacking{
			Text:  text,
			Color: r.color,
			Style: r.element.style,
			Scale: r.scale,
		},
	}
}
