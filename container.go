package chatlayout

import "fmt"

// Container packs layout elements into lines no wider than its width.
// A Container serves a single render pass and is not safe for concurrent use.
//
// Trailing spaces hang: the space after an element is only charged when
// another element is placed after it on the same line, so the consumed
// width of the open line never exceeds the target width once AddElement is
// used, unless a single element is wider than the line by itself.
type Container struct {
	width       int
	scale       float64
	spaceWidth  int
	lineSpacing int
	iconSize    Size

	// open line
	x       int
	pending int
	line    []LayoutElement

	y     int
	lines []Line
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithSpaceWidth sets the width charged for an element's trailing space.
func WithSpaceWidth(px int) ContainerOption {
	return func(c *Container) {
		if px > 0 {
			c.spaceWidth = px
		}
	}
}

// WithLineSpacing sets the vertical gap between lines.
func WithLineSpacing(px int) ContainerOption {
	return func(c *Container) {
		if px > 0 {
			c.lineSpacing = px
		}
	}
}

// WithIconSize sets the unscaled size of a moderation icon. The default is
// 16x16.
func WithIconSize(size Size) ContainerOption {
	return func(c *Container) {
		if size.Width > 0 && size.Height > 0 {
			c.iconSize = size
		}
	}
}

// NewContainer returns an empty container for lines of width pixels at scale.
func NewContainer(width int, scale float64, opts ...ContainerOption) (*Container, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d: %w", width, ErrInvalidWidth)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("scale must be positive, got %g: %w", scale, ErrInvalidScale)
	}
	c := &Container{width: width, scale: scale, iconSize: Size{Width: defaultIconSize, Height: defaultIconSize}}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Scale returns the scale factor elements are sized for.
func (c *Container) Scale() float64 { return c.scale }

// Width returns the target line width.
func (c *Container) Width() int { return c.width }

// IconSize returns the unscaled size of a moderation icon.
func (c *Container) IconSize() Size { return c.iconSize }

// LineWidth returns the width consumed on the open line.
func (c *Container) LineWidth() int { return c.x }

// FitsInLine reports whether an element of width px can be appended to the
// open line without exceeding the target width.
func (c *Container) FitsInLine(px int) bool {
	return c.x+c.pending+px <= c.width
}

// AtStartOfLine reports whether the open line is empty.
func (c *Container) AtStartOfLine() bool { return len(c.line) == 0 }

// AddElementNoLineBreak appends e to the open line without checking that it
// fits. Callers check FitsInLine first.
func (c *Container) AddElementNoLineBreak(e LayoutElement) {
	e.X = c.x + c.pending
	c.x = e.X + e.Size.Width
	c.pending = 0
	if e.TrailingSpace {
		c.pending = c.spaceWidth
	}
	c.line = append(c.line, e)
}

// AddElement appends e, breaking the line first when e does not fit and the
// open line already holds something. An element wider than the whole line
// is placed alone on its own line.
func (c *Container) AddElement(e LayoutElement) {
	if !c.FitsInLine(e.Size.Width) && !c.AtStartOfLine() {
		c.BreakLine()
	}
	c.AddElementNoLineBreak(e)
}

// BreakLine closes the open line and opens an empty one. Breaking an empty
// line does nothing.
func (c *Container) BreakLine() {
	if c.AtStartOfLine() {
		return
	}
	l := closeLine(c.line, c.x, c.y)
	c.lines = append(c.lines, l)
	c.y += l.Height + c.lineSpacing
	c.x = 0
	c.pending = 0
	c.line = nil
}

// Lines returns the closed lines followed by the open line if it is not
// empty. The container is not modified.
func (c *Container) Lines() []Line {
	lines := make([]Line, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	if !c.AtStartOfLine() {
		lines = append(lines, closeLine(c.line, c.x, c.y))
	}
	return lines
}

// Elements returns every layout element in placement order.
func (c *Container) Elements() []LayoutElement {
	var out []LayoutElement
	for _, l := range c.Lines() {
		out = append(out, l.Elements...)
	}
	return out
}

// Height returns the total height of all lines including the open one.
func (c *Container) Height() int {
	if c.AtStartOfLine() {
		if c.y == 0 {
			return 0
		}
		return c.y - c.lineSpacing
	}
	return c.y + closeLine(c.line, c.x, c.y).Height
}

// closeLine bottom-aligns elements on the tallest one.
func closeLine(elements []LayoutElement, width, y int) Line {
	height := 0
	for _, e := range elements {
		height = max(height, e.Size.Height)
	}
	placed := make([]LayoutElement, len(elements))
	for i, e := range elements {
		e.Y = y + height - e.Size.Height
		placed[i] = e
	}
	return Line{Y: y, Height: height, Width: width, Elements: placed}
}
