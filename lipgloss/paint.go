package lipgloss

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/chatlayout"
)

// Painter renders laid-out lines as terminal text. It expects layouts
// measured in cells, one pixel per cell.
type Painter struct {
	// ImageLabel names an image for display. Defaults to the image ref.
	ImageLabel func(ref chatlayout.ImageRef) string

	// Plain disables ANSI styling.
	Plain bool
}

// Paint renders lines, one terminal row per line.
func (p Painter) Paint(lines []chatlayout.Line) string {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, p.paintLine(l))
	}
	return strings.Join(rows, "\n")
}

func (p Painter) paintLine(l chatlayout.Line) string {
	var b strings.Builder
	x := 0
	for _, e := range l.Elements {
		if e.X > x {
			b.WriteString(strings.Repeat(" ", e.X-x))
			x = e.X
		}
		cell := p.paintElement(e)
		b.WriteString(cell)
		x += lipgloss.Width(cell)
	}
	return b.String()
}

func (p Painter) paintElement(e chatlayout.LayoutElement) string {
	switch backing := e.Backing.(type) {
	case chatlayout.TextBacking:
		if p.Plain {
			return backing.Text
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(backing.Color))).
			Bold(backing.Style.Bold()).
			Italic(backing.Style.Italic())
		if e.Link.Kind == chatlayout.LinkURL {
			style = style.Underline(true)
		}
		return style.Render(backing.Text)
	case chatlayout.ImageBacking:
		label := string(backing.Image)
		if p.ImageLabel != nil {
			label = p.ImageLabel(backing.Image)
		}
		return fit("["+label+"]", e.Size.Width)
	case chatlayout.TextIconBacking:
		return fit(backing.Line1+backing.Line2, e.Size.Width)
	default:
		return strings.Repeat(" ", e.Size.Width)
	}
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
