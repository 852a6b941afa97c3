package bubbletea

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatlayout"
)

// Styles maps a Theme to lipgloss styles for the preview chrome.
type Styles struct {
	Muted lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t chatlayout.Theme) Styles {
	return Styles{
		Muted: lipgloss.NewStyle().Foreground(hexColor(t.System)).Faint(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func hexColor(c color.RGBA) lipgloss.TerminalColor {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
