// Package lipgloss resolves chat colors for terminal themes and paints
// finished layouts as ANSI-styled text.
package lipgloss

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatlayout"
	"github.com/lucasb-eyer/go-colorful"
)

var _ chatlayout.ThemeProvider = (*Themes)(nil)

// Themes implements chatlayout.ThemeProvider for one theme.
type Themes struct {
	theme chatlayout.Theme
}

// NewThemes returns a provider for theme.
func NewThemes(theme chatlayout.Theme) *Themes {
	return &Themes{theme: theme}
}

// DetectTheme returns the dark or light theme matching the terminal
// background.
func DetectTheme() chatlayout.Theme {
	if lipgloss.HasDarkBackground() {
		return chatlayout.DefaultTheme()
	}
	return chatlayout.LightTheme()
}

// Theme returns the active theme.
func (t *Themes) Theme() chatlayout.Theme { return t.theme }

// Color returns the theme color for role.
func (t *Themes) Color(role chatlayout.ColorRole) color.RGBA {
	return t.theme.Color(role)
}

// Normalize keeps c readable on the theme background. On dark themes
// colors are lifted to at least half lightness and saturated blues are
// brightened further; on light themes colors are capped at half lightness
// and saturated yellows and greens are darkened further.
func (t *Themes) Normalize(c color.RGBA) color.RGBA {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	h, s, l := cf.Hsl()
	if t.theme.Dark {
		l = math.Max(l, 0.5)
		if l < 0.6 && h > 196 && h < 300 {
			l += math.Sin((h-196)/(300-196)*math.Pi) * s * 0.4
		}
	} else {
		l = math.Min(l, 0.5)
		if l > 0.4 && h > 36 && h < 120 {
			l -= math.Sin((h-36)/(120-36)*math.Pi) * s * 0.4
		}
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
