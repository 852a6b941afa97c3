package chatlayout

import "image/color"

// Theme defines the colors semantic message roles resolve to.
type Theme struct {
	Dark       bool
	Background color.RGBA
	Text       color.RGBA
	Link       color.RGBA
	System     color.RGBA
}

// DefaultTheme returns the dark theme.
func DefaultTheme() Theme {
	return Theme{
		Dark:       true,
		Background: color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff},
		Text:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Link:       color.RGBA{R: 0x66, G: 0xaa, B: 0xff, A: 0xff},
		System:     color.RGBA{R: 0x8c, G: 0x8c, B: 0x8c, A: 0xff},
	}
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Link:       color.RGBA{R: 0x00, G: 0x44, B: 0xcc, A: 0xff},
		System:     color.RGBA{R: 0x6e, G: 0x6e, B: 0x6e, A: 0xff},
	}
}

// Color returns the color for role. Custom and unknown roles resolve to
// the text color.
func (t Theme) Color(role ColorRole) color.RGBA {
	switch role {
	case ColorLink:
		return t.Link
	case ColorSystem:
		return t.System
	default:
		return t.Text
	}
}
