package chatlayout

import "image/color"

// FontStyle names a font role. Metrics providers map it to a concrete face.
type FontStyle int

const (
	FontTiny FontStyle = iota
	FontChatSmall
	FontChatMediumSmall
	FontChatMedium
	FontChatMediumBold
	FontChatMediumItalic
	FontChatLarge
	FontChatVeryLarge
)

// PointSize returns the nominal size of the style at scale 1.
func (s FontStyle) PointSize() float64 {
	switch s {
	case FontTiny:
		return 8
	case FontChatSmall:
		return 9
	case FontChatMediumSmall:
		return 10
	case FontChatLarge:
		return 12
	case FontChatVeryLarge:
		return 14
	default:
		return 11
	}
}

// Bold reports whether the style uses a bold weight.
func (s FontStyle) Bold() bool { return s == FontChatMediumBold }

// Italic reports whether the style is slanted.
func (s FontStyle) Italic() bool { return s == FontChatMediumItalic }

// ColorRole is a semantic color resolved by the active theme.
type ColorRole int

const (
	ColorCustom ColorRole = iota
	ColorText
	ColorLink
	ColorSystem
)

// MessageColor is either a semantic role or a fixed custom color.
type MessageColor struct {
	Role   ColorRole
	Custom color.RGBA
}

// TextColor, LinkColor and SystemColor are the semantic message colors.
var (
	TextColor   = MessageColor{Role: ColorText}
	LinkColor   = MessageColor{Role: ColorLink}
	SystemColor = MessageColor{Role: ColorSystem}
)

// CustomColor returns a MessageColor fixed to c.
func CustomColor(c color.RGBA) MessageColor {
	return MessageColor{Role: ColorCustom, Custom: c}
}

// Resolve returns the concrete color for the active theme. Custom colors
// bypass the theme lookup; normalization is up to the caller.
func (c MessageColor) Resolve(themes ThemeProvider) color.RGBA {
	if c.Role == ColorCustom {
		return c.Custom
	}
	return themes.Color(c.Role)
}
