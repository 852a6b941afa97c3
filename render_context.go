package chatlayout

import (
	"image/color"
	"time"
)

// FontMetrics measures text for a font style at a scale.
type FontMetrics interface {
	Measure(text string, style FontStyle, scale float64) (width, height int)
}

// ImageResolver resolves an image reference to the variant best suited for
// scale. It returns an empty Image while the asset is not loaded.
type ImageResolver interface {
	Resolve(ref ImageRef, scale float64) Image
}

// ThemeProvider resolves semantic colors and adjusts arbitrary colors so
// they stay readable on the current theme.
type ThemeProvider interface {
	Color(role ColorRole) color.RGBA
	Normalize(c color.RGBA) color.RGBA
}

// Settings exposes the live user preferences the layout depends on.
type Settings interface {
	TimestampFormat() string
}

// TimeFormatter renders a point in time under a format preference.
type TimeFormatter interface {
	FormatTime(t time.Time, format string) string
}

// ModerationActions enumerates the configured moderator actions. The list
// may change between calls.
type ModerationActions interface {
	Actions() []ModerationAction
}

// ModerationAction is one moderator shortcut. Icon is empty when the action
// is displayed as two short lines of text instead.
type ModerationAction struct {
	Action string
	Icon   ImageRef
	Line1  string
	Line2  string
}

// HasIcon reports whether the action is displayed as an image.
func (a ModerationAction) HasIcon() bool { return a.Icon != "" }

// RenderContext carries everything a render pass needs besides the
// container: the active flags and the collaborators elements consult.
type RenderContext struct {
	Flags      RenderFlags
	Fonts      FontMetrics
	Images     ImageResolver
	Themes     ThemeProvider
	Settings   Settings
	Times      TimeFormatter
	Moderation ModerationActions
}

// WithFlags returns a copy of rc rendering under flags.
func (rc RenderContext) WithFlags(flags RenderFlags) RenderContext {
	rc.Flags = flags
	return rc
}
