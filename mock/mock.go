// Package mock provides test doubles for chatlayout interfaces using function fields.
package mock

import (
	"image/color"
	"time"

	"github.com/fwojciec/chatlayout"
)

// Interface compliance checks.
var (
	_ chatlayout.FontMetrics       = (*FontMetrics)(nil)
	_ chatlayout.ImageResolver     = (*ImageResolver)(nil)
	_ chatlayout.ThemeProvider     = (*ThemeProvider)(nil)
	_ chatlayout.Settings          = (*Settings)(nil)
	_ chatlayout.TimeFormatter     = (*TimeFormatter)(nil)
	_ chatlayout.ModerationActions = (*ModerationActions)(nil)
	_ chatlayout.EmoteSource       = (*EmoteSource)(nil)
	_ chatlayout.CompletionSource  = (*CompletionSource)(nil)
)

// FontMetrics is a test double for chatlayout.FontMetrics.
// Set MeasureFn before calling Measure.
type FontMetrics struct {
	MeasureFn func(text string, style chatlayout.FontStyle, scale float64) (int, int)
}

// Measure delegates to MeasureFn.
func (f *FontMetrics) Measure(text string, style chatlayout.FontStyle, scale float64) (int, int) {
	return f.MeasureFn(text, style, scale)
}

// ImageResolver is a test double for chatlayout.ImageResolver.
// Set ResolveFn before calling Resolve.
type ImageResolver struct {
	ResolveFn func(ref chatlayout.ImageRef, scale float64) chatlayout.Image
}

// Resolve delegates to ResolveFn.
func (r *ImageResolver) Resolve(ref chatlayout.ImageRef, scale float64) chatlayout.Image {
	return r.ResolveFn(ref, scale)
}

// ThemeProvider is a test double for chatlayout.ThemeProvider.
// Set the function fields for the methods you need.
type ThemeProvider struct {
	ColorFn     func(role chatlayout.ColorRole) color.RGBA
	NormalizeFn func(c color.RGBA) color.RGBA
}

// Color delegates to ColorFn.
func (t *ThemeProvider) Color(role chatlayout.ColorRole) color.RGBA {
	return t.ColorFn(role)
}

// Normalize delegates to NormalizeFn.
func (t *ThemeProvider) Normalize(c color.RGBA) color.RGBA {
	return t.NormalizeFn(c)
}

// Settings is a test double for chatlayout.Settings.
// Set TimestampFormatFn before calling TimestampFormat.
type Settings struct {
	TimestampFormatFn func() string
}

// TimestampFormat delegates to TimestampFormatFn.
func (s *Settings) TimestampFormat() string {
	return s.TimestampFormatFn()
}

// TimeFormatter is a test double for chatlayout.TimeFormatter.
// Set FormatTimeFn before calling FormatTime.
type TimeFormatter struct {
	FormatTimeFn func(t time.Time, format string) string
}

// FormatTime delegates to FormatTimeFn.
func (f *TimeFormatter) FormatTime(t time.Time, format string) string {
	return f.FormatTimeFn(t, format)
}

// ModerationActions is a test double for chatlayout.ModerationActions.
// Set ActionsFn before calling Actions.
type ModerationActions struct {
	ActionsFn func() []chatlayout.ModerationAction
}

// Actions delegates to ActionsFn.
func (m *ModerationActions) Actions() []chatlayout.ModerationAction {
	return m.ActionsFn()
}

// EmoteSource is a test double for chatlayout.EmoteSource.
// Set EmoteFn before calling Emote.
type EmoteSource struct {
	EmoteFn func(name string) (*chatlayout.Emote, bool)
}

// Emote delegates to EmoteFn.
func (s *EmoteSource) Emote(name string) (*chatlayout.Emote, bool) {
	return s.EmoteFn(name)
}

// CompletionSource is a test double for chatlayout.CompletionSource.
// Set CompletionsFn before calling Completions.
type CompletionSource struct {
	CompletionsFn func(channel string) []string
}

// Completions delegates to CompletionsFn.
func (s *CompletionSource) Completions(channel string) []string {
	return s.CompletionsFn(channel)
}
