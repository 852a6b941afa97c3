package chatlayout_test

import (
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/chatlayout"
	"github.com/fwojciec/chatlayout/mock"
)

// monoFonts measures every rune as charWidth pixels wide and lines as
// height pixels tall, both multiplied by scale.
func monoFonts(charWidth, height int) *mock.FontMetrics {
	return &mock.FontMetrics{
		MeasureFn: func(text string, _ chatlayout.FontStyle, scale float64) (int, int) {
			w := float64(utf8.RuneCountInString(text)*charWidth) * scale
			return int(w), int(float64(height) * scale)
		},
	}
}

// wordFonts measures whole strings from widths and single runes as
// charWidth.
func wordFonts(widths map[string]int, charWidth int) *mock.FontMetrics {
	return &mock.FontMetrics{
		MeasureFn: func(text string, _ chatlayout.FontStyle, _ float64) (int, int) {
			if w, ok := widths[text]; ok {
				return w, 10
			}
			return utf8.RuneCountInString(text) * charWidth, 10
		},
	}
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func identityThemes() *mock.ThemeProvider {
	return &mock.ThemeProvider{
		ColorFn:     func(chatlayout.ColorRole) color.RGBA { return white },
		NormalizeFn: func(c color.RGBA) color.RGBA { return c },
	}
}

func renderContext(flags chatlayout.RenderFlags) chatlayout.RenderContext {
	return chatlayout.RenderContext{
		Flags:  flags,
		Fonts:  monoFonts(10, 10),
		Themes: identityThemes(),
		Images: &mock.ImageResolver{
			ResolveFn: func(ref chatlayout.ImageRef, _ float64) chatlayout.Image {
				return chatlayout.Image{Ref: ref, Width: 20, Height: 20}
			},
		},
		Settings: &mock.Settings{TimestampFormatFn: func() string { return "15:04" }},
		Times: &mock.TimeFormatter{
			FormatTimeFn: func(t time.Time, format string) string { return t.Format(format) },
		},
		Moderation: &mock.ModerationActions{
			ActionsFn: func() []chatlayout.ModerationAction { return nil },
		},
	}
}

func mustContainer(width int, scale float64, opts ...chatlayout.ContainerOption) *chatlayout.Container {
	c, err := chatlayout.NewContainer(width, scale, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// lineTexts returns the text of every element, line by line.
func lineTexts(c *chatlayout.Container) [][]string {
	var out [][]string
	for _, l := range c.Lines() {
		var texts []string
		for _, e := range l.Elements {
			texts = append(texts, e.Text())
		}
		out = append(out, texts)
	}
	return out
}

func textElement(text string) *chatlayout.TextElement {
	return chatlayout.NewTextElement(text, chatlayout.NewFlags(chatlayout.Text), chatlayout.TextColor, chatlayout.FontChatMedium)
}
