package chatlayout_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/fwojciec/chatlayout"
	"github.com/fwojciec/chatlayout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextElement_SplitsOnSpaces(t *testing.T) {
	t.Parallel()
	e := textElement("hello  world")
	words := e.Words()
	require.Len(t, words, 3)
	assert.Equal(t, "hello", words[0].Text)
	assert.Equal(t, "", words[1].Text)
	assert.Equal(t, "world", words[2].Text)
	for _, w := range words {
		assert.Equal(t, -1, w.Width)
	}
}

func TestTextElement_GreedyPacking(t *testing.T) {
	t.Parallel()
	rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
	rc.Fonts = wordFonts(map[string]int{"alpha": 40, "beta": 40, "gamma": 40}, 8)
	c := mustContainer(100, 1)

	textElement("alpha beta gamma").AddToContainer(c, rc)

	assert.Equal(t, [][]string{{"alpha", "beta"}, {"gamma"}}, lineTexts(c))
	lines := c.Lines()
	assert.Equal(t, 80, lines[0].Width)
	assert.Equal(t, 40, lines[1].Width)
}

func TestTextElement_CharacterSplit(t *testing.T) {
	t.Parallel()

	t.Run("wide word is split into fragments that fit", func(t *testing.T) {
		t.Parallel()
		word := strings.Repeat("abcde", 5)
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		rc.Fonts = monoFonts(10, 10)
		c := mustContainer(100, 1)

		textElement(word).AddToContainer(c, rc)

		elements := c.Elements()
		require.GreaterOrEqual(t, len(elements), 3)
		var joined strings.Builder
		for _, e := range elements {
			assert.LessOrEqual(t, e.Size.Width, 100)
			assert.NotEmpty(t, e.Text())
			joined.WriteString(e.Text())
		}
		assert.Equal(t, word, joined.String())
	})

	t.Run("only the last fragment carries the trailing space", func(t *testing.T) {
		t.Parallel()
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		c := mustContainer(100, 1)

		textElement(strings.Repeat("x", 25)).AddToContainer(c, rc)

		elements := c.Elements()
		require.NotEmpty(t, elements)
		for _, e := range elements[:len(elements)-1] {
			assert.False(t, e.TrailingSpace)
		}
		assert.True(t, elements[len(elements)-1].TrailingSpace)
		assert.True(t, c.AtStartOfLine(), "a split word ends its line")
	})

	t.Run("breaks the current line before splitting", func(t *testing.T) {
		t.Parallel()
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		c := mustContainer(100, 1)

		textElement("hi "+strings.Repeat("y", 15)).AddToContainer(c, rc)

		assert.Equal(t, [][]string{{"hi"}, {"yyyyyyyyyy"}, {"yyyyy"}}, lineTexts(c))
	})

	t.Run("new line does not start with a lone character", func(t *testing.T) {
		t.Parallel()
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		c := mustContainer(100, 1)

		textElement(strings.Repeat("z", 12)).AddToContainer(c, rc)

		assert.Equal(t, [][]string{{"zzzzzzzzzz"}, {"zz"}}, lineTexts(c))
	})

	t.Run("takes the next character along only when it fits", func(t *testing.T) {
		t.Parallel()
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		rc.Fonts = monoFonts(60, 10)
		c := mustContainer(100, 1)

		textElement("abcd").AddToContainer(c, rc)

		assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}, {"d"}}, lineTexts(c))
		for _, l := range c.Lines() {
			assert.Equal(t, 60, l.Width)
		}
	})

	t.Run("characters wider than the line are emitted one by one", func(t *testing.T) {
		t.Parallel()
		rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
		rc.Fonts = monoFonts(30, 10)
		c := mustContainer(20, 1)

		textElement("abcd").AddToContainer(c, rc)

		var joined strings.Builder
		for _, e := range c.Elements() {
			assert.NotEmpty(t, e.Text())
			assert.Positive(t, e.Size.Width)
			joined.WriteString(e.Text())
		}
		assert.Equal(t, "abcd", joined.String())
	})
}

func TestTextElement_ContentPreservation(t *testing.T) {
	t.Parallel()
	words := []string{"a", "supercalifragilistic", "ünïcödé-wörd", "x", strings.Repeat("long", 30)}
	for _, width := range []int{7, 10, 23, 50, 99, 400} {
		for _, charWidth := range []int{3, 7, 10} {
			rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
			rc.Fonts = monoFonts(charWidth, 10)
			for _, word := range words {
				c := mustContainer(width, 1)
				textElement(word).AddToContainer(c, rc)

				var joined strings.Builder
				for _, e := range c.Elements() {
					joined.WriteString(e.Text())
				}
				assert.Equal(t, word, joined.String(), "width=%d charWidth=%d", width, charWidth)
			}
		}
	}
}

func TestTextElement_Visibility(t *testing.T) {
	t.Parallel()
	rc := renderContext(chatlayout.NewFlags(chatlayout.Username))
	c := mustContainer(100, 1)
	textElement("hidden words").AddToContainer(c, rc)
	assert.Empty(t, c.Lines())
}

func TestTextElement_MeasuresEveryPass(t *testing.T) {
	t.Parallel()
	var scales []float64
	rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
	rc.Fonts = &mock.FontMetrics{
		MeasureFn: func(text string, _ chatlayout.FontStyle, scale float64) (int, int) {
			scales = append(scales, scale)
			return int(10 * scale), 10
		},
	}
	e := textElement("one")

	e.AddToContainer(mustContainer(100, 1), rc)
	assert.Equal(t, 10, e.Words()[0].Width)
	e.AddToContainer(mustContainer(100, 2), rc)
	assert.Equal(t, 20, e.Words()[0].Width)
	assert.Equal(t, []float64{1, 2}, scales)
}

func TestTextElement_ColorAndLink(t *testing.T) {
	t.Parallel()
	var normalized int
	rc := renderContext(chatlayout.NewFlags(chatlayout.Text))
	themes := identityThemes()
	themes.NormalizeFn = func(c color.RGBA) color.RGBA {
		normalized++
		c.R = 0
		return c
	}
	rc.Themes = themes

	e := chatlayout.NewTextElement("go here", chatlayout.NewFlags(chatlayout.Text), chatlayout.LinkColor, chatlayout.FontChatMediumBold)
	e.SetLink(chatlayout.Link{Kind: chatlayout.LinkURL, Value: "https://example.com"})
	c := mustContainer(100, 1)
	e.AddToContainer(c, rc)

	elements := c.Elements()
	require.Len(t, elements, 2)
	assert.Equal(t, 2, normalized, "one theme normalization per word")
	for _, le := range elements {
		assert.Equal(t, chatlayout.LinkURL, le.Link.Kind)
		backing, ok := le.Backing.(chatlayout.TextBacking)
		require.True(t, ok)
		assert.Equal(t, uint8(0), backing.Color.R)
		assert.Equal(t, chatlayout.FontChatMediumBold, backing.Style)
		assert.Same(t, e, le.Creator)
	}
}
