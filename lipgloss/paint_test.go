package lipgloss_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatlayout"
	lg "github.com/fwojciec/chatlayout/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(x int, s string) chatlayout.LayoutElement {
	return chatlayout.LayoutElement{
		X:       x,
		Size:    chatlayout.Size{Width: len(s), Height: 1},
		Backing: chatlayout.TextBacking{Text: s, Color: chatlayout.DefaultTheme().Text, Scale: 1},
	}
}

func TestPainter_Paint(t *testing.T) {
	t.Parallel()

	t.Run("places elements at their columns", func(t *testing.T) {
		t.Parallel()
		lines := []chatlayout.Line{
			{Elements: []chatlayout.LayoutElement{text(0, "12:00"), text(6, "alice:"), text(13, "hi")}},
			{Y: 1, Elements: []chatlayout.LayoutElement{text(0, "there")}},
		}
		out := lg.Painter{Plain: true}.Paint(lines)
		assert.Equal(t, "12:00 alice: hi\nthere", out)
	})

	t.Run("renders images as labels fitted to their width", func(t *testing.T) {
		t.Parallel()
		lines := []chatlayout.Line{{Elements: []chatlayout.LayoutElement{
			{Size: chatlayout.Size{Width: 7, Height: 1}, Backing: chatlayout.ImageBacking{Image: "emote:Kappa"}},
			{X: 8, Size: chatlayout.Size{Width: 2, Height: 1}, Backing: chatlayout.TextIconBacking{Line1: "1", Line2: "0m"}},
		}}}
		p := lg.Painter{
			Plain: true,
			ImageLabel: func(ref chatlayout.ImageRef) string {
				return strings.TrimPrefix(string(ref), "emote:")
			},
		}
		assert.Equal(t, "[Kappa] 10", p.Paint(lines))
	})

	t.Run("styled output keeps the visible width", func(t *testing.T) {
		t.Parallel()
		lines := []chatlayout.Line{{Elements: []chatlayout.LayoutElement{text(0, "hello"), text(6, "world")}}}
		out := lg.Painter{}.Paint(lines)
		require.Contains(t, out, "hello")
		assert.Equal(t, 11, lipgloss.Width(out))
	})
}
