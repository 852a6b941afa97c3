package bubbletea_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatlayout"
	bt "github.com/fwojciec/chatlayout/bubbletea"
	chatlipgloss "github.com/fwojciec/chatlayout/lipgloss"
	"github.com/fwojciec/chatlayout/mock"
	"github.com/fwojciec/chatlayout/strftime"
	"github.com/fwojciec/chatlayout/uniseg"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func renderContext() chatlayout.RenderContext {
	return chatlayout.RenderContext{
		Flags:  chatlayout.NewFlags(chatlayout.Default),
		Fonts:  uniseg.NewMetrics(),
		Images: chatlipgloss.CellImages{},
		Themes: chatlipgloss.NewThemes(chatlayout.DefaultTheme()),
		Settings: &mock.Settings{
			TimestampFormatFn: func() string { return "%H:%M" },
		},
		Times: strftime.Formatter{Location: time.UTC},
		Moderation: &mock.ModerationActions{
			ActionsFn: func() []chatlayout.ModerationAction {
				return []chatlayout.ModerationAction{chatlayout.NewModerationAction("/timeout {user} 600")}
			},
		},
	}
}

func message(sender, text string) chatlayout.Message {
	return chatlayout.Builder{ModeratorTools: true}.Build(chatlayout.ChatLine{
		Sender: sender,
		Text:   text,
		Time:   noon,
	})
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, width, height int, messages ...chatlayout.Message) bt.Model {
	t.Helper()
	m := bt.New(messages, renderContext(), chatlipgloss.Painter{Plain: true}, chatlayout.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func key(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}
