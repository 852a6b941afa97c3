package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatlayout"
	chatlipgloss "github.com/fwojciec/chatlayout/lipgloss"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the layout preview. Messages are laid
// out in terminal cells at the viewport width.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	messages []chatlayout.Message
	rc       chatlayout.RenderContext
	painter  chatlipgloss.Painter
	styles   Styles

	lines int
	err   error
	ready bool
}

// New creates a preview of messages rendered with rc and painted with
// painter. rc must measure in cells.
func New(messages []chatlayout.Message, rc chatlayout.RenderContext, painter chatlipgloss.Painter, theme chatlayout.Theme) Model {
	return Model{
		messages: messages,
		rc:       rc,
		painter:  painter,
		styles:   NewStyles(theme),
	}
}

// Flags returns the render flags currently in effect.
func (m Model) Flags() chatlayout.RenderFlags { return m.rc.Flags }

// Err returns the last layout error, if any.
func (m Model) Err() error { return m.err }

// Lines returns the number of rows in the last layout.
func (m Model) Lines() int { return m.lines }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AppendMsg:
		m.messages = append(m.messages, msg.Message)
		atBottom := m.Viewport.AtBottom()
		m = m.relayout()
		if atBottom {
			m.Viewport.GotoBottom()
		}
		return m, nil

	case RelayoutMsg:
		return m.relayout(), nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := max(msg.Height-statusHeight-1, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
		m = m.relayout()
		m.Viewport.GotoBottom()
		return m
	}
	widthChanged := m.Viewport.Width != msg.Width
	m.Viewport.Width = msg.Width
	m.Viewport.Height = vpHeight
	if widthChanged {
		m = m.relayout()
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "t":
			return m.toggle(chatlayout.Timestamp), nil
		case "e":
			return m.toggle(chatlayout.EmoteImages | chatlayout.EmoteText), nil
		case "b":
			return m.toggle(chatlayout.Badges), nil
		case "m":
			return m.toggle(chatlayout.ModeratorTools), nil
		}
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) toggle(mask chatlayout.RenderFlag) Model {
	m.rc = m.rc.WithFlags(m.rc.Flags.Toggle(mask))
	return m.relayout()
}

// relayout lays every message out at the viewport width and repaints.
func (m Model) relayout() Model {
	if !m.ready {
		return m
	}
	rows := make([]string, 0, len(m.messages))
	m.lines = 0
	m.err = nil
	for i := range m.messages {
		c, err := m.messages[i].Layout(m.Viewport.Width, 1, m.rc, chatlayout.WithIconSize(chatlipgloss.IconSize))
		if err != nil {
			m.err = err
			break
		}
		lines := c.Lines()
		m.lines += len(lines)
		rows = append(rows, m.painter.Paint(lines))
	}
	m.Viewport.SetContent(strings.Join(rows, "\n"))
	return m
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render("layout: " + m.err.Error())
	}
	f := m.rc.Flags
	parts := []string{
		onOff("t", "timestamps", f.Intersects(chatlayout.Timestamp)),
		onOff("e", "emote images", f.Intersects(chatlayout.EmoteImages)),
		onOff("b", "badges", f.Intersects(chatlayout.Badges)),
		onOff("m", "mod tools", f.Intersects(chatlayout.ModeratorTools)),
	}
	return m.styles.Muted.Render(strings.Join(parts, "  ") + "  q quit")
}

func onOff(key, name string, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return key + " " + name + ":" + state
}
