package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatlayout"
	"github.com/fwojciec/chatlayout/asset"
	bt "github.com/fwojciec/chatlayout/bubbletea"
	"github.com/fwojciec/chatlayout/fsnotify"
	"github.com/fwojciec/chatlayout/fuzzy"
	"github.com/fwojciec/chatlayout/irc"
	layoutjson "github.com/fwojciec/chatlayout/json"
	chatlipgloss "github.com/fwojciec/chatlayout/lipgloss"
	"github.com/fwojciec/chatlayout/strftime"
)

// emotePattern selects the image files loaded from -emotes.
const emotePattern = "**/*.{png,gif,jpg,jpeg,webp}"

// app holds everything the command wires together.
type app struct {
	cfg      config
	settings *fsnotify.Store
	assets   *asset.Cache
	chatters *fuzzy.Chatters
	theme    chatlayout.Theme
	rc       chatlayout.RenderContext
	layout   []chatlayout.ContainerOption
	cells    bool
	builder  chatlayout.Builder
	now      func() time.Time

	messages []chatlayout.Message
}

func newApp(cfg config) (*app, error) {
	settings, err := fsnotify.Open(cfg.settings)
	if err != nil {
		return nil, err
	}

	assets := asset.NewCache()
	if cfg.emotesDir != "" {
		if _, err := assets.LoadDir(os.DirFS(cfg.emotesDir), emotePattern); err != nil {
			return nil, fmt.Errorf("load emotes: %w", err)
		}
	}
	if cfg.emojiDir != "" {
		if _, err := assets.LoadEmojiDir(os.DirFS(cfg.emojiDir), emotePattern); err != nil {
			return nil, fmt.Errorf("load emoji: %w", err)
		}
	}

	m, err := resolveMetrics(cfg.fontPath, assets)
	if err != nil {
		return nil, err
	}

	theme := chatlayout.LightTheme()
	if !cfg.light {
		theme = chatlipgloss.DetectTheme()
	}

	return &app{
		cfg:      cfg,
		settings: settings,
		assets:   assets,
		chatters: &fuzzy.Chatters{},
		theme:    theme,
		rc: chatlayout.RenderContext{
			Flags:      renderFlags(cfg),
			Fonts:      m.fonts,
			Images:     m.images,
			Themes:     chatlipgloss.NewThemes(theme),
			Settings:   settings,
			Times:      strftime.Formatter{},
			Moderation: settings,
		},
		layout:  m.layout,
		cells:   m.cells,
		builder: chatlayout.Builder{Emotes: assets, ModeratorTools: true},
		now:     time.Now,
	}, nil
}

// renderFlags returns the flags a render pass starts with.
func renderFlags(cfg config) chatlayout.RenderFlags {
	flags := chatlayout.NewFlags(chatlayout.Default)
	flags.SetTo(chatlayout.ModeratorTools, cfg.mod)
	if cfg.textEmotes {
		flags.Unset(chatlayout.EmoteImages)
		flags.Set(chatlayout.EmoteText)
	}
	return flags
}

// Close stops the settings watcher.
func (a *app) Close() error {
	return a.settings.Close()
}

// Read parses IRC lines from r into messages. Blank lines and commands
// other than PRIVMSG are skipped.
func (a *app) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		line, err := irc.Parse(raw)
		if errors.Is(err, chatlayout.ErrUnsupportedCommand) {
			continue
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		a.add(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (a *app) add(line chatlayout.ChatLine) {
	if line.Time.IsZero() {
		line.Time = a.now()
	}
	if line.ID == "" {
		line.ID = fmt.Sprintf("%d", len(a.messages)+1)
	}
	a.chatters.Observe(line.Channel, line.Sender)
	a.messages = append(a.messages, a.builder.Build(line))
}

// Print lays every message out and writes it to w. Cell layouts are
// painted; pixel layouts are described line by line.
func (a *app) Print(w io.Writer) error {
	painter := chatlipgloss.Painter{ImageLabel: imageLabel, Plain: a.cfg.plain}
	for i := range a.messages {
		msg := &a.messages[i]
		c, err := msg.Layout(a.cfg.width, a.cfg.scale, a.rc, a.layout...)
		if err != nil {
			return err
		}
		if a.cfg.debugDir != "" {
			path := filepath.Join(a.cfg.debugDir, msg.ID+".json")
			if err := layoutjson.Save(path, msg.ID, c); err != nil {
				return fmt.Errorf("debug dump: %w", err)
			}
		}
		if a.cells {
			_, err = fmt.Fprintln(w, painter.Paint(c.Lines()))
		} else {
			err = describe(w, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// describe writes the position and content of every line of c.
func describe(w io.Writer, c *chatlayout.Container) error {
	for _, l := range c.Lines() {
		parts := make([]string, 0, len(l.Elements))
		for _, e := range l.Elements {
			switch b := e.Backing.(type) {
			case chatlayout.TextBacking:
				parts = append(parts, b.Text)
			case chatlayout.ImageBacking:
				parts = append(parts, "["+imageLabel(b.Image)+"]")
			case chatlayout.TextIconBacking:
				parts = append(parts, "["+b.Line1+b.Line2+"]")
			}
		}
		if _, err := fmt.Fprintf(w, "y=%d h=%d w=%d\t%s\n", l.Y, l.Height, l.Width, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Complete writes the completions matching query for every channel seen
// in the input.
func (a *app) Complete(w io.Writer, query string) error {
	manager := fuzzy.Manager{
		Sources: []chatlayout.CompletionSource{a.assets},
		Users:   a.chatters,
	}
	seen := make(map[string]bool)
	for _, msg := range a.messages {
		if seen[msg.Channel] {
			continue
		}
		seen[msg.Channel] = true
		model := manager.Model(msg.Channel)
		model.Refresh()
		for _, s := range model.Filter(query) {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", msg.Channel, strings.TrimSuffix(s, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// Preview opens the interactive preview. Settings changes on disk are
// applied while it runs.
func (a *app) Preview(ctx context.Context) error {
	msgs := make(chan tea.Msg, 1)
	a.settings.OnChange = func() {
		select {
		case msgs <- bt.RelayoutMsg{}:
		default:
		}
	}
	if _, err := os.Stat(filepath.Dir(a.cfg.settings)); err == nil {
		if err := a.settings.Watch(); err != nil {
			return err
		}
	}

	painter := chatlipgloss.Painter{ImageLabel: imageLabel, Plain: a.cfg.plain}
	model := bt.New(a.messages, a.rc, painter, a.theme)
	if err := bt.Run(ctx, model, msgs, tea.WithInputTTY()); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
