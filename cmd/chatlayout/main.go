// Command chatlayout lays out Twitch chat messages read as IRC lines.
//
// Usage:
//
//	chatlayout [flags] < chat.log
//
// Flags:
//
//	-width int          Layout width in pixels, or cells without -font (default 80)
//	-scale float        Render scale (default 1)
//	-font string        Path to a TrueType/OpenType font; measures in pixels
//	-emotes string      Directory of emote images named after the emote
//	-emoji string       Directory of emoji images named after the shortcode
//	-settings string    Path to the YAML settings file (default: .chatlayout/settings.yaml)
//	-mod                Show moderation buttons
//	-text-emotes        Render emotes as text
//	-light              Use the light theme instead of detecting the background
//	-plain              Disable ANSI colors
//	-debug string       Directory to write a JSON dump of every layout to
//	-complete string    Print completions matching the query and exit
//	-tui                Open an interactive preview
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

const defaultSettingsPath = ".chatlayout/settings.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chatlayout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		return err
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Read(os.Stdin); err != nil {
		return err
	}

	switch {
	case cfg.complete != "":
		return app.Complete(os.Stdout, cfg.complete)
	case cfg.tui:
		return app.Preview(ctx)
	default:
		return app.Print(os.Stdout)
	}
}

type config struct {
	width      int
	scale      float64
	fontPath   string
	emotesDir  string
	emojiDir   string
	settings   string
	mod        bool
	textEmotes bool
	light      bool
	plain      bool
	debugDir   string
	complete   string
	tui        bool
}

func parseConfig(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("chatlayout", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 80, "Layout width in pixels, or cells without -font")
	fs.Float64Var(&cfg.scale, "scale", 1, "Render scale")
	fs.StringVar(&cfg.fontPath, "font", "", "Path to a TrueType/OpenType font; measures in pixels")
	fs.StringVar(&cfg.emotesDir, "emotes", "", "Directory of emote images named after the emote")
	fs.StringVar(&cfg.emojiDir, "emoji", "", "Directory of emoji images named after the shortcode")
	fs.StringVar(&cfg.settings, "settings", defaultSettingsPath, "Path to the YAML settings file")
	fs.BoolVar(&cfg.mod, "mod", false, "Show moderation buttons")
	fs.BoolVar(&cfg.textEmotes, "text-emotes", false, "Render emotes as text")
	fs.BoolVar(&cfg.light, "light", false, "Use the light theme instead of detecting the background")
	fs.BoolVar(&cfg.plain, "plain", false, "Disable ANSI colors")
	fs.StringVar(&cfg.debugDir, "debug", "", "Directory to write a JSON dump of every layout to")
	fs.StringVar(&cfg.complete, "complete", "", "Print completions matching the query and exit")
	fs.BoolVar(&cfg.tui, "tui", false, "Open an interactive preview")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.width <= 0 {
		return config{}, fmt.Errorf("-width must be positive, got %d", cfg.width)
	}
	if !(cfg.scale > 0) {
		return config{}, fmt.Errorf("-scale must be positive, got %v", cfg.scale)
	}
	if cfg.tui && cfg.fontPath != "" {
		return config{}, fmt.Errorf("-tui measures in cells and cannot be combined with -font")
	}
	return cfg, nil
}
