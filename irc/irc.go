// Package irc parses Twitch IRC lines into chat lines.
package irc

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fwojciec/chatlayout"
)

var (
	ircLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Tags", Pattern: `@\S+[ \t]+`},
		{Name: "Trailing", Pattern: `[ \t]+:[^\r\n]*`},
		{Name: "Prefix", Pattern: `:\S+`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Word", Pattern: `[^\s:]\S*`},
	})

	lineParser = participle.MustBuild[Line](
		participle.Lexer(ircLexer),
		participle.Elide("Whitespace"),
	)
)

// Line is one raw IRC message.
type Line struct {
	Tags     string   `parser:"@Tags?"`
	Prefix   string   `parser:"@Prefix?"`
	Command  string   `parser:"@Word"`
	Params   []string `parser:"@Word*"`
	Trailing string   `parser:"@Trailing?"`
}

// ParseLine splits raw into its IRC parts. Tags, prefix and trailing are
// returned without their sigils.
func ParseLine(raw string) (*Line, error) {
	raw = strings.TrimRight(raw, "\r\n")
	l, err := lineParser.ParseString("", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chatlayout.ErrInvalidLine, err)
	}
	l.Tags = strings.TrimPrefix(strings.TrimSpace(l.Tags), "@")
	l.Prefix = strings.TrimPrefix(l.Prefix, ":")
	l.Trailing = strings.TrimPrefix(strings.TrimLeft(l.Trailing, " \t"), ":")
	return l, nil
}

// TagMap decodes the line's tags, unescaping their values.
func (l *Line) TagMap() map[string]string {
	tags := make(map[string]string)
	if l.Tags == "" {
		return tags
	}
	for _, pair := range strings.Split(l.Tags, ";") {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		tags[key] = unescape(value)
	}
	return tags
}

// Nick returns the nickname part of the prefix.
func (l *Line) Nick() string {
	nick, _, _ := strings.Cut(l.Prefix, "!")
	return nick
}

var tagEscapes = strings.NewReplacer(`\:`, ";", `\s`, " ", `\\`, `\`, `\r`, "\r", `\n`, "\n")

func unescape(v string) string { return tagEscapes.Replace(v) }

const (
	actionPrefix = "\x01ACTION "
	actionSuffix = "\x01"
)

// Parse turns a PRIVMSG line into a chat line. Other commands return
// chatlayout.ErrUnsupportedCommand. When the line carries no timestamp tag
// the returned Time is zero.
func Parse(raw string) (chatlayout.ChatLine, error) {
	l, err := ParseLine(raw)
	if err != nil {
		return chatlayout.ChatLine{}, err
	}
	if l.Command != "PRIVMSG" {
		return chatlayout.ChatLine{}, fmt.Errorf("%s: %w", l.Command, chatlayout.ErrUnsupportedCommand)
	}
	if len(l.Params) == 0 {
		return chatlayout.ChatLine{}, fmt.Errorf("%w: PRIVMSG without channel", chatlayout.ErrInvalidLine)
	}

	tags := l.TagMap()
	line := chatlayout.ChatLine{
		ID:          tags["id"],
		Channel:     l.Params[0],
		Sender:      l.Nick(),
		DisplayName: Sanitize(tags["display-name"]),
		Text:        l.Trailing,
	}
	if strings.HasPrefix(line.Text, actionPrefix) {
		line.Action = true
		line.Text = strings.TrimSuffix(strings.TrimPrefix(line.Text, actionPrefix), actionSuffix)
	}
	line.Text = Sanitize(line.Text)
	if c, ok := parseColor(tags["color"]); ok {
		line.Color = c
		line.HasColor = true
	}
	if ms, err := strconv.ParseInt(tags["tmi-sent-ts"], 10, 64); err == nil {
		line.Time = time.UnixMilli(ms)
	}
	if badges := tags["badges"]; badges != "" {
		for _, b := range strings.Split(badges, ",") {
			if b != "" {
				line.Badges = append(line.Badges, BadgeRef(b))
			}
		}
	}
	return line, nil
}

// BadgeRef is the image ref of a badge given as "name/version".
func BadgeRef(badge string) chatlayout.ImageRef {
	return chatlayout.ImageRef("badge:" + badge)
}

func parseColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
