package chatlayout

import (
	"strconv"
	"strings"
)

// Icons for moderation actions that have one.
const (
	IconBan   ImageRef = "icon:ban"
	IconUnban ImageRef = "icon:unban"
)

// NewModerationAction derives the display of a moderator command: bans and
// unbans get an icon, timeouts show their duration, anything else shows
// the first letters of the command.
func NewModerationAction(action string) ModerationAction {
	a := ModerationAction{Action: action}
	fields := strings.Fields(action)
	if len(fields) == 0 {
		return a
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	switch cmd {
	case "ban":
		a.Icon = IconBan
	case "unban":
		a.Icon = IconUnban
	case "timeout":
		seconds := 600
		if len(fields) > 2 {
			if n, err := strconv.Atoi(fields[2]); err == nil && n > 0 {
				seconds = n
			}
		}
		a.Line1, a.Line2 = duration(seconds)
	default:
		r := []rune(cmd)
		a.Line1 = string(r[:min(2, len(r))])
		if len(r) > 2 {
			a.Line2 = string(r[2:min(4, len(r))])
		}
	}
	return a
}

func duration(seconds int) (string, string) {
	switch {
	case seconds < 60:
		return strconv.Itoa(seconds), "s"
	case seconds < 60*60:
		return strconv.Itoa(seconds / 60), "m"
	case seconds < 24*60*60:
		return strconv.Itoa(seconds / (60 * 60)), "h"
	default:
		return strconv.Itoa(seconds / (24 * 60 * 60)), "d"
	}
}
