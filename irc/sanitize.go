package irc

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize strips ANSI escape sequences and control characters from chat
// text so that painting it cannot move the cursor or restyle the terminal.
// Tabs become spaces; everything else at or below 0x1F, and DEL, is dropped.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteByte(' ')
		case r <= 0x1f || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
