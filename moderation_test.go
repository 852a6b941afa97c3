package chatlayout_test

import (
	"testing"

	"github.com/fwojciec/chatlayout"
	"github.com/stretchr/testify/assert"
)

func TestNewModerationAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		action string
		want   chatlayout.ModerationAction
	}{
		{"/ban {user}", chatlayout.ModerationAction{Action: "/ban {user}", Icon: chatlayout.IconBan}},
		{"/unban {user}", chatlayout.ModerationAction{Action: "/unban {user}", Icon: chatlayout.IconUnban}},
		{"/timeout {user} 30", chatlayout.ModerationAction{Action: "/timeout {user} 30", Line1: "30", Line2: "s"}},
		{"/timeout {user} 600", chatlayout.ModerationAction{Action: "/timeout {user} 600", Line1: "10", Line2: "m"}},
		{"/timeout {user} 7200", chatlayout.ModerationAction{Action: "/timeout {user} 7200", Line1: "2", Line2: "h"}},
		{"/timeout {user} 172800", chatlayout.ModerationAction{Action: "/timeout {user} 172800", Line1: "2", Line2: "d"}},
		{"/timeout {user}", chatlayout.ModerationAction{Action: "/timeout {user}", Line1: "10", Line2: "m"}},
		{"/delete {msg-id}", chatlayout.ModerationAction{Action: "/delete {msg-id}", Line1: "de", Line2: "le"}},
		{"/w", chatlayout.ModerationAction{Action: "/w", Line1: "w"}},
		{"", chatlayout.ModerationAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			t.Parallel()
			got := chatlayout.NewModerationAction(tt.action)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Icon != "", got.HasIcon())
		})
	}
}
