// Package bubbletea provides a Bubble Tea preview of laid-out chat messages.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatlayout"
)

// Run creates and runs the preview program. It blocks until the program
// exits. Messages received on msgs are forwarded to the program, and the
// context is used for graceful shutdown.
func Run(ctx context.Context, m Model, msgs <-chan tea.Msg, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	go forward(ctx, p, msgs)
	_, err := p.Run()
	return err
}

// program is the part of *tea.Program that forward drives.
type program interface {
	Send(msg tea.Msg)
	Quit()
}

// forward sends msgs to p until ctx is done, then quits p.
func forward(ctx context.Context, p program, msgs <-chan tea.Msg) {
	for {
		select {
		case <-ctx.Done():
			p.Quit()
			return
		case msg, ok := <-msgs:
			if !ok {
				msgs = nil
				continue
			}
			p.Send(msg)
		}
	}
}

// AppendMsg adds a message to the bottom of the preview.
type AppendMsg struct {
	Message chatlayout.Message
}

// RelayoutMsg asks the preview to lay every message out again, for example
// after the settings changed.
type RelayoutMsg struct{}
