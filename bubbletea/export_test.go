package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Program exports program for testing.
type Program = program

// Forward exports forward for testing.
func Forward(ctx context.Context, p Program, msgs <-chan tea.Msg) {
	forward(ctx, p, msgs)
}
