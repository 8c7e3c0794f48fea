package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Studios studios.Module
}

// Run shows the terminal interface until the user quits or ctx is done.
type Run func(ctx context.Context) error

func (Module) Run(
	studio *studios.Studio,
	logger logs.Logger,
) Run {
	return func(ctx context.Context) error {
		logger.InfoContext(ctx, "tui start", "user", studio.User)
		program := tea.NewProgram(
			New(ctx, studio),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		_, err := program.Run()
		logger.InfoContext(ctx, "tui end", "error", err)
		return err
	}
}
