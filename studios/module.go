package studios

import (
	"github.com/reusee/cestudio/accounts"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/workspaces"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Accounts   accounts.Module
	Workspaces workspaces.Module
}

func (Module) Studio(
	store *accounts.Store,
	newWorkspace workspaces.NewWorkspace,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Studio {
	w := newWorkspace()
	return &Studio{
		Accounts:     store,
		Workspace:    w,
		Runner:       w.Runner,
		Pane:         w.Pane,
		Logger:       logger,
		NewSpan:      newSpan,
		newWorkspace: newWorkspace,
	}
}
