package workspaces

import (
	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/trees"
	"github.com/reusee/cestudio/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Runners runners.Module
	Shells  shells.Module
}

type TreeOptions trees.Options

type WatchTree bool

var (
	maxTreeDepthFlag = cmds.Var[int]("-max-tree-depth")
	watchTreeFlag    = cmds.Switch("-watch-tree")
)

func (Module) TreeOptions(
	loader configs.Loader,
) TreeOptions {
	return TreeOptions{
		MaxDepth: vars.FirstNonZero(
			*maxTreeDepthFlag,
			configs.First[int](loader, "max_tree_depth"),
			trees.DefaultMaxDepth,
		),
	}
}

func (Module) WatchTree(
	loader configs.Loader,
) WatchTree {
	return WatchTree(*watchTreeFlag || configs.Bool(loader, "watch_tree", false))
}

// NewWorkspace builds a workspace with no folder loaded.
type NewWorkspace func() *Workspace

func (Module) NewWorkspace(
	runner *runners.Runner,
	pane *shells.Pane,
	treeOptions TreeOptions,
	watch WatchTree,
	logger logs.Logger,
) NewWorkspace {
	return func() *Workspace {
		w := New(runner, pane, logger)
		w.TreeOptions = trees.Options(treeOptions)
		w.Watch = bool(watch)
		return w
	}
}
