package debugs

import (
	"context"
	"path/filepath"

	"github.com/reusee/cestudio/languages"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/trees"
	"github.com/reusee/cestudio/workspaces"
)

// WorkspaceGlobals exposes the state of a workspace, and a few of its actions, to a Tap session.
// Values are a snapshot taken at call time; the functions act on the live workspace.
func WorkspaceGlobals(ctx context.Context, w *workspaces.Workspace) map[string]any {
	var files []string
	tree := ""
	if w.Tree() != nil {
		tree = trees.Render(w.Tree())
		for _, node := range w.Tree().Files() {
			rel, err := filepath.Rel(w.Root(), trees.ResolvePath(w.Root(), node))
			if err != nil {
				continue
			}
			files = append(files, filepath.ToSlash(rel))
		}
	}

	return map[string]any{
		"root":      w.Root(),
		"language":  w.Language(),
		"buffer":    w.Buffer(),
		"path":      w.BufferPath(),
		"tree":      tree,
		"files":     files,
		"languages": languages.Names(),
		"stale":     w.Stale(),

		"set_buffer":   w.SetBuffer,
		"set_language": w.SetLanguage,
		"run": func() string {
			outcome := w.Run(ctx)
			if outcome.Kind == runners.KindPreview {
				return outcome.PreviewPath
			}
			return outcome.Text
		},
		"sh": func(command string) string {
			result, err := w.RunCommand(ctx, command)
			if err != nil {
				return workspaces.Message(err)
			}
			return result.Output()
		},
	}
}
