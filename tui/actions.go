package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/workspaces"
)

func (m Model) openSelected() Model {
	if m.selected >= len(m.rows) {
		return m
	}
	node := m.rows[m.selected].node
	if node.IsFolder() {
		return m
	}
	w := m.studio.Workspace
	var loaded workspaces.LoadedFile
	m.notice = m.studio.Act(m.ctx, "open file", func(ctx context.Context) (string, error) {
		var err error
		loaded, err = w.OpenNode(node)
		return studios.TextLoaded(loaded.Name), err
	})
	if m.notice.Success {
		m.editor.SetValue(loaded.Text)
	}
	return m
}

func (m Model) reload() Model {
	w := m.studio.Workspace
	m.notice = m.studio.Act(m.ctx, "reload folder", func(ctx context.Context) (string, error) {
		return "Reloaded " + w.Root(), w.Reload()
	})
	m.refreshExplorer()
	return m
}

// runBuffer evaluates the editor text off the update loop.
func (m Model) runBuffer() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.syncBuffer()
	m.busy = true
	runner := m.studio.Runner
	ctx := m.ctx
	text := m.studio.Workspace.Buffer()
	language := m.studio.Workspace.Language()
	return m, func() tea.Msg {
		return runDoneMsg{
			outcome: runner.Run(ctx, text, language),
		}
	}
}

// previewBuffer renders the editor text as Markdown off the update loop.
func (m Model) previewBuffer() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.syncBuffer()
	m.busy = true
	runner := m.studio.Runner
	ctx := m.ctx
	text := m.studio.Workspace.Buffer()
	language := m.studio.Workspace.Language()
	return m, func() tea.Msg {
		return runDoneMsg{
			outcome: runner.PreviewMarkdown(ctx, text, language),
		}
	}
}

func (m Model) ranBuffer(outcome runners.Outcome) Model {
	if outcome.Kind == runners.KindPreview {
		m.notice = studios.Notice{
			Text:    "Preview opened: " + outcome.PreviewPath,
			Success: true,
		}
		return m
	}
	m.output.SetContent(outcome.Text)
	m.output.GotoTop()
	m.showOutput = true
	return m
}

// runCommand runs a terminal command in the active folder off the update loop.
func (m Model) runCommand(command string) (tea.Model, tea.Cmd) {
	w := m.studio.Workspace
	if !w.HasRoot() {
		m.notice = studios.Notice{
			Text: studios.Message(workspaces.ErrNoFolderLoaded),
		}
		return m, nil
	}
	if m.busy {
		return m, nil
	}
	m.busy = true
	pane := m.studio.Pane
	ctx := m.ctx
	root := w.Root()
	return m, func() tea.Msg {
		result, err := pane.Run(ctx, root, command)
		return shellDoneMsg{
			result: result,
			err:    err,
		}
	}
}

func (m Model) ranCommand(result shells.Result, err error) Model {
	if err != nil {
		m.notice = studios.Notice{
			Text: studios.Message(err),
		}
		return m
	}
	if result.Refused {
		m.notice = studios.Notice{
			Text: result.Output(),
		}
	}
	m.transcript.SetContent(m.studio.Pane.Transcript())
	m.transcript.GotoBottom()
	return m
}
