package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/trees"
)

type pane int

const (
	paneExplorer pane = iota
	paneEditor
	paneTerminal
	numPanes
)

type row struct {
	node  *trees.Node
	depth int
}

func (m Model) enterEditor() (tea.Model, tea.Cmd) {
	m.screen = screenEditor
	m.refreshExplorer()
	m.editor.SetValue(m.studio.Workspace.Buffer())
	return m, m.setFocus(paneEditor)
}

func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = p
	m.editor.Blur()
	m.terminal.Blur()
	switch p {
	case paneEditor:
		return m.editor.Focus()
	case paneTerminal:
		return m.terminal.Focus()
	}
	return nil
}

// refreshExplorer rebuilds the explorer rows from the current tree.
func (m *Model) refreshExplorer() {
	m.rows = nil
	tree := m.studio.Workspace.Tree()
	if tree != nil {
		tree.Walk(func(node *trees.Node, depth int) bool {
			if node != tree {
				m.rows = append(m.rows, row{
					node:  node,
					depth: depth - 1,
				})
			}
			return true
		})
	}
	m.selected = min(m.selected, max(len(m.rows)-1, 0))
}

// syncBuffer copies the editor text into the workspace.
func (m *Model) syncBuffer() {
	m.studio.Workspace.SetBuffer(m.editor.Value())
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showOutput {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "enter", "q":
				m.showOutput = false
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	if m.prompt != promptNone {
		return m.updatePrompt(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		w := m.studio.Workspace
		switch key.String() {
		case "esc":
			m.syncBuffer()
			m.screen = screenMenu
			return m, nil
		case "tab":
			return m, m.setFocus((m.focus + 1) % numPanes)
		case "shift+tab":
			return m, m.setFocus((m.focus + numPanes - 1) % numPanes)
		case "ctrl+o":
			return m, m.openPrompt(promptFolder, w.Root())
		case "ctrl+n":
			return m, m.openPrompt(promptAddFile, "")
		case "ctrl+s":
			return m, m.openPrompt(promptSave, w.BufferPath())
		case "ctrl+l":
			return m, m.openPrompt(promptLoad, "")
		case "ctrl+g":
			return m, m.openPrompt(promptLanguage, w.Language())
		case "ctrl+r":
			return m.runBuffer()
		case "ctrl+p":
			return m.previewBuffer()
		case "f5":
			return m.reload(), nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case paneExplorer:
		return m.updateExplorer(msg)
	case paneEditor:
		m.editor, cmd = m.editor.Update(msg)
	case paneTerminal:
		return m.updateTerminal(msg)
	}
	return m, cmd
}

func (m Model) updateExplorer(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = max(len(m.rows)-1, 0)
	case "enter":
		return m.openSelected(), nil
	case "a":
		return m, m.openPrompt(promptAddFile, "")
	case "o":
		return m, m.openPrompt(promptFolder, m.studio.Workspace.Root())
	case "r":
		return m.reload(), nil
	}
	return m, nil
}

func (m Model) updateTerminal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			command := m.terminal.Value()
			m.terminal.Reset()
			return m.runCommand(command)
		case "ctrl+k":
			m.studio.Pane.Clear()
			m.transcript.SetContent("")
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.terminal, cmd = m.terminal.Update(msg)
	return m, cmd
}

func (m Model) editorView() string {
	if m.showOutput {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Output"),
			panelStyle.Render(m.output.View()),
			dimStyle.Render("esc: close"),
		)
	}

	w := m.studio.Workspace

	explorerStyle := panelStyle
	if m.focus == paneExplorer {
		explorerStyle = focusedPanelStyle
	}
	explorer := explorerStyle.
		Width(explorerWidth).
		Height(max(m.editor.Height()+terminalHeight+4, 5)).
		Render(m.explorerView())

	language := "Language: " + w.Language()
	if w.Stale() {
		language += dimStyle.Render("  (folder changed, F5 reloads)")
	}

	editorStyle := panelStyle
	if m.focus == paneEditor {
		editorStyle = focusedPanelStyle
	}
	terminalStyle := panelStyle
	if m.focus == paneTerminal {
		terminalStyle = focusedPanelStyle
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		language,
		editorStyle.Render(m.editor.View()),
		terminalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			studios.TextFolder(w.Root()),
			m.transcript.View(),
			m.terminal.View(),
		)),
	)

	lines := []string{
		titleStyle.Render("CE Studio") + " " + dimStyle.Render(m.studio.User),
		lipgloss.JoinHorizontal(lipgloss.Top, explorer, right),
	}
	if m.prompt != promptNone {
		lines = append(lines, m.promptView())
	}
	lines = append(lines, dimStyle.Render(
		"tab: focus  ctrl+o: folder  ctrl+n: add file  ctrl+r: run  ctrl+p: markdown  ctrl+s: save  ctrl+l: load  ctrl+g: language  esc: menu",
	))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) explorerView() string {
	if m.studio.Workspace.Tree() == nil {
		return dimStyle.Render("No folder loaded\n\nctrl+o or o: load folder")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s %s", explorerWidth-10, "Name", "Type")))
	b.WriteString("\n")
	for i, r := range m.rows {
		name := ansi.Truncate(strings.Repeat("  ", r.depth)+r.node.Name, explorerWidth-10, "~")
		name += strings.Repeat(" ", explorerWidth-10-ansi.StringWidth(name))
		line := name + " " + r.node.Detail
		if i == m.selected && m.focus == paneExplorer {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
