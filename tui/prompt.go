package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/reusee/cestudio/languages"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/workspaces"
)

type prompt int

const (
	promptNone prompt = iota
	promptFolder
	promptAddFile
	promptOverwrite
	promptSave
	promptLoad
	promptLanguage
)

func (p prompt) title() string {
	switch p {
	case promptFolder:
		return "Load folder"
	case promptAddFile:
		return "File name (with extension)"
	case promptOverwrite:
		return "File exists. Overwrite it with an empty file? (y/n)"
	case promptSave:
		return "Save as"
	case promptLoad:
		return "Load file"
	case promptLanguage:
		return "Language"
	}
	return ""
}

func (m *Model) openPrompt(p prompt, value string) tea.Cmd {
	m.prompt = p
	m.input = textinput.New()
	m.input.Prompt = p.title() + ": "
	m.input.SetValue(value)
	if p == promptLanguage {
		m.input.ShowSuggestions = true
		m.input.SetSuggestions(languages.Names())
	}
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
}

func (m Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.prompt == promptOverwrite {
			switch key.String() {
			case "y", "Y":
				m.closePrompt()
				return m.addFile(m.pendingName, true), nil
			case "n", "N", "esc", "enter":
				m.closePrompt()
				m.pendingName = ""
			}
			return m, nil
		}

		switch key.String() {
		case "esc":
			m.closePrompt()
			return m, nil
		case "enter":
			p := m.prompt
			value := m.input.Value()
			m.closePrompt()
			return m.submitPrompt(p, value), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitPrompt(p prompt, value string) Model {
	if strings.TrimSpace(value) == "" {
		return m
	}
	w := m.studio.Workspace

	switch p {

	case promptFolder:
		m.notice = m.studio.Act(m.ctx, "load folder", func(ctx context.Context) (string, error) {
			if err := w.SetRoot(expandHome(strings.TrimSpace(value))); err != nil {
				return "", err
			}
			return "Opened " + w.Root(), nil
		})
		m.selected = 0
		m.refreshExplorer()

	case promptAddFile:
		return m.addFile(value, false)

	case promptSave:
		m.syncBuffer()
		m.notice = m.studio.Act(m.ctx, "save", func(ctx context.Context) (string, error) {
			_, err := w.SaveBuffer(expandHome(value))
			return studios.TextFileSaved, err
		})
		m.refreshExplorer()

	case promptLoad:
		m.notice = m.studio.Act(m.ctx, "load", func(ctx context.Context) (string, error) {
			return studios.TextFileLoaded, w.LoadBuffer(expandHome(value))
		})
		if m.notice.Success {
			m.editor.SetValue(w.Buffer())
		}

	case promptLanguage:
		w.SetLanguage(value)

	}
	return m
}

// addFile creates a file in the folder, asking before it truncates an existing one.
func (m Model) addFile(name string, overwrite bool) Model {
	w := m.studio.Workspace
	exists := false
	m.notice = m.studio.Act(m.ctx, "add file", func(ctx context.Context) (string, error) {
		if overwrite {
			return studios.TextAdded(name), w.AddFile(name)
		}
		err := w.AddFileExclusive(name)
		exists = errors.Is(err, workspaces.ErrFileExists)
		return studios.TextAdded(name), err
	})
	m.pendingName = ""
	if exists {
		m.notice = studios.Notice{}
		m.pendingName = name
		m.prompt = promptOverwrite
	}
	m.refreshExplorer()
	return m
}

func (m Model) promptView() string {
	if m.prompt == promptOverwrite {
		return warningStyle.Render(m.prompt.title())
	}
	return m.input.View()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
