// Package tui is the terminal front end: login, the main menu and the editor screen.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/studios"
)

type screen int

const (
	screenLogin screen = iota
	screenSignUp
	screenMenu
	screenEditor
)

func (s screen) String() string {
	switch s {
	case screenLogin:
		return "login"
	case screenSignUp:
		return "sign up"
	case screenMenu:
		return "menu"
	case screenEditor:
		return "editor"
	}
	return "unknown"
}

const (
	explorerWidth  = 32
	terminalHeight = 6
)

// Model is the bubbletea model. The workspace is only touched from Update; long actions run in commands
// that capture what they need and report back with a message.
type Model struct {
	ctx    context.Context
	studio *studios.Studio

	width  int
	height int
	screen screen
	notice studios.Notice

	username      textinput.Model
	password      textinput.Model
	passwordFocus bool

	menu        int
	marketplace bool

	focus      pane
	rows       []row
	selected   int
	editor     textarea.Model
	terminal   textinput.Model
	transcript viewport.Model

	prompt      prompt
	input       textinput.Model
	pendingName string

	output     viewport.Model
	showOutput bool
	busy       bool
}

type noticeMsg studios.Notice

type runDoneMsg struct {
	outcome runners.Outcome
}

type shellDoneMsg struct {
	result shells.Result
	err    error
}

func New(ctx context.Context, studio *studios.Studio) Model {
	username := textinput.New()
	username.Prompt = "Username: "
	username.Placeholder = "username"

	password := textinput.New()
	password.Prompt = "Password: "
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	editor := textarea.New()
	editor.Placeholder = "Write code here..."
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.MaxHeight = 0

	terminal := textinput.New()
	terminal.Prompt = "> "
	terminal.Placeholder = "Enter command..."

	m := Model{
		ctx:        ctx,
		studio:     studio,
		username:   username,
		password:   password,
		editor:     editor,
		terminal:   terminal,
		input:      textinput.New(),
		transcript: viewport.New(80, terminalHeight),
		output:     viewport.New(80, 20),
		focus:      paneEditor,
	}
	if studio.Start(ctx) {
		m.screen = screenMenu
	} else {
		m.screen = screenLogin
		m.resetLogin()
	}
	m.editor.SetValue(studio.Workspace.Buffer())
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case noticeMsg:
		m.notice = studios.Notice(msg)
		return m, nil

	case runDoneMsg:
		m.busy = false
		return m.ranBuffer(msg.outcome), nil

	case shellDoneMsg:
		m.busy = false
		return m.ranCommand(msg.result, msg.err), nil

	}

	switch m.screen {
	case screenLogin, screenSignUp:
		return m.updateLogin(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenEditor:
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin, screenSignUp:
		body = m.loginView()
	case screenMenu:
		body = m.menuView()
	case screenEditor:
		body = m.editorView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView())
}

func (m Model) statusView() string {
	if m.busy {
		return dimStyle.Render("Running...")
	}
	if m.notice.Text == "" {
		return ""
	}
	if m.notice.Success {
		return successStyle.Render(m.notice.Text)
	}
	return warningStyle.Render(m.notice.Text)
}

func (m *Model) layout() {
	width := m.width
	if width == 0 {
		width = 100
	}
	height := m.height
	if height == 0 {
		height = 30
	}

	right := max(width-explorerWidth-6, 20)
	m.editor.SetWidth(right)
	m.editor.SetHeight(max(height-terminalHeight-10, 3))
	m.terminal.Width = max(right-4, 10)
	m.transcript.Width = right
	m.transcript.Height = terminalHeight
	m.output.Width = max(width-4, 20)
	m.output.Height = max(height-6, 3)
}
