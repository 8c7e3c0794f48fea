package tui

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/reusee/cestudio/accounts"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/workspaces"
)

func newTestStudio(t *testing.T) *studios.Studio {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := runners.NewRunner(
		filepath.Join(t.TempDir(), runners.PreviewFileName),
		true,
		func(string) error { return nil },
		runners.EvalStarlark,
		logger,
	)
	pane := &shells.Pane{
		Trusted: true,
		Logger:  logger,
	}
	return &studios.Studio{
		Accounts:  accounts.NewStore(t.TempDir(), accounts.StorageBcrypt, logger),
		Workspace: workspaces.New(runner, pane, logger),
		Runner:    runner,
		Pane:      pane,
		Logger:    logger,
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func key(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func loggedIn(t *testing.T, studio *studios.Studio) Model {
	t.Helper()
	if err := studio.SignUp(context.Background(), "alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := studio.LogIn(context.Background(), "alice", "pw"); err != nil {
		t.Fatal(err)
	}
	m := New(context.Background(), studio)
	if m.screen != screenMenu {
		t.Fatalf("got %v", m.screen)
	}
	return m
}

func TestSignUpAndLogin(t *testing.T) {
	studio := newTestStudio(t)
	m := New(context.Background(), studio)
	if m.screen != screenLogin {
		t.Fatalf("got %v", m.screen)
	}

	m, _ = update(t, m, enter)
	if m.notice.Success || m.notice.Text != "User not found! Please sign up." {
		t.Fatalf("got %+v", m.notice)
	}

	m, _ = update(t, m,
		key(tea.KeyCtrlT),
		typed("alice"), tab, typed("pw"),
		enter,
	)
	if !m.notice.Success || m.notice.Text != "Account created successfully!" {
		t.Fatalf("got %+v", m.notice)
	}
	if m.screen != screenLogin || m.username.Value() != "" {
		t.Fatalf("got %v", m.screen)
	}

	m, _ = update(t, m, typed("alice"), tab, typed("bad"), enter)
	if m.notice.Text != "Incorrect password!" || m.screen != screenLogin {
		t.Fatalf("got %+v", m.notice)
	}

	m.resetLogin()
	m, _ = update(t, m, typed("alice"), tab, typed("pw"), enter)
	if m.notice.Text != "Login successful!" || m.screen != screenMenu {
		t.Fatalf("got %+v", m.notice)
	}
	if studio.User != "alice" {
		t.Fatalf("got %v", studio.User)
	}
	if !strings.Contains(m.View(), "Welcome to CE Studio!") {
		t.Fatal("no welcome")
	}
}

func TestMenu(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)

	m, _ = update(t, m, key(tea.KeyRight), enter)
	if !m.marketplace || !strings.Contains(m.View(), "Marketplace Coming Soon!") {
		t.Fatal("marketplace not shown")
	}
	m, _ = update(t, m, typed("x"))
	if m.marketplace {
		t.Fatal("should close")
	}

	m, _ = update(t, m, key(tea.KeyRight), enter)
	if m.screen != screenLogin || studio.User != "" {
		t.Fatalf("got %v %q", m.screen, studio.User)
	}
	if studio.Start(context.Background()) {
		t.Fatal("session should be gone")
	}
}

func TestTerminalWithoutFolder(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter)
	if m.screen != screenEditor {
		t.Fatalf("got %v", m.screen)
	}
	if !strings.Contains(m.View(), "Terminal: No folder loaded") {
		t.Fatal("no folder label")
	}

	m, _ = update(t, m, tab)
	if m.focus != paneTerminal {
		t.Fatalf("got %v", m.focus)
	}
	m, cmd := update(t, m, typed("touch x"), enter)
	if cmd != nil || m.busy {
		t.Fatal("nothing should run")
	}
	if m.notice.Success || m.notice.Text != "Load a folder first!" {
		t.Fatalf("got %+v", m.notice)
	}
	if studio.Pane.Transcript() != "" {
		t.Fatalf("got %q", studio.Pane.Transcript())
	}
}

func TestExplorer(t *testing.T) {
	studio := newTestStudio(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.js"), []byte("alert(1)"), 0644); err != nil {
		t.Fatal(err)
	}
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter, key(tea.KeyCtrlO))
	if m.prompt != promptFolder {
		t.Fatalf("got %v", m.prompt)
	}
	m, _ = update(t, m, typed(dir), enter)
	if !m.notice.Success || studio.Workspace.Root() != dir {
		t.Fatalf("got %+v", m.notice)
	}
	if len(m.rows) != 1 || m.rows[0].node.Name != "main.js" {
		t.Fatalf("got %+v", m.rows)
	}
	if !strings.Contains(m.View(), "Terminal: "+dir) {
		t.Fatal("folder label")
	}

	// focus the explorer and open the file
	m, _ = update(t, m, key(tea.KeyShiftTab), enter)
	if m.notice.Text != "Loaded main.js" {
		t.Fatalf("got %+v", m.notice)
	}
	if m.editor.Value() != "alert(1)" || studio.Workspace.Language() != "JavaScript" {
		t.Fatalf("got %q %q", m.editor.Value(), studio.Workspace.Language())
	}

	// adding an existing file asks first
	m, _ = update(t, m, typed("a"), typed("main.js"), enter)
	if m.prompt != promptOverwrite {
		t.Fatalf("got %v", m.prompt)
	}
	m, _ = update(t, m, typed("n"))
	content, _ := os.ReadFile(filepath.Join(dir, "main.js"))
	if string(content) != "alert(1)" {
		t.Fatalf("got %q", content)
	}

	m, _ = update(t, m, typed("a"), typed("notes.txt"), enter)
	if m.notice.Text != "Added notes.txt" || len(m.rows) != 2 {
		t.Fatalf("got %+v %d", m.notice, len(m.rows))
	}
}

func TestExplorerLongName(t *testing.T) {
	studio := newTestStudio(t)
	dir := t.TempDir()
	name := strings.Repeat("文档", 20) + ".txt"
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := studio.Workspace.SetRoot(dir); err != nil {
		t.Fatal(err)
	}
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter)
	m.refreshExplorer()
	view := m.explorerView()
	if !utf8.ValidString(view) {
		t.Fatalf("got %q", view)
	}
	if !strings.Contains(view, "~") || !strings.Contains(view, ".txt") {
		t.Fatalf("got %q", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if ansi.StringWidth(line) > explorerWidth {
			t.Fatalf("got %q", line)
		}
	}
}

func TestRunBuffer(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter)
	m.editor.SetValue("print(40 + 2)")

	m, cmd := update(t, m, key(tea.KeyCtrlR))
	if cmd == nil || !m.busy {
		t.Fatal("should run")
	}
	m, _ = update(t, m, cmd())
	if m.busy || !m.showOutput {
		t.Fatal("should show output")
	}
	if !strings.Contains(m.View(), "42") {
		t.Fatal("no output")
	}
	m, _ = update(t, m, esc)
	if m.showOutput {
		t.Fatal("should close")
	}
}

func TestPreviewBuffer(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter)
	m.editor.SetValue("# Notes")

	m, cmd := update(t, m, key(tea.KeyCtrlP))
	if cmd == nil || !m.busy {
		t.Fatal("should preview")
	}
	m, _ = update(t, m, cmd())
	if m.busy || m.showOutput {
		t.Fatal("should not show output")
	}
	if !m.notice.Success || !strings.HasPrefix(m.notice.Text, "Preview opened: ") {
		t.Fatalf("got %+v", m.notice)
	}
	content, err := os.ReadFile(studio.Runner.PreviewPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "<h1") {
		t.Fatalf("got %s", content)
	}
}

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a posix shell")
	}
	studio := newTestStudio(t)
	if err := studio.Workspace.SetRoot(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter, tab)
	m, cmd := update(t, m, typed("echo hello"), enter)
	if cmd == nil {
		t.Fatal("should run")
	}
	m, _ = update(t, m, cmd())
	if studio.Pane.Transcript() != "> echo hello\nhello\n" {
		t.Fatalf("got %q", studio.Pane.Transcript())
	}
	if m.busy || m.terminal.Value() != "" {
		t.Fatal("should be idle")
	}
}

func TestLanguagePrompt(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter, key(tea.KeyCtrlG))
	if m.input.Value() != "Python" {
		t.Fatalf("got %q", m.input.Value())
	}
	m.input.SetValue("Haskell")
	m, _ = update(t, m, enter)
	if studio.Workspace.Language() != "Haskell" {
		t.Fatalf("got %v", studio.Workspace.Language())
	}
}

func TestSaveAndLoad(t *testing.T) {
	studio := newTestStudio(t)
	m := loggedIn(t, studio)
	m, _ = update(t, m, enter)
	m.editor.SetValue("print(1)")
	path := filepath.Join(t.TempDir(), "script")

	m, _ = update(t, m, key(tea.KeyCtrlS))
	m.input.SetValue(path)
	m, _ = update(t, m, enter)
	if m.notice.Text != "File saved!" {
		t.Fatalf("got %+v", m.notice)
	}
	content, err := os.ReadFile(path + ".py")
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "print(1)" {
		t.Fatalf("got %q", content)
	}

	m.editor.SetValue("")
	m, _ = update(t, m, key(tea.KeyCtrlL))
	m.input.SetValue(path + ".py")
	m, _ = update(t, m, enter)
	if m.notice.Text != "File loaded!" || m.editor.Value() != "print(1)" {
		t.Fatalf("got %+v %q", m.notice, m.editor.Value())
	}
}
