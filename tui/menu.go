package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/cestudio/studios"
)

var menuItems = []string{
	"Editor",
	"Marketplace",
	"Log Out",
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.marketplace {
		m.marketplace = false
		return m, nil
	}

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h", "up", "k", "shift+tab":
		m.menu = (m.menu + len(menuItems) - 1) % len(menuItems)
	case "right", "l", "down", "j", "tab":
		m.menu = (m.menu + 1) % len(menuItems)
	case "enter", " ":
		switch menuItems[m.menu] {
		case "Editor":
			return m.enterEditor()
		case "Marketplace":
			m.marketplace = true
		case "Log Out":
			m.notice = m.studio.Act(m.ctx, "log out", func(ctx context.Context) (string, error) {
				return studios.TextLoggedOut, m.studio.LogOut(ctx)
			})
			if m.notice.Success {
				m.screen = screenLogin
				m.menu = 0
				m.rows = nil
				m.selected = 0
				m.editor.SetValue("")
				m.transcript.SetContent("")
				m.resetLogin()
			}
		}
	}
	return m, nil
}

func (m Model) menuView() string {
	var buttons []string
	for i, item := range menuItems {
		style := buttonStyle
		if i == m.menu {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(item))
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		"",
		titleStyle.Render(studios.TextWelcome),
		dimStyle.Render("Signed in as " + m.studio.User),
	}
	if m.marketplace {
		lines = append(lines, "", panelStyle.Padding(1, 4).Render(
			strings.Join([]string{
				"CE Studio Marketplace",
				"",
				studios.TextMarketplace,
				"",
				dimStyle.Render("press any key to close"),
			}, "\n"),
		))
	}
	lines = append(lines, "", dimStyle.Render("arrows: choose  enter: open  q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
