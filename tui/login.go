package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/cestudio/studios"
)

func (m *Model) resetLogin() {
	m.username.Reset()
	m.password.Reset()
	m.passwordFocus = false
	m.password.Blur()
	m.username.Focus()
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {

		case "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.passwordFocus = !m.passwordFocus
			if m.passwordFocus {
				m.username.Blur()
				return m, m.password.Focus()
			}
			m.password.Blur()
			return m, m.username.Focus()

		case "ctrl+t":
			if m.screen == screenLogin {
				m.screen = screenSignUp
			} else {
				m.screen = screenLogin
			}
			m.notice = studios.Notice{}
			m.resetLogin()
			return m, nil

		case "enter":
			return m.submitLogin(), nil

		}
	}

	var cmd tea.Cmd
	if m.passwordFocus {
		m.password, cmd = m.password.Update(msg)
	} else {
		m.username, cmd = m.username.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() Model {
	username := m.username.Value()
	password := m.password.Value()

	if m.screen == screenSignUp {
		m.notice = m.studio.Act(m.ctx, "sign up", func(ctx context.Context) (string, error) {
			return studios.TextAccountCreated, m.studio.SignUp(ctx, username, password)
		})
		if m.notice.Success {
			m.screen = screenLogin
			m.resetLogin()
		}
		return m
	}

	m.notice = m.studio.Act(m.ctx, "log in", func(ctx context.Context) (string, error) {
		return studios.TextLoggedIn, m.studio.LogIn(ctx, username, password)
	})
	if m.notice.Success {
		m.screen = screenMenu
		m.resetLogin()
	}
	return m
}

func (m Model) loginView() string {
	title := "Login to CE Studio"
	other := "ctrl+t: create an account"
	if m.screen == screenSignUp {
		title = "Create an account"
		other = "ctrl+t: back to login"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		m.username.View(),
		m.password.View(),
		"",
		dimStyle.Render("enter: submit  tab: next field  "+other+"  esc: quit"),
	)
}
