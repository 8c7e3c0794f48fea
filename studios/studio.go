package studios

import (
	"context"
	"errors"
	"strings"

	"github.com/reusee/cestudio/accounts"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/workspaces"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Studio is one user session: the signed-in user and the workspace they work in.
type Studio struct {
	Accounts  *accounts.Store
	Workspace *workspaces.Workspace
	Runner    *runners.Runner
	Pane      *shells.Pane
	// User is empty until a login succeeds.
	User string

	Logger  logs.Logger
	NewSpan logs.NewSpan

	newWorkspace workspaces.NewWorkspace
}

// Start tries to resume the previous session.
func (s *Studio) Start(ctx context.Context) bool {
	username, ok := s.Accounts.TryAutoLogin()
	if !ok {
		return false
	}
	s.User = username
	s.Logger.InfoContext(ctx, "session resumed", "user", username)
	return true
}

// SignUp creates an account. It does not log in.
func (s *Studio) SignUp(ctx context.Context, username, password string) error {
	return s.Accounts.CreateAccount(username, password)
}

func (s *Studio) LogIn(ctx context.Context, username, password string) error {
	if err := s.Accounts.Login(username, password); err != nil {
		return err
	}
	s.User = strings.TrimSpace(username)
	s.Logger.InfoContext(ctx, "logged in", "user", s.User)
	return nil
}

// LogOut ends the session and starts over with an empty workspace.
func (s *Studio) LogOut(ctx context.Context) error {
	if err := s.Accounts.Logout(); err != nil {
		return err
	}
	s.Logger.InfoContext(ctx, "logged out", "user", s.User)
	s.User = ""
	if err := s.Workspace.Close(); err != nil {
		s.Logger.WarnContext(ctx, "close workspace", "error", err)
	}
	if s.newWorkspace != nil {
		s.Workspace = s.newWorkspace()
	}
	s.Pane.Clear()
	return nil
}

func (s *Studio) RequireUser() error {
	if s.User == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func (s *Studio) Close() error {
	return s.Workspace.Close()
}
