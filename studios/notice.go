package studios

import (
	"context"
	"errors"

	"github.com/reusee/cestudio/accounts"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/workspaces"
)

// Notice is a one-line status message. Failures are warnings.
type Notice struct {
	Text    string
	Success bool
}

const (
	TextAccountCreated = "Account created successfully!"
	TextLoggedIn       = "Login successful!"
	TextLoggedOut      = "Logged out."
	TextFileSaved      = "File saved!"
	TextFileLoaded     = "File loaded!"
	TextWelcome        = "Welcome to CE Studio!"
	TextMarketplace    = "Marketplace Coming Soon!"
)

func TextLoaded(name string) string {
	return "Loaded " + name
}

func TextAdded(name string) string {
	return "Added " + name
}

func TextFolder(root string) string {
	if root == "" {
		return "Terminal: No folder loaded"
	}
	return "Terminal: " + root
}

// Message returns the text shown for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotLoggedIn):
		return "Please log in first."
	}
	if text := workspaces.Message(err); text != err.Error() {
		return text
	}
	return accounts.Message(err)
}

// Act runs one user action in its own log span and turns its result into a notice.
func (s *Studio) Act(ctx context.Context, action string, fn func(ctx context.Context) (string, error)) Notice {
	ctx, _ = s.newSpan(ctx, action)
	text, err := fn(ctx)
	if err != nil {
		s.Logger.WarnContext(ctx, "action failed",
			"action", action,
			"error", logs.WrapSpan(ctx, err),
		)
		return Notice{
			Text: Message(err),
		}
	}
	return Notice{
		Text:    text,
		Success: true,
	}
}

func (s *Studio) newSpan(ctx context.Context, action string) (context.Context, logs.Span) {
	if s.NewSpan == nil {
		return ctx, ""
	}
	return s.NewSpan(ctx, action)
}
