package studios

import (
	"context"
	"errors"
	"testing"

	"github.com/reusee/cestudio/accounts"
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/modes"
	"github.com/reusee/cestudio/workspaces"
	"github.com/reusee/dscope"
)

func withStudio(t *testing.T, fn func(*Studio)) {
	dataDir := t.TempDir()
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, configs.Schema)),
		dscope.Provide(configs.DataDir(dataDir)),
	).Call(func(
		studio *Studio,
	) {
		defer studio.Close()
		fn(studio)
	})
}

func TestSession(t *testing.T) {
	withStudio(t, func(studio *Studio) {
		ctx := context.Background()
		if studio.Start(ctx) {
			t.Fatal("no session yet")
		}
		if err := studio.RequireUser(); !errors.Is(err, ErrNotLoggedIn) {
			t.Fatalf("got %v", err)
		}

		if err := studio.SignUp(ctx, " alice ", "pw"); err != nil {
			t.Fatal(err)
		}
		if studio.User != "" {
			t.Fatal("sign up should not log in")
		}
		if err := studio.LogIn(ctx, "alice", "nope"); !errors.Is(err, accounts.ErrWrongPassword) {
			t.Fatalf("got %v", err)
		}
		if err := studio.LogIn(ctx, " alice", "pw"); err != nil {
			t.Fatal(err)
		}
		if studio.User != "alice" || studio.RequireUser() != nil {
			t.Fatalf("got %q", studio.User)
		}

		// a second studio over the same data resumes the session
		resumed := &Studio{
			Accounts: studio.Accounts,
			Logger:   studio.Logger,
		}
		if !resumed.Start(ctx) || resumed.User != "alice" {
			t.Fatalf("got %q", resumed.User)
		}

		if err := studio.Workspace.SetRoot(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		old := studio.Workspace
		if err := studio.LogOut(ctx); err != nil {
			t.Fatal(err)
		}
		if studio.User != "" || studio.Workspace == old || studio.Workspace.HasRoot() {
			t.Fatal("logout should reset the session")
		}
		if studio.Start(ctx) {
			t.Fatal("session should be gone")
		}
	})
}

func TestAct(t *testing.T) {
	withStudio(t, func(studio *Studio) {
		ctx := context.Background()

		notice := studio.Act(ctx, "add file", func(ctx context.Context) (string, error) {
			return TextAdded("a.txt"), studio.Workspace.AddFile("a.txt")
		})
		if notice.Success || notice.Text != "Load a folder first!" {
			t.Fatalf("got %+v", notice)
		}

		notice = studio.Act(ctx, "sign up", func(ctx context.Context) (string, error) {
			return TextAccountCreated, studio.SignUp(ctx, "", "")
		})
		if notice.Success || notice.Text != "Please enter both username and password." {
			t.Fatalf("got %+v", notice)
		}

		notice = studio.Act(ctx, "sign up", func(ctx context.Context) (string, error) {
			return TextAccountCreated, studio.SignUp(ctx, "bob", "pw")
		})
		if !notice.Success || notice.Text != "Account created successfully!" {
			t.Fatalf("got %+v", notice)
		}
	})
}

func TestMessage(t *testing.T) {
	for err, want := range map[error]string{
		ErrNotLoggedIn:               "Please log in first.",
		workspaces.ErrNoFolderLoaded: "Load a folder first!",
		accounts.ErrUserNotFound:     "User not found! Please sign up.",
		errors.New("foo"):            "foo",
	} {
		if got := Message(err); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if Message(nil) != "" {
		t.Fatal("nil should be silent")
	}
}

func TestTextFolder(t *testing.T) {
	if got := TextFolder(""); got != "Terminal: No folder loaded" {
		t.Fatalf("got %q", got)
	}
	if got := TextFolder("/tmp/x"); got != "Terminal: /tmp/x" {
		t.Fatalf("got %q", got)
	}
}
