package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/debugs"
	"github.com/reusee/cestudio/languages"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/trees"
	"github.com/reusee/cestudio/workspaces"
)

var usesTUI bool

func queueTUI() {
	usesTUI = true
	queue("tui", false, func(ctx context.Context, env *env) error {
		return env.runTUI(ctx)
	})
}

func say(text string) {
	fmt.Fprintln(os.Stdout, text)
}

func init() {

	cmds.Define("signup", cmds.Func(func(username, password string) {
		queue("signup", false, func(ctx context.Context, env *env) error {
			if err := env.studio.SignUp(ctx, username, password); err != nil {
				return err
			}
			say(studios.TextAccountCreated)
			return nil
		})
	}).Desc("create an account"))

	cmds.Define("login", cmds.Func(func(username, password string) {
		queue("login", false, func(ctx context.Context, env *env) error {
			if err := env.studio.LogIn(ctx, username, password); err != nil {
				return err
			}
			say(studios.TextLoggedIn)
			return nil
		})
	}).Desc("log in and remember the session"))

	cmds.Define("logout", cmds.Func(func() {
		queue("logout", false, func(ctx context.Context, env *env) error {
			if err := env.studio.LogOut(ctx); err != nil {
				return err
			}
			say(studios.TextLoggedOut)
			return nil
		})
	}).Desc("forget the session"))

	cmds.Define("whoami", cmds.Func(func() {
		queue("whoami", false, func(ctx context.Context, env *env) error {
			if env.studio.User == "" {
				say("not logged in")
				return nil
			}
			say(env.studio.User)
			return nil
		})
	}).Desc("print the logged in user"))

	cmds.Define("root", cmds.Func(func(dir string) {
		queue("root", true, func(ctx context.Context, env *env) error {
			return env.studio.Workspace.SetRoot(dir)
		})
	}).Desc("load a folder").Alias("folder"))

	cmds.Define("tree", cmds.Func(func() {
		queue("tree", true, func(ctx context.Context, env *env) error {
			tree := env.studio.Workspace.Tree()
			if tree == nil {
				return workspaces.ErrNoFolderLoaded
			}
			fmt.Fprint(os.Stdout, trees.Render(tree))
			return nil
		})
	}).Desc("print the explorer tree"))

	cmds.Define("add", cmds.Func(func(name string) {
		queue("add", true, func(ctx context.Context, env *env) error {
			if err := env.studio.Workspace.AddFile(name); err != nil {
				return err
			}
			say(studios.TextAdded(name))
			return nil
		})
	}).Desc("create an empty file in the folder, truncating an existing one"))

	cmds.Define("new", cmds.Func(func(name string) {
		queue("new", true, func(ctx context.Context, env *env) error {
			if err := env.studio.Workspace.AddFileExclusive(name); err != nil {
				return err
			}
			say(studios.TextAdded(name))
			return nil
		})
	}).Desc("create an empty file in the folder, failing if it exists"))

	cmds.Define("open", cmds.Func(func(rel string) {
		queue("open", true, func(ctx context.Context, env *env) error {
			loaded, err := env.studio.Workspace.Open(rel)
			if err != nil {
				return err
			}
			say(studios.TextLoaded(loaded.Name) + " (" + loaded.Language + ")")
			return nil
		})
	}).Desc("open a file of the folder into the buffer"))

	cmds.Define("lang", cmds.Func(func(name string) {
		queue("lang", true, func(ctx context.Context, env *env) error {
			env.studio.Workspace.SetLanguage(name)
			return nil
		})
	}).Desc("set the buffer language"))

	cmds.Define("buffer", cmds.Func(func(text string) {
		queue("buffer", true, func(ctx context.Context, env *env) error {
			env.studio.Workspace.SetBuffer(text)
			return nil
		})
	}).Desc("replace the buffer text"))

	cmds.Define("save", cmds.Func(func(path string) {
		queue("save", true, func(ctx context.Context, env *env) error {
			saved, err := env.studio.Workspace.SaveBuffer(path)
			if err != nil {
				return err
			}
			say(studios.TextFileSaved + " " + saved)
			return nil
		})
	}).Desc("save the buffer, adding the language extension"))

	cmds.Define("load", cmds.Func(func(path string) {
		queue("load", true, func(ctx context.Context, env *env) error {
			if err := env.studio.Workspace.LoadBuffer(path); err != nil {
				return err
			}
			say(studios.TextFileLoaded)
			return nil
		})
	}).Desc("load a file into the buffer, keeping the language"))

	cmds.Define("run", cmds.Func(func() {
		queue("run", true, func(ctx context.Context, env *env) error {
			outcome := env.studio.Workspace.Run(ctx)
			if outcome.Kind == runners.KindPreview {
				say("Preview opened: " + outcome.PreviewPath)
				return nil
			}
			fmt.Fprint(os.Stdout, outcome.Text)
			if !strings.HasSuffix(outcome.Text, "\n") {
				say("")
			}
			return nil
		})
	}).Desc("run the buffer"))

	cmds.Define("preview", cmds.Func(func() {
		queue("preview", true, func(ctx context.Context, env *env) error {
			outcome := env.studio.Workspace.Preview(ctx)
			if outcome.Kind != runners.KindPreview {
				return errors.New(outcome.Text)
			}
			say("Preview opened: " + outcome.PreviewPath)
			return nil
		})
	}).Desc("render the buffer as markdown in the browser"))

	cmds.Define("sh", cmds.Func(func(command cmds.Rest) {
		queue("sh", true, func(ctx context.Context, env *env) error {
			result, err := env.studio.Workspace.RunCommand(ctx, strings.Join(command, " "))
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, result.Output())
			if result.Status() != "exit 0" {
				fmt.Fprintln(os.Stderr, result.Status())
			}
			return nil
		})
	}).Desc("run the remaining words as a shell command in the folder"))

	cmds.Define("show", cmds.Func(func() {
		queue("show", true, func(ctx context.Context, env *env) error {
			w := env.studio.Workspace
			return highlight(os.Stdout, w.Buffer(), w.Language(), w.BufferPath())
		})
	}).Desc("print the buffer with syntax highlighting"))

	cmds.Define("languages", cmds.Func(func() {
		queue("languages", false, func(ctx context.Context, env *env) error {
			for _, lang := range languages.Table {
				kind := ""
				switch {
				case lang.Web:
					kind = "preview"
				case lang.Scriptable:
					kind = "run"
				}
				fmt.Fprintf(os.Stdout, "%-12s %-7s %s\n", lang.Name, lang.Extension, kind)
			}
			return nil
		})
	}).Desc("list languages"))

	cmds.Define("repl", cmds.Func(func() {
		queue("repl", true, func(ctx context.Context, env *env) error {
			env.tap(ctx, "workspace", debugs.WorkspaceGlobals(ctx, env.studio.Workspace))
			return nil
		})
	}).Desc("inspect the workspace in a starlark session"))

	cmds.Define("tui", cmds.Func(func() {
		queueTUI()
	}).Desc("start the terminal interface"))

}
