package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/debugs"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/modes"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/studios"
	"github.com/reusee/cestudio/tui"
	"github.com/reusee/dscope"
)

// env is what queued words act on.
type env struct {
	studio *studios.Studio
	tap    debugs.Tap
	runTUI tui.Run
	logger logs.Logger
}

type action struct {
	name string
	// needsUser actions run only inside a session.
	needsUser bool
	fn        func(ctx context.Context, env *env) error
}

// words queue actions while the command line is parsed; they run in order once the scope is built.
var actions []action

func queue(name string, needsUser bool, fn func(ctx context.Context, env *env) error) {
	actions = append(actions, action{
		name:      name,
		needsUser: needsUser,
		fn:        fn,
	})
}

func main() {
	if code, ok := shells.SandboxMain(os.Args[1:]); ok {
		os.Exit(code)
	}

	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(actions) == 0 {
		queueTUI()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(studios.Module),
		new(debugs.Module),
		new(tui.Module),
		modes.ForProduction(),
	)
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	})

	if usesTUI && !logs.ToFile() {
		// records would draw over the screen
		scope.Call(func(dataDir configs.DataDir) {
			w, err := logs.OpenFile(filepath.Join(string(dataDir), "cestudio.log"))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			scope = scope.Fork(func() logs.Writer {
				return w
			})
		})
	}

	scope.Call(func(
		studio *studios.Studio,
		tap debugs.Tap,
		runTUI tui.Run,
		logger logs.Logger,
	) {
		defer studio.Close()
		e := &env{
			studio: studio,
			tap:    tap,
			runTUI: runTUI,
			logger: logger,
		}
		studio.Start(ctx)
		for _, action := range actions {
			if action.needsUser {
				if err := studio.RequireUser(); err != nil {
					fail(action.name, err)
				}
			}
			if err := action.fn(ctx, e); err != nil {
				fail(action.name, err)
			}
		}
	})
}

func fail(name string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", name, studios.Message(err))
	os.Exit(1)
}
