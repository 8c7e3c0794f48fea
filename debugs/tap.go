package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/reusee/cestudio/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var tapFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive Starlark session on stdin with globals converted to Starlark values.
// It returns when the input ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread, stop := newThread(ctx, "repl", os.Stdout)
		defer stop()
		repl.REPLOptions(tapFileOptions, thread, convertGlobals(ctx, logger, globals))
	}
}

// convertGlobals skips values that have no Starlark form.
func convertGlobals(ctx context.Context, logger logs.Logger, globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict)
	for name, value := range globals {
		v, err := toStarlarkValue(value)
		if err != nil {
			logger.WarnContext(ctx, "tap: skip global",
				"name", name,
				"error", err,
			)
			continue
		}
		mappings[name] = v
	}
	return mappings
}

// newThread prints to out and is cancelled with ctx until stop is called.
func newThread(ctx context.Context, name string, out io.Writer) (*starlark.Thread, func() bool) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	return thread, stop
}
