package runners

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EvalScript evaluates src with empty globals and returns everything it printed, followed by the backtrace if it failed.
type EvalScript func(ctx context.Context, name string, src string) string

var scriptFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

func (Module) EvalScript() EvalScript {
	return EvalStarlark
}

func EvalStarlark(ctx context.Context, name string, src string) (output string) {
	buf := new(bytes.Buffer)
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(buf, "panic: %v\n", p)
		}
		output = buf.String()
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			buf.WriteString(msg)
			buf.WriteByte('\n')
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	if _, err := starlark.ExecFileOptions(scriptFileOptions, thread, name, src, nil); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			buf.WriteString(evalErr.Backtrace())
		} else {
			buf.WriteString(err.Error())
		}
		buf.WriteByte('\n')
	}
	return
}
