package debugs

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/shells"
	"github.com/reusee/cestudio/workspaces"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func newTapWorkspace(t *testing.T) *workspaces.Workspace {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := workspaces.New(
		runners.NewRunner(filepath.Join(t.TempDir(), runners.PreviewFileName), true, nil, runners.EvalStarlark, logger),
		&shells.Pane{Logger: logger},
		logger,
	)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.py"), []byte("print(1)"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := w.SetRoot(dir); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestTapThread(t *testing.T) {
	w := newTapWorkspace(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w.SetBuffer("print('hi')")
	ctx := context.Background()
	mappings := convertGlobals(ctx, logger, WorkspaceGlobals(ctx, w))

	out := new(bytes.Buffer)
	thread, stop := newThread(ctx, "test", out)
	defer stop()
	if _, err := starlark.ExecFileOptions(tapFileOptions, thread, "test", `
print(buffer, files)
set_buffer("print(2)")
print(run())
`, mappings); err != nil {
		t.Fatal(err)
	}
	if w.Buffer() != "print(2)" {
		t.Fatalf("got %q", w.Buffer())
	}
	if out.String() != "print('hi') [\"a.py\"]\n2\n\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestTapThreadCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	thread, stop := newThread(ctx, "test", io.Discard)
	defer stop()
	cancel()
	_, err := starlark.ExecFileOptions(tapFileOptions, thread, "test", `
while True:
    pass
`, nil)
	if err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Fatalf("got %v", err)
	}
}

func TestConvertGlobalsSkips(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	mappings := convertGlobals(context.Background(), logger, map[string]any{
		"ok":  42,
		"bad": make(chan int),
	})
	if _, ok := mappings["bad"]; ok {
		t.Fatal("should skip")
	}
	if i, ok := mappings["ok"].(starlark.Int); !ok {
		t.Fatalf("got %v", mappings["ok"])
	} else if v, _ := i.Int64(); v != 42 {
		t.Fatalf("got %v", v)
	}
	if !strings.Contains(buf.String(), "name=bad") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestTap(t *testing.T) {
	w := newTapWorkspace(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		tap Tap,
	) {
		tap(ctx, "workspace", WorkspaceGlobals(ctx, w))
	})
	if !strings.Contains(buf.String(), "tap end: workspace") {
		t.Fatalf("got %s", buf.String())
	}
}
