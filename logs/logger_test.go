package logs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.With("user", "alice").Info("test", "hello", "world!")
	})
	if !strings.Contains(buf.String(), "hello=world!") {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "user=alice") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestNewSpan(t *testing.T) {
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelInfo)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "open")
		ctx2, span2 := newSpan(ctx1, "run")
		logger.InfoContext(ctx2, "done")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %v", lines)
		}
		if !strings.Contains(lines[0], "logs.span="+string(span1)) ||
			!strings.Contains(lines[0], "action=open") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[2])
		}

		err := WrapSpan(ctx2, errors.New("boom"))
		if !strings.Contains(err.Error(), string(span2)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx, nil) != nil {
			t.Fatal()
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %q", got)
	}
}

func TestJSON(t *testing.T) {
	*jsonFlag = true
	defer func() {
		*jsonFlag = false
	}()
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("saved", "path", "a.py")
	})
	if !strings.Contains(buf.String(), `"path":"a.py"`) {
		t.Fatalf("got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cestudio.log")
	w, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(w, nil))
	logger.Info("hello")
	if err := w.(io.Closer).Close(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "msg=hello") {
		t.Fatalf("got %q", content)
	}
}
