package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeCue(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "a.cue", `
data_dir: "/tmp/a"
max_tree_depth: 3
`),
	}, Schema)

	var dir string
	if err := loader.AssignFirst("data_dir", &dir); err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/a" {
		t.Fatalf("got %q", dir)
	}

	if n := First[int](loader, "max_tree_depth"); n != 3 {
		t.Fatalf("got %v", n)
	}

	err := loader.AssignFirst("shell", &dir)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "a.cue", `shell: "/bin/bash"`),
		writeCue(t, "b.cue", `
shell: "/bin/sh"
sandbox: true
`),
	}, Schema)

	if got := First[string](loader, "shell"); got != "/bin/bash" {
		t.Fatalf("got %q", got)
	}
	if !Bool(loader, "sandbox", false) {
		t.Fatal()
	}
	if Bool(loader, "watch_tree", false) {
		t.Fatal()
	}

	var shells []string
	for shell := range All[string](loader, "shell") {
		shells = append(shells, shell)
	}
	if str := fmt.Sprintf("%v", shells); str != "[/bin/bash /bin/sh]" {
		t.Fatalf("got %s", str)
	}
	if len(loader.Paths()) != 2 {
		t.Fatalf("got %v", loader.Paths())
	}
}

func TestBoolOverridesDefault(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "a.cue", `trusted_execution: false`),
	}, Schema)
	if Bool(loader, "trusted_execution", true) {
		t.Fatal("false in config should win over default")
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "bad.cue", `unknown_field: 1`),
	}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestBadEnum(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, "bad.cue", `password_storage: "md5"`),
	}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}

func TestEmptyLoader(t *testing.T) {
	loader := NewLoader(nil, Schema)
	if got := First[string](loader, "data_dir"); got != "" {
		t.Fatalf("got %q", got)
	}
}
