package main

import (
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	var b strings.Builder
	if err := highlight(&b, "def f():\n    return 1", "Python", ""); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no color: %q", out)
	}
	if !strings.Contains(out, "return") || !strings.HasSuffix(out, "\n") {
		t.Fatalf("got %q", out)
	}

	// unknown languages fall back to the path, then to plain text
	b.Reset()
	if err := highlight(&b, "x", "Klingon", "main.go"); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := highlight(&b, "plain", "Klingon", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "plain") {
		t.Fatalf("got %q", b.String())
	}
}
