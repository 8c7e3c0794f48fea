package browsers

import (
	"slices"
	"testing"
)

func TestLauncher(t *testing.T) {
	url := "file:///tmp/x.html"
	cases := map[string]string{
		"linux":   "xdg-open",
		"freebsd": "xdg-open",
		"darwin":  "open",
		"windows": "cmd",
	}
	for goos, want := range cases {
		name, args := launcher(goos, url)
		if name != want {
			t.Fatalf("%s: got %v", goos, name)
		}
		if !slices.Contains(args, url) {
			t.Fatalf("%s: got %v", goos, args)
		}
	}
}
