package languages

import "testing"

func TestDefault(t *testing.T) {
	if Default() != Python {
		t.Fatalf("got %v", Default())
	}
}

func TestTable(t *testing.T) {
	if len(Table) != 17 {
		t.Fatalf("got %d", len(Table))
	}
	web := 0
	for _, lang := range Table {
		if lang.Web {
			web++
		}
	}
	if web != 3 {
		t.Fatalf("got %d", web)
	}
}

func TestExtensionsDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, lang := range Table {
		if other, ok := seen[lang.Extension]; ok {
			t.Fatalf("%s and %s share %s", lang.Name, other, lang.Extension)
		}
		seen[lang.Extension] = lang.Name
	}
}

func TestForPath(t *testing.T) {
	cases := map[string]string{
		"/a/b/main.go":   "Go",
		"index.html":     HTML,
		"x.tar.py":       Python,
		"lib.cpp":        "C++",
		"README.md":      "",
		"notes.txt":      "",
		"Makefile":       "",
		"weird.HTML":     "",
		"dir.d/file.rs":  "Rust",
		"script.scala":   "Scala",
		"program.cs":     "C#",
		"page.css":       CSS,
		"app.js":         JavaScript,
		"no/ext/at/all.": "",
	}
	for path, want := range cases {
		lang, ok := ForPath(path)
		if want == "" {
			if ok {
				t.Fatalf("%s: got %v", path, lang.Name)
			}
			continue
		}
		if !ok || lang.Name != want {
			t.Fatalf("%s: got %v %v", path, lang.Name, ok)
		}
	}
}

func TestFlags(t *testing.T) {
	for _, name := range []string{HTML, CSS, JavaScript} {
		if !IsWeb(name) {
			t.Fatalf("%s should be web", name)
		}
	}
	if IsWeb(Python) || IsWeb("Markdown") || IsWeb("Cobol") {
		t.Fatal()
	}
	if !IsScriptable(Python) || IsScriptable("Go") {
		t.Fatal()
	}
}

func TestExtensionOf(t *testing.T) {
	if got := ExtensionOf("Rust", ".txt"); got != ".rs" {
		t.Fatalf("got %v", got)
	}
	if got := ExtensionOf("Cobol", ".txt"); got != ".txt" {
		t.Fatalf("got %v", got)
	}
}
