// Package languages holds the fixed language table of the editor.
package languages

import (
	"path/filepath"
	"slices"
)

type Language struct {
	Name      string
	Extension string
	// Web languages run by writing a preview page and opening it in a browser.
	Web bool
	// Scriptable languages run in-process.
	Scriptable bool
}

const (
	Python     = "Python"
	JavaScript = "JavaScript"
	HTML       = "HTML"
	CSS        = "CSS"
)

// Table is ordered; the first entry is the default language, and the first entry matching an extension wins.
var Table = []Language{
	{Name: Python, Extension: ".py", Scriptable: true},
	{Name: JavaScript, Extension: ".js", Web: true},
	{Name: HTML, Extension: ".html", Web: true},
	{Name: CSS, Extension: ".css", Web: true},
	{Name: "Java", Extension: ".java"},
	{Name: "C", Extension: ".c"},
	{Name: "C++", Extension: ".cpp"},
	{Name: "C#", Extension: ".cs"},
	{Name: "Go", Extension: ".go"},
	{Name: "Rust", Extension: ".rs"},
	{Name: "Kotlin", Extension: ".kt"},
	{Name: "Ruby", Extension: ".rb"},
	{Name: "PHP", Extension: ".php"},
	{Name: "TypeScript", Extension: ".ts"},
	{Name: "Scala", Extension: ".scala"},
	{Name: "Perl", Extension: ".pl"},
	{Name: "Lua", Extension: ".lua"},
}

func Default() string {
	return Table[0].Name
}

func Names() []string {
	ret := make([]string, 0, len(Table))
	for _, lang := range Table {
		ret = append(ret, lang.Name)
	}
	return ret
}

// Get looks up a language by exact name. Names typed by users that are not in the table are not found.
func Get(name string) (Language, bool) {
	i := slices.IndexFunc(Table, func(lang Language) bool {
		return lang.Name == name
	})
	if i < 0 {
		return Language{}, false
	}
	return Table[i], true
}

func ByExtension(ext string) (Language, bool) {
	if ext == "" {
		return Language{}, false
	}
	i := slices.IndexFunc(Table, func(lang Language) bool {
		return lang.Extension == ext
	})
	if i < 0 {
		return Language{}, false
	}
	return Table[i], true
}

func ForPath(path string) (Language, bool) {
	return ByExtension(filepath.Ext(path))
}

// ExtensionOf returns the extension of a named language, or fallback for names not in the table.
func ExtensionOf(name string, fallback string) string {
	if lang, ok := Get(name); ok {
		return lang.Extension
	}
	return fallback
}

func IsWeb(name string) bool {
	lang, ok := Get(name)
	return ok && lang.Web
}

func IsScriptable(name string) bool {
	lang, ok := Get(name)
	return ok && lang.Scriptable
}
