package main

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlight writes text colored for a terminal. The lexer is picked by language name, then by path.
func highlight(w io.Writer, text string, language string, path string) error {
	lexer := lexers.Get(language)
	if lexer == nil && path != "" {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return err
	}
	if err := formatters.TTY256.Format(w, styles.Get("monokai"), iterator); err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
