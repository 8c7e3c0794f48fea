package workspaces

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// readText reads a whole file as UTF-8 text. Content that does not decode is an ErrRead.
func readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s is not valid utf-8 (%s)", ErrRead, path, mimetype.Detect(content).String())
	}
	return string(content), nil
}
