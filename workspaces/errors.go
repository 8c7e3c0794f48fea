package workspaces

import (
	"errors"
	"strings"
)

var (
	ErrNoFolderLoaded = errors.New("no folder loaded")
	ErrNotAFile       = errors.New("not a file")
	ErrRead           = errors.New("read file")
	ErrFileExists     = errors.New("file exists")
	ErrStaleNode      = errors.New("node is not in the current tree")
)

// Message returns the text shown to the user for a workspace error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFolderLoaded):
		return "Load a folder first!"
	case errors.Is(err, ErrNotAFile):
		return "Not a file: " + strings.TrimPrefix(err.Error(), ErrNotAFile.Error()+": ")
	case errors.Is(err, ErrRead):
		return "Failed to load file: " + strings.TrimPrefix(err.Error(), ErrRead.Error()+": ")
	case errors.Is(err, ErrFileExists):
		return "File already exists!"
	case errors.Is(err, ErrStaleNode):
		return "The explorer is out of date, reload the folder."
	}
	return err.Error()
}
