package logs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/cestudio/cmds"
)

type Writer io.Writer

var logFileFlag = cmds.Var[string]("-log-file")

// Writer is stderr unless -log-file is given.
func (Module) Writer() Writer {
	if *logFileFlag == "" {
		return os.Stderr
	}
	w, err := OpenFile(*logFileFlag)
	if err != nil {
		return os.Stderr
	}
	return w
}

// ToFile reports whether -log-file was given.
func ToFile() bool {
	return *logFileFlag != ""
}

// OpenFile opens path for appending log records, creating its directory.
func OpenFile(path string) (Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return f, nil
}
