package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var Schema string

var configFlag = cmds.Collect[string]("-config")

var filenames = []string{
	"cestudio.cue",
	".cestudio.cue",
}

func (Module) Loader(
	logger logs.Logger,
) Loader {
	// explicit files first, then working directory, user config dir, system wide
	paths := append([]string(nil), *configFlag...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "CEStudio"))
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return NewLoader(paths, Schema)
}
