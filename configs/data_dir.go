package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/vars"
)

// DataDir holds account records, the session marker and the preview page.
type DataDir string

var dataDirFlag = cmds.Var[string]("-data-dir")

func (Module) DataDir(
	loader Loader,
) DataDir {
	dir := vars.FirstNonZero(
		*dataDirFlag,
		First[string](loader, "data_dir"),
	)
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = os.TempDir()
		}
		dir = filepath.Join(configDir, "CEStudio")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return DataDir(dir)
}
