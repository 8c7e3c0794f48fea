//go:build !linux

package shells

import "github.com/reusee/cestudio/logs"

func applySandbox(dir string, logger logs.Logger) error {
	logger.Warn("filesystem sandbox is only available on linux", "dir", dir)
	return nil
}
