package browsers

import (
	"os/exec"
	"runtime"

	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Open asks the desktop to show url. It returns once the launcher has started.
type Open func(url string) error

func (Module) Open(
	logger logs.Logger,
) Open {
	return func(url string) error {
		name, args := launcher(runtime.GOOS, url)
		cmd := exec.Command(name, args...)
		if err := cmd.Start(); err != nil {
			logger.Warn("open url", "url", url, "error", err)
			return err
		}
		logger.Info("open url", "url", url, "launcher", name)
		// reap the launcher
		go cmd.Wait()
		return nil
	}
}

func launcher(goos string, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	}
	return "xdg-open", []string{url}
}
