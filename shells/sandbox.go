package shells

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

// SandboxMain runs the SandboxWord command when args start with it.
// The process streams belong to the command, so its own logs are discarded.
func SandboxMain(args []string) (code int, ok bool) {
	if len(args) != 4 || args[0] != SandboxWord {
		return 0, false
	}
	dscope.New(new(logs.Module)).Fork(
		func() logs.Writer {
			return io.Discard
		},
	).Call(func(
		logger logs.Logger,
	) {
		code = SandboxExec(args[1], args[2], args[3], logger)
	})
	return code, true
}

// SandboxExec restricts writes to dir, then runs command in shell with the standard streams attached.
// It is the body of the SandboxWord command and returns the exit code for the process.
func SandboxExec(dir string, shell string, command string, logger logs.Logger) int {
	if err := applySandbox(dir, logger); err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		return 126
	}
	cmd := exec.Command(shell, shellArgs(shell, command)...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return 127
	}
	return 0
}
