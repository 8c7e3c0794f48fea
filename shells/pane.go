package shells

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/reusee/cestudio/logs"
)

var ErrNoDir = errors.New("no working directory")

// SandboxWord is the command word that re-enters the program to run a shell under the sandbox.
const SandboxWord = "-sandbox-exec"

// Pane runs typed commands in a working directory and keeps a transcript of them.
type Pane struct {
	Shell   string
	Trusted bool
	Sandbox bool
	Logger  logs.Logger

	mu         sync.Mutex
	transcript strings.Builder
}

func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "/bin/sh"
}

func shellArgs(shell string, command string) []string {
	if runtime.GOOS == "windows" && strings.EqualFold(shell, "cmd") {
		return []string{"/C", command}
	}
	return []string{"-c", command}
}

func (p *Pane) shell() string {
	if p.Shell == "" {
		return DefaultShell()
	}
	return p.Shell
}

func (p *Pane) command(ctx context.Context, dir string, command string) (*exec.Cmd, error) {
	if p.Sandbox {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		return exec.CommandContext(ctx, exe, SandboxWord, dir, p.shell(), command), nil
	}
	return exec.CommandContext(ctx, p.shell(), shellArgs(p.shell(), command)...), nil
}

// Run runs command with dir as working directory and waits for it.
// A non-zero exit status is reported in the result, not as an error.
func (p *Pane) Run(ctx context.Context, dir string, command string) (Result, error) {
	if dir == "" {
		return Result{}, ErrNoDir
	}
	command = strings.TrimSpace(command)
	result := Result{
		Command: command,
		Dir:     dir,
	}
	if command == "" {
		result.Skipped = true
		return result, nil
	}
	if !p.Trusted {
		result.Refused = true
		p.record(result)
		return result, nil
	}

	cmd, err := p.command(ctx, dir, command)
	if err != nil {
		result.Err = err
		p.record(result)
		return result, nil
	}
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Err = err
		}
	}

	p.Logger.InfoContext(ctx, "shell command",
		"dir", dir,
		"command", command,
		"status", result.Status(),
		"sandbox", p.Sandbox,
	)
	p.record(result)
	return result, nil
}

func (p *Pane) record(result Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transcript.WriteString("> ")
	p.transcript.WriteString(result.Command)
	p.transcript.WriteString("\n")
	if out := result.Output(); out != "" {
		p.transcript.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			p.transcript.WriteString("\n")
		}
	}
}

func (p *Pane) Transcript() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transcript.String()
}

func (p *Pane) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transcript.Reset()
}
