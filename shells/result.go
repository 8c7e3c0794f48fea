package shells

import "strconv"

type Result struct {
	Command  string
	Dir      string
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set when the shell could not be launched at all.
	Err error
	// Skipped is set for blank commands, which do nothing.
	Skipped bool
	// Refused is set when the pane is not trusted to run commands.
	Refused bool
}

// Output is what the pane shows for the command: stdout then stderr, or the launcher error.
func (r Result) Output() string {
	switch {
	case r.Refused:
		return "Running shell commands requires trusted execution."
	case r.Err != nil:
		return r.Err.Error()
	}
	return r.Stdout + r.Stderr
}

func (r Result) Status() string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.Refused:
		return "refused"
	case r.Err != nil:
		return "failed"
	}
	return "exit " + strconv.Itoa(r.ExitCode)
}
