package runners

import (
	"path/filepath"

	"github.com/reusee/cestudio/browsers"
	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs  configs.Module
	Browsers browsers.Module
}

// Trusted is the host's opt-in to executing user code and shell commands.
type Trusted bool

var untrustedFlag = cmds.Switch("-untrusted")

func (Module) Trusted(
	loader configs.Loader,
) Trusted {
	if *untrustedFlag {
		return false
	}
	return Trusted(configs.Bool(loader, "trusted_execution", true))
}

func (Module) Runner(
	dataDir configs.DataDir,
	trusted Trusted,
	open browsers.Open,
	eval EvalScript,
	logger logs.Logger,
) *Runner {
	return NewRunner(
		filepath.Join(string(dataDir), PreviewFileName),
		bool(trusted),
		open,
		eval,
		logger,
	)
}
