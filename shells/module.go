package shells

import (
	"github.com/reusee/cestudio/cmds"
	"github.com/reusee/cestudio/configs"
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/cestudio/runners"
	"github.com/reusee/cestudio/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Runners runners.Module
}

type Shell string

type Sandbox bool

var (
	sandboxFlag = cmds.Switch("-sandbox")
	shellFlag   = cmds.Var[string]("-shell")
)

func (Module) Shell(
	loader configs.Loader,
) Shell {
	return Shell(vars.FirstNonZero(
		*shellFlag,
		configs.First[string](loader, "shell"),
		DefaultShell(),
	))
}

func (Module) Sandbox(
	loader configs.Loader,
) Sandbox {
	return Sandbox(*sandboxFlag || configs.Bool(loader, "sandbox", false))
}

func (Module) Pane(
	shell Shell,
	trusted runners.Trusted,
	sandbox Sandbox,
	logger logs.Logger,
) *Pane {
	return &Pane{
		Shell:   string(shell),
		Trusted: bool(trusted),
		Sandbox: bool(sandbox),
		Logger:  logger,
	}
}
