package debugs

import (
	"github.com/reusee/cestudio/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
