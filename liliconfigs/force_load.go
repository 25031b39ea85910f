package liliconfigs

import (
	"github.com/dzshn/lili-v0/cmds"
	"github.com/dzshn/lili-v0/configs"
)

// ForceLoad skips magic and flag checks when opening container files.
type ForceLoad bool

var forceFlag = cmds.Switch("-force")

func (Module) ForceLoad(
	loader configs.Loader,
) ForceLoad {
	if *forceFlag {
		return true
	}
	return ForceLoad(configs.First[bool](loader, "force"))
}
