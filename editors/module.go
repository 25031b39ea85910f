package editors

import (
	"github.com/dzshn/lili-v0/liliconfigs"
	"github.com/dzshn/lili-v0/logs"
	"github.com/dzshn/lili-v0/validators"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	Configs    liliconfigs.Module
	Validators validators.Module
}
