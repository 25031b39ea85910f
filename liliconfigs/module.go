package liliconfigs

import (
	"github.com/dzshn/lili-v0/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
