package liliconfigs

import (
	"github.com/dzshn/lili-v0/configs"
)

// ScratchBody overrides the generated body used when no file is given.
// Empty means use the built-in one.
type ScratchBody []string

func (Module) ScratchBody(
	loader configs.Loader,
) ScratchBody {
	return configs.First[[]string](loader, "scratch")
}
