package liliconfigs

import (
	"os"
	"path/filepath"

	"github.com/dzshn/lili-v0/cmds"
	"github.com/dzshn/lili-v0/configs"
	"github.com/dzshn/lili-v0/vars"
)

// HistoryPath is where the line editor persists its input history.
type HistoryPath string

var historyPathFlag = cmds.Var[string]("-history-path")

func (Module) HistoryPath(
	loader configs.Loader,
) HistoryPath {
	if path := vars.FirstNonZero(
		*historyPathFlag,
		configs.First[string](loader, "history_path"),
	); path != "" {
		return HistoryPath(path)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return HistoryPath(filepath.Join(configDir, "lili-history"))
}
