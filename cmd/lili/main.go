package main

import (
	"context"
	"os"
	"strings"

	"github.com/dzshn/lili-v0/cmds"
	"github.com/dzshn/lili-v0/editors"
	"github.com/dzshn/lili-v0/logs"
	"github.com/dzshn/lili-v0/modes"
	"github.com/reusee/dscope"
)

var compileFlag = cmds.Switch("-compile")

func init() {
	cmds.Define("-c", cmds.Func(func() {
		*compileFlag = true
	}).Desc("treat the file as plain source and compile it first"))
	cmds.Define("-f", cmds.Func(func() {
		cmds.GlobalExecutor.MustExecute([]string{"-force"})
	}).Desc("open the file regardless of compatibility"))
}

func main() {
	args := os.Args[1:]

	// flags first, file last; value-taking flags keep their argument
	var path string
	if n := len(args); n > 0 && !strings.HasPrefix(args[n-1], "-") {
		if n == 1 || !takesValue(args[n-2]) {
			path = args[n-1]
			args = args[:n-1]
		}
	}

	cmds.Execute(args)
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newSession editors.NewSession,
		runEditor editors.RunEditor,
	) {
		ctx, span := newSpan(ctx, "")
		logger.InfoContext(ctx, "start",
			"span", span,
			"file", path,
		)

		session, err := newSession(path, *compileFlag)
		ce(err)

		err = runEditor(ctx, session)
		ce(err)
	})
}

func takesValue(flag string) bool {
	switch flag {
	case "-history-path":
		return true
	}
	return false
}
