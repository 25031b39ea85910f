package editors

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dzshn/lili-v0/liliconfigs"
	"github.com/dzshn/lili-v0/logs"
	"github.com/peterh/liner"
)

// RunEditor drives one session with line commands until quit or EOF.
type RunEditor func(ctx context.Context, session *Session) error

func (Module) RunEditor(
	historyPath liliconfigs.HistoryPath,
	renderer Renderer,
	writer RenderWriter,
	logger logs.Logger,
) RunEditor {
	return func(ctx context.Context, session *Session) error {

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		if historyPath != "" {
			if f, err := os.Open(string(historyPath)); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}

		saveHistory := func() {
			if historyPath == "" {
				return
			}
			if err := os.MkdirAll(filepath.Dir(string(historyPath)), 0755); err != nil {
				logger.Warn("create history dir error", "err", err)
				return
			}
			f, err := os.Create(string(historyPath))
			if err != nil {
				logger.Warn("create history file error", "err", err)
				return
			}
			line.WriteHistory(f)
			f.Close()
		}

		if err := renderer.Render(session); err != nil {
			return err
		}

		for {
			input, err := line.Prompt("lili> ")
			if err != nil {
				switch err {
				case io.EOF, liner.ErrPromptAborted:
					return nil
				}
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			line.AppendHistory(input)
			saveHistory()

			if err := runCommand(session, renderer, writer, input); err != nil {
				if err == errQuit {
					logger.InfoContext(ctx, "session end",
						"file", session.Filename,
					)
					return nil
				}
				fmt.Fprintln(writer, err)
			}
		}
	}
}

var errQuit = fmt.Errorf("quit")

func runCommand(
	session *Session,
	renderer Renderer,
	writer io.Writer,
	input string,
) error {
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch name {

	case "q", "quit":
		return errQuit

	case "p", "print":
		return renderer.Render(session)

	case "s", "status":
		status := session.Status()
		fmt.Fprintln(writer, status.Title)
		fmt.Fprintln(writer, status.PoolLine())
		if status.WarningCount > 0 {
			fmt.Fprintf(writer, "%s (%d)\n",
				status.WarningMessage, status.WarningCount)
		}
		return nil

	case "e", "edit":
		n, text, err := lineArg(rest)
		if err != nil {
			return err
		}
		if !session.Buffer.SetLine(n, text) {
			return fmt.Errorf("no line %d", n)
		}
		session.Update()
		return renderer.Render(session)

	case "i", "insert":
		n, text, err := lineArg(rest)
		if err != nil {
			return err
		}
		if !session.Buffer.InsertLine(n, text) {
			return fmt.Errorf("no line %d", n)
		}
		session.Update()
		return renderer.Render(session)

	case "a", "append":
		session.Buffer.InsertLine(len(session.Buffer.Lines), rest)
		session.Update()
		return renderer.Render(session)

	case "d", "delete":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("delete needs a line number: %w", err)
		}
		if !session.Buffer.DeleteLine(n) {
			return fmt.Errorf("no line %d", n)
		}
		session.Update()
		return renderer.Render(session)

	case "w", "write":
		if err := session.Save(rest); err != nil {
			return err
		}
		fmt.Fprintln(writer, "written")
		return nil

	}

	return fmt.Errorf("unknown command: %s", name)
}

func lineArg(rest string) (int, string, error) {
	numText, text, _ := strings.Cut(rest, " ")
	n, err := strconv.Atoi(numText)
	if err != nil {
		return 0, "", fmt.Errorf("expecting a line number: %w", err)
	}
	return n, text, nil
}
