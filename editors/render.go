package editors

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	colorReset   = "\033[0m"
	colorGutter  = "\033[90m"
	colorWarning = "\033[31m"
	colorTitle   = "\033[1m"
)

// RenderWriter is where the default renderer draws.
type RenderWriter io.Writer

func (Module) RenderWriter() RenderWriter {
	return os.Stdout
}

// TermRenderer lists the buffer with a byte-offset gutter, raw byte
// pairs, jump-target notes and the status surface. Colors only when the
// writer is a terminal.
type TermRenderer struct {
	w          io.Writer
	isTerminal bool
}

func NewTermRenderer(w io.Writer) *TermRenderer {
	isTerminal := false
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerminal = true
	}
	return &TermRenderer{
		w:          w,
		isTerminal: isTerminal,
	}
}

func (r *TermRenderer) color(c string) string {
	if !r.isTerminal {
		return ""
	}
	return c
}

func (r *TermRenderer) Render(s *Session) error {
	status := s.Status()

	if _, err := fmt.Fprintf(r.w, "%s%s%s\n",
		r.color(colorTitle), status.Title, r.color(colorReset),
	); err != nil {
		return err
	}

	for i, line := range s.Buffer.Lines {
		lineColor := ""
		if i == status.WarnLine {
			lineColor = r.color(colorWarning)
		}

		pair := "     "
		if op, arg, ok := s.BytePair(i); ok {
			pair = fmt.Sprintf("%02X %02X", op, arg)
		}

		note := ""
		if n, ok := s.JumpNote(i); ok {
			note = "  " + n
		}

		if _, err := fmt.Fprintf(r.w, "%s%s%s %s %s%s%s%s\n",
			r.color(colorGutter), s.Gutter(i), r.color(colorReset),
			pair,
			lineColor, line, note, r.color(colorReset),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.w, status.PoolLine()); err != nil {
		return err
	}

	if status.WarningCount > 0 {
		if _, err := fmt.Fprintf(r.w, "%s%s (%d)%s\n",
			r.color(colorWarning),
			status.WarningMessage, status.WarningCount,
			r.color(colorReset),
		); err != nil {
			return err
		}
	}

	return nil
}
