package editors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/dzshn/lili-v0/lilibin"
	"github.com/dzshn/lili-v0/liliasm"
	"github.com/dzshn/lili-v0/liliconfigs"
	"github.com/dzshn/lili-v0/lilivm"
	"github.com/dzshn/lili-v0/logs"
	"github.com/dzshn/lili-v0/validators"
	"github.com/gabriel-vasile/mimetype"
)

var defaultScratch = []string{
	"LOAD_FAST @n",
	"LOAD_CONST @.5",
	"INPLACE_POWER",
	"RETURN_VALUE",
}

// Session is one editing session over one buffer. Every edit runs a full
// assembly pass; the assembled state here is always in sync with Buffer.
type Session struct {
	Filename  string
	Format    string
	Buffer    *Buffer
	Unit      *lilivm.CodeUnit
	Index     liliasm.Index
	Parsed    []liliasm.ParsedLine
	BodyStart int

	// diagnostics from the last pass
	Warnings []validators.Warning
	WarnLine int

	Header   lilibin.Header
	IsBinary bool

	validate validators.Validate
}

// NewSession opens an editing session. An empty path starts a scratch
// session; a missing file starts an empty buffer named after it; text
// content is taken as source (compiled first when asked); anything else
// goes through the container codec.
type NewSession func(path string, needsCompile bool) (*Session, error)

func (Module) NewSession(
	force liliconfigs.ForceLoad,
	scratch liliconfigs.ScratchBody,
	compiler Compiler,
	validate validators.Validate,
	logger logs.Logger,
) NewSession {
	return func(path string, needsCompile bool) (*Session, error) {
		session := &Session{
			validate: validate,
			WarnLine: -1,
		}

		switch {

		case path == "":
			lines := []string(scratch)
			if len(lines) == 0 {
				lines = defaultScratch
			}
			session.Buffer = NewBuffer(slices.Clone(lines))
			session.Format = "none"

		default:
			session.Filename = path
			content, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				session.Buffer = NewBuffer([]string{""})
				session.Format = formatFromExt(path)
				break
			}
			if err != nil {
				return nil, err
			}

			if isText(content) {
				if needsCompile {
					unit, err := compiler(content, path)
					if err != nil {
						return nil, err
					}
					session.Buffer = NewBuffer(liliasm.Disassemble(unit))
					session.Filename += "ll"
					session.Format = "pyll(generated)"
				} else {
					session.Buffer = NewBuffer(strings.Split(string(content), "\n"))
					session.Format = "pyll"
				}
				break
			}

			unit, header, err := lilibin.Load(content, bool(force))
			if err != nil {
				return nil, err
			}
			hexed := ""
			if !header.MagicOK() {
				hexed = "[HEXED!]"
			}
			session.Buffer = NewBuffer(liliasm.Disassemble(unit))
			session.Format = fmt.Sprintf("pyc(MAGIC=%d%s:F=%x)",
				header.Word(), hexed, header.Flags)
			session.Header = header
			session.IsBinary = true
		}

		session.Update()
		logger.Info("session",
			"file", session.Filename,
			"format", session.Format,
		)
		return session, nil
	}
}

// Update runs one assembly pass over the buffer and refreshes the
// diagnostics. Call after every edit.
func (s *Session) Update() {
	result := liliasm.Assemble(s.Buffer.Lines)
	s.Unit = result.Unit
	s.Index = result.Index
	s.Parsed = result.Parsed
	s.BodyStart = result.BodyStart

	s.Warnings = nil
	s.WarnLine = -1
	if s.validate != nil {
		s.Warnings = s.validate(s.Unit)
	}
	if len(s.Warnings) > 0 {
		if line, ok := s.Index.LineOf[s.Warnings[0].Offset/2]; ok {
			s.WarnLine = line
		}
	}
}

// Title is the "name:format" string shown in the status bar.
func (s *Session) Title() string {
	name := s.Filename
	if name == "" {
		name = "[scratch]"
	}
	return name + ":" + s.Format
}

// BytePair reports the (opcode, operand) bytes a source line assembled
// to, for gutter display.
func (s *Session) BytePair(line int) (op, arg byte, ok bool) {
	i, ok := s.Index.InstrOf[line]
	if !ok {
		return 0, 0, false
	}
	ins := s.Unit.Instrs[i]
	return byte(ins.Op), ins.Arg, true
}

// Gutter is the left-margin mark for a source line: the byte offset of
// its instruction, or "~" for lines that contributed nothing.
func (s *Session) Gutter(line int) string {
	if i, ok := s.Index.InstrOf[line]; ok {
		return fmt.Sprintf("%4d", i*2)
	}
	if line < len(s.Buffer.Lines) {
		return "   ~"
	}
	return ""
}

// JumpNote resolves a jump instruction's operand, which names a source
// line, to the byte offset of that line. Unassembled targets stay
// unresolved.
func (s *Session) JumpNote(line int) (string, bool) {
	i, ok := s.Index.InstrOf[line]
	if !ok {
		return "", false
	}
	ins := s.Unit.Instrs[i]
	if !ins.Op.IsJump() {
		return "", false
	}
	if offset, ok := s.Index.JumpTargetOffset(int(ins.Arg)); ok {
		return fmt.Sprintf("-> %d", offset), true
	}
	return "-> ?", true
}

// Save writes the session back out: buffer text for text sessions, a
// container for binary ones.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.Filename
	}
	if path == "" {
		return fmt.Errorf("no file name")
	}
	if s.IsBinary {
		data, err := lilibin.Encode(s.Unit, s.Header.Flags)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	}
	return os.WriteFile(path, []byte(strings.Join(s.Buffer.Lines, "\n")), 0644)
}

func formatFromExt(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		switch ext := path[i+1:]; ext {
		case "py", "pyc", "pyll":
			return ext
		}
	}
	return "none"
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
