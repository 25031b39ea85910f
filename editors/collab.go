package editors

import (
	"fmt"

	"github.com/dzshn/lili-v0/lilivm"
)

// Compiler turns plain source text into a code unit. The host language
// front end is not part of this tool; wire one by providing another
// Compiler in the scope.
type Compiler func(source []byte, name string) (*lilivm.CodeUnit, error)

func (Module) Compiler() Compiler {
	return func(source []byte, name string) (*lilivm.CodeUnit, error) {
		return nil, fmt.Errorf("no compiler wired for %s", name)
	}
}

// Renderer draws a session. The plain-text one below is the default; a
// full-screen UI can provide its own.
type Renderer interface {
	Render(s *Session) error
}

func (Module) Renderer(
	writer RenderWriter,
) Renderer {
	return NewTermRenderer(writer)
}
