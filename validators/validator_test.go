package validators

import (
	"strings"
	"testing"

	"github.com/dzshn/lili-v0/lilivm"
	"github.com/dzshn/lili-v0/modes"
	"github.com/reusee/dscope"
)

func TestValidate(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		validate Validate,
	) {
		u := lilivm.NewCodeUnit()
		u.Instrs = append(u.Instrs,
			lilivm.Instr{Op: 100, Arg: 1}, // LOAD_CONST beyond pool
			lilivm.Instr{Op: 113, Arg: 9}, // JUMP_ABSOLUTE beyond stream
			lilivm.Instr{Op: 83},          // RETURN_VALUE, fine
		)
		u.Constants = append(u.Constants, lilivm.None())

		warnings := validate(u)
		if len(warnings) != 2 {
			t.Fatalf("got %v", warnings)
		}
		if warnings[0].Offset != 0 || !strings.Contains(warnings[0].Message, "constant") {
			t.Fatalf("got %+v", warnings[0])
		}
		if warnings[1].Offset != 2 || !strings.Contains(warnings[1].Message, "jump") {
			t.Fatalf("got %+v", warnings[1])
		}
	})
}

func TestValidateCleanStream(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		validate Validate,
	) {
		u := lilivm.NewCodeUnit()
		u.Instrs = append(u.Instrs,
			lilivm.Instr{Op: 100, Arg: 0},
			lilivm.Instr{Op: 83},
		)
		u.Constants = append(u.Constants, lilivm.None())
		if warnings := validate(u); len(warnings) != 0 {
			t.Fatalf("got %v", warnings)
		}
	})
}
