package liliasm

import (
	"fmt"
	"strconv"

	"github.com/dzshn/lili-v0/lilivm"
)

// Disassemble renders a code unit in the canonical text form the assembler
// reads back: one declaration section per non-empty pool, the informational
// FLAGS/STACKSIZE header, a blank separator, then one line per instruction.
// Nested code units inside the constant pool have no literal form; they are
// emitted as an escaped blob behind the opaque marker.
func Disassemble(unit *lilivm.CodeUnit) []string {
	var src []string

	if len(unit.Constants) > 0 {
		src = append(src, SectionConsts+":")
		for _, v := range unit.Constants {
			if v.Kind == lilivm.KindCode {
				blob, err := v.Code.EncodeGob()
				if err != nil {
					src = append(src, "    %code")
					continue
				}
				src = append(src, "    %"+strconv.Quote(string(blob)))
				continue
			}
			src = append(src, "    "+v.Repr())
		}
	}
	for _, section := range []struct {
		name  string
		names []string
	}{
		{SectionNames, unit.Names},
		{SectionVarnames, unit.Varnames},
		{SectionFreevars, unit.Freevars},
		{SectionCellvars, unit.Cellvars},
	} {
		if len(section.names) == 0 {
			continue
		}
		src = append(src, section.name+":")
		for _, name := range section.names {
			src = append(src, "    "+name)
		}
	}
	src = append(src, fmt.Sprintf("%s: %#b", SectionFlags, unit.Flags))
	src = append(src, fmt.Sprintf("%s: %d", SectionStackSize, unit.StackSize))
	src = append(src, "")

	for _, ins := range unit.Instrs {
		if ins.Op >= lilivm.HaveArgument || ins.Arg != 0 {
			src = append(src, fmt.Sprintf("%s %%%d", ins.Op.Name(), ins.Arg))
		} else {
			src = append(src, ins.Op.Name())
		}
	}
	return src
}
