package liliasm

import (
	"strconv"
	"strings"

	"github.com/dzshn/lili-v0/lilivm"
)

// Index is the line↔offset mapping rebuilt by every assembly pass. LineOf
// maps instruction index to source line, InstrOf the reverse. Neither is
// ever read across passes.
type Index struct {
	LineOf  map[int]int
	InstrOf map[int]int
}

// JumpTargetOffset translates a jump operand, which names a source line,
// to the byte offset of that line's assembled instruction.
func (ix Index) JumpTargetOffset(line int) (int, bool) {
	i, ok := ix.InstrOf[line]
	if !ok {
		return 0, false
	}
	return i * 2, true
}

// Result of one assembly pass over the whole buffer.
type Result struct {
	Unit      *lilivm.CodeUnit
	Index     Index
	Parsed    []ParsedLine
	BodyStart int
}

// Assemble runs one full pass: tokenize every line, peel off declared
// sections, then resolve each body line into an (opcode, operand) pair.
// Unknown mnemonics, unevaluable operands and out-of-range operands drop
// their line from the stream without raising anything; the buffer is the
// operator's to keep in whatever state they like. Deterministic and
// stateless: equal buffers produce equal results.
func Assemble(lines []string) *Result {
	parsed := Tokenize(lines)
	sections, bodyStart := ExtractSections(parsed)

	unit := lilivm.NewCodeUnit()
	index := Index{
		LineOf:  make(map[int]int),
		InstrOf: make(map[int]int),
	}

	for li := bodyStart; li < len(parsed); li++ {
		tokens := parsed[li]
		if len(tokens) == 0 || tokens[0].Kind != TokenName {
			continue
		}
		op, ok := lilivm.LookupOp(strings.TrimSpace(tokens[0].Text))
		if !ok {
			continue
		}
		arg, ok := ResolveOperand(op, tokens, unit)
		if !ok || arg < 0 || arg > 255 {
			continue
		}
		i := len(unit.Instrs)
		unit.Instrs = append(unit.Instrs, lilivm.Instr{Op: op, Arg: uint8(arg)})
		index.LineOf[i] = li
		index.InstrOf[li] = i
	}

	applySections(unit, sections)

	return &Result{
		Unit:      unit,
		Index:     index,
		Parsed:    parsed,
		BodyStart: bodyStart,
	}
}

// applySections appends explicitly declared pool entries not already
// populated through operand resolution, in declaration order and under the
// same dedup rules, then picks up the informational header values.
func applySections(unit *lilivm.CodeUnit, sections map[string][]string) {
	for _, entry := range sections[SectionConsts] {
		if strings.HasPrefix(entry, "%") {
			// opaque entries are identity-distinct, one per declaration
			unit.Constants = append(unit.Constants, lilivm.Opaque())
			continue
		}
		v, err := EvalLiteral(entry)
		if err != nil {
			continue
		}
		unit.AddConst(v)
	}
	for _, entry := range sections[SectionNames] {
		lilivm.AddSymbol(&unit.Names, strings.TrimSpace(entry))
	}
	for _, entry := range sections[SectionVarnames] {
		lilivm.AddSymbol(&unit.Varnames, strings.TrimSpace(entry))
	}
	for _, entry := range sections[SectionFreevars] {
		lilivm.AddSymbol(&unit.Freevars, strings.TrimSpace(entry))
	}
	for _, entry := range sections[SectionCellvars] {
		lilivm.AddSymbol(&unit.Cellvars, strings.TrimSpace(entry))
	}

	if entries := sections[SectionFlags]; len(entries) > 0 {
		if n, err := strconv.ParseUint(strings.TrimSpace(entries[0]), 0, 32); err == nil {
			unit.Flags = uint32(n)
		}
	}
	if entries := sections[SectionStackSize]; len(entries) > 0 {
		if n, err := strconv.ParseInt(strings.TrimSpace(entries[0]), 0, 64); err == nil {
			unit.StackSize = int(n)
		}
	}
}
