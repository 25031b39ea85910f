package liliasm

import (
	"strconv"
	"strings"

	"github.com/dzshn/lili-v0/lilivm"
)

// ResolveOperand maps a body line's operand tokens to a numeric operand for
// op, growing the unit's pools as needed. Range checking is the caller's
// business; a false return means the line resolves to nothing this pass.
//
// Resolution order: no tokens is a bare instruction; `%` takes a plain
// integer used directly; `@` goes through the constant pool, a symbol pool,
// or plain evaluation depending on the opcode's operand class.
func ResolveOperand(op lilivm.Opcode, tokens ParsedLine, unit *lilivm.CodeUnit) (int, bool) {
	if len(tokens) < 3 || tokens[2].Kind != TokenConst {
		return 0, true
	}
	marker := tokens[1].Text
	text := tokens[2].Text

	if strings.HasPrefix(marker, "%") {
		n, err := strconv.ParseInt(strings.TrimSpace(text), 0, 64)
		if err != nil {
			return 0, false
		}
		return int(n), true
	}

	switch op.Class() {
	case lilivm.ClassConst:
		v, err := EvalLiteral(text)
		if err != nil {
			return 0, false
		}
		return unit.AddConst(v), true

	case lilivm.ClassName, lilivm.ClassLocal, lilivm.ClassFree:
		pool := unit.SymbolPool(op)
		name := strings.TrimSpace(text)
		return lilivm.AddSymbol(pool, name), true

	default:
		v, err := EvalLiteral(text)
		if err != nil || v.Kind != lilivm.KindInt {
			return 0, false
		}
		return int(v.Int), true
	}
}
