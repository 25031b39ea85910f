package lilivm

// Instr is one assembled instruction. Operands are always a single byte;
// wider arguments are out of range for this tool by design.
type Instr struct {
	Op  Opcode
	Arg uint8
}

// CodeUnit is the structured result of one assembly pass: the instruction
// stream plus its pools. It is fully cleared and rebuilt on every pass.
type CodeUnit struct {
	Instrs    []Instr
	Constants []Value
	Names     []string
	Varnames  []string
	Freevars  []string
	Cellvars  []string
	Flags     uint32
	StackSize int
}

func NewCodeUnit() *CodeUnit {
	return &CodeUnit{}
}

func (u *CodeUnit) Clear() {
	u.Instrs = u.Instrs[:0]
	u.Constants = u.Constants[:0]
	u.Names = u.Names[:0]
	u.Varnames = u.Varnames[:0]
	u.Freevars = u.Freevars[:0]
	u.Cellvars = u.Cellvars[:0]
	u.Flags = 0
	u.StackSize = 0
}

// ConstIndex finds v in the constant pool under the kind+hash rule, or -1.
func (u *CodeUnit) ConstIndex(v Value) int {
	for i, c := range u.Constants {
		if c.Equal(v) {
			return i
		}
	}
	return -1
}

// AddConst returns the index of v, appending it if no equal entry exists.
func (u *CodeUnit) AddConst(v Value) int {
	if i := u.ConstIndex(v); i >= 0 {
		return i
	}
	u.Constants = append(u.Constants, v)
	return len(u.Constants) - 1
}

// SymbolPool selects the pool an opcode's symbol operand indexes into.
func (u *CodeUnit) SymbolPool(op Opcode) *[]string {
	switch op.Class() {
	case ClassName:
		return &u.Names
	case ClassLocal:
		return &u.Varnames
	case ClassFree:
		return &u.Freevars
	}
	return nil
}

// AddSymbol looks a name up by exact text, auto-registering it when unseen.
func AddSymbol(pool *[]string, name string) int {
	for i, s := range *pool {
		if s == name {
			return i
		}
	}
	*pool = append(*pool, name)
	return len(*pool) - 1
}

// Bytes flattens the instruction stream into the raw (opcode, operand)
// byte sequence handed to validators and written into containers.
func (u *CodeUnit) Bytes() []byte {
	out := make([]byte, 0, len(u.Instrs)*2)
	for _, ins := range u.Instrs {
		out = append(out, byte(ins.Op), ins.Arg)
	}
	return out
}
