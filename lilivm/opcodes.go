package lilivm

// The target instruction set is the CPython 3.10 opcode table. Both lookup
// directions are static tables built once at init from the definitions
// below; nothing is resolved dynamically during assembly.

type Opcode uint8

// HaveArgument splits the table: opcodes at or above always render an
// operand, below it the operand only shows when non-zero.
const HaveArgument = 90

type OperandClass uint8

const (
	ClassRaw OperandClass = iota
	ClassConst
	ClassName
	ClassLocal
	ClassFree
)

var opnames = map[Opcode]string{
	1:   "POP_TOP",
	2:   "ROT_TWO",
	3:   "ROT_THREE",
	4:   "DUP_TOP",
	5:   "DUP_TOP_TWO",
	6:   "ROT_FOUR",
	9:   "NOP",
	10:  "UNARY_POSITIVE",
	11:  "UNARY_NEGATIVE",
	12:  "UNARY_NOT",
	15:  "UNARY_INVERT",
	16:  "BINARY_MATRIX_MULTIPLY",
	17:  "INPLACE_MATRIX_MULTIPLY",
	19:  "BINARY_POWER",
	20:  "BINARY_MULTIPLY",
	22:  "BINARY_MODULO",
	23:  "BINARY_ADD",
	24:  "BINARY_SUBTRACT",
	25:  "BINARY_SUBSCR",
	26:  "BINARY_FLOOR_DIVIDE",
	27:  "BINARY_TRUE_DIVIDE",
	28:  "INPLACE_FLOOR_DIVIDE",
	29:  "INPLACE_TRUE_DIVIDE",
	30:  "GET_LEN",
	31:  "MATCH_MAPPING",
	32:  "MATCH_SEQUENCE",
	33:  "MATCH_KEYS",
	34:  "COPY_DICT_WITHOUT_KEYS",
	49:  "WITH_EXCEPT_START",
	50:  "GET_AITER",
	51:  "GET_ANEXT",
	52:  "BEFORE_ASYNC_WITH",
	54:  "END_ASYNC_FOR",
	55:  "INPLACE_ADD",
	56:  "INPLACE_SUBTRACT",
	57:  "INPLACE_MULTIPLY",
	59:  "INPLACE_MODULO",
	60:  "STORE_SUBSCR",
	61:  "DELETE_SUBSCR",
	62:  "BINARY_LSHIFT",
	63:  "BINARY_RSHIFT",
	64:  "BINARY_AND",
	65:  "BINARY_XOR",
	66:  "BINARY_OR",
	67:  "INPLACE_POWER",
	68:  "GET_ITER",
	69:  "GET_YIELD_FROM_ITER",
	70:  "PRINT_EXPR",
	71:  "LOAD_BUILD_CLASS",
	72:  "YIELD_FROM",
	73:  "GET_AWAITABLE",
	74:  "LOAD_ASSERTION_ERROR",
	75:  "INPLACE_LSHIFT",
	76:  "INPLACE_RSHIFT",
	77:  "INPLACE_AND",
	78:  "INPLACE_XOR",
	79:  "INPLACE_OR",
	82:  "LIST_TO_TUPLE",
	83:  "RETURN_VALUE",
	84:  "IMPORT_STAR",
	85:  "SETUP_ANNOTATIONS",
	86:  "YIELD_VALUE",
	87:  "POP_BLOCK",
	89:  "POP_EXCEPT",
	90:  "STORE_NAME",
	91:  "DELETE_NAME",
	92:  "UNPACK_SEQUENCE",
	93:  "FOR_ITER",
	94:  "UNPACK_EX",
	95:  "STORE_ATTR",
	96:  "DELETE_ATTR",
	97:  "STORE_GLOBAL",
	98:  "DELETE_GLOBAL",
	99:  "ROT_N",
	100: "LOAD_CONST",
	101: "LOAD_NAME",
	102: "BUILD_TUPLE",
	103: "BUILD_LIST",
	104: "BUILD_SET",
	105: "BUILD_MAP",
	106: "LOAD_ATTR",
	107: "COMPARE_OP",
	108: "IMPORT_NAME",
	109: "IMPORT_FROM",
	110: "JUMP_FORWARD",
	111: "JUMP_IF_FALSE_OR_POP",
	112: "JUMP_IF_TRUE_OR_POP",
	113: "JUMP_ABSOLUTE",
	114: "POP_JUMP_IF_FALSE",
	115: "POP_JUMP_IF_TRUE",
	116: "LOAD_GLOBAL",
	117: "IS_OP",
	118: "CONTAINS_OP",
	119: "RERAISE",
	121: "JUMP_IF_NOT_EXC_MATCH",
	122: "SETUP_FINALLY",
	124: "LOAD_FAST",
	125: "STORE_FAST",
	126: "DELETE_FAST",
	129: "GEN_START",
	130: "RAISE_VARARGS",
	131: "CALL_FUNCTION",
	132: "MAKE_FUNCTION",
	133: "BUILD_SLICE",
	135: "LOAD_CLOSURE",
	136: "LOAD_DEREF",
	137: "STORE_DEREF",
	138: "DELETE_DEREF",
	141: "CALL_FUNCTION_KW",
	142: "CALL_FUNCTION_EX",
	143: "SETUP_WITH",
	144: "EXTENDED_ARG",
	145: "LIST_APPEND",
	146: "SET_ADD",
	147: "MAP_ADD",
	148: "LOAD_CLASSDEREF",
	152: "MATCH_CLASS",
	154: "SETUP_ASYNC_WITH",
	155: "FORMAT_VALUE",
	156: "BUILD_CONST_KEY_MAP",
	157: "BUILD_STRING",
	160: "LOAD_METHOD",
	161: "CALL_METHOD",
	162: "LIST_EXTEND",
	163: "SET_UPDATE",
	164: "DICT_MERGE",
	165: "DICT_UPDATE",
}

var hasConst = opcodeSet(100)

var hasName = opcodeSet(
	90, 91, 95, 96, 97, 98, 101, 106, 108, 109, 116, 160,
)

var hasLocal = opcodeSet(124, 125, 126)

var hasFree = opcodeSet(135, 136, 137, 138, 148)

var hasJumpAbs = opcodeSet(111, 112, 113, 114, 115, 121)

var hasJumpRel = opcodeSet(93, 110, 122, 143, 154)

var opmap map[string]Opcode

func init() {
	opmap = make(map[string]Opcode, len(opnames))
	for op, name := range opnames {
		opmap[name] = op
	}
}

func opcodeSet(ops ...Opcode) map[Opcode]bool {
	set := make(map[Opcode]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

// LookupOp resolves a mnemonic to its opcode.
func LookupOp(name string) (Opcode, bool) {
	op, ok := opmap[name]
	return op, ok
}

func (o Opcode) Name() string {
	if name, ok := opnames[o]; ok {
		return name
	}
	return ""
}

func (o Opcode) Valid() bool {
	_, ok := opnames[o]
	return ok
}

// Class reports which pool, if any, the opcode's operand indexes into.
func (o Opcode) Class() OperandClass {
	switch {
	case hasConst[o]:
		return ClassConst
	case hasName[o]:
		return ClassName
	case hasLocal[o]:
		return ClassLocal
	case hasFree[o]:
		return ClassFree
	}
	return ClassRaw
}

// IsJump reports whether the operand denotes a branch target. Jump operands
// are authored as source line numbers and translated to byte offsets at
// display time only.
func (o Opcode) IsJump() bool {
	return hasJumpAbs[o] || hasJumpRel[o]
}

func (o Opcode) IsAbsJump() bool {
	return hasJumpAbs[o]
}
