package liliasm

type TokenKind uint8

const (
	TokenUnknown TokenKind = iota
	TokenSection
	TokenField
	TokenName
	TokenOperator
	TokenConst
	TokenComment
)

type Token struct {
	Kind TokenKind
	Text string
}

// ParsedLine is the ordered token sequence of one buffer line. Lines with
// no tokens, or whose scan hit an unknown token, contribute nothing to
// assembly but stay untouched in the buffer.
type ParsedLine []Token
