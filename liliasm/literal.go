package liliasm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dzshn/lili-v0/lilivm"
)

// ErrUnevaluable marks literal text the restricted grammar rejects. The
// owning instruction is dropped for the pass; nothing else happens.
var ErrUnevaluable = errors.New("unevaluable literal")

// EvalLiteral evaluates literal text into a value. The grammar is a closed
// subset: numbers (complex included, via a+bj), strings and bytes, booleans,
// None, the Ellipsis/StopIteration sentinels, tuple/list/set/frozenset/dict
// displays, unary +/-, and the set()/frozenset() constructors. It never
// resolves names or calls anything beyond those two constructors.
func EvalLiteral(src string) (lilivm.Value, error) {
	s := strings.TrimLeft(src, " \t")
	if strings.HasPrefix(s, "%") {
		// placeholder for a constant with no re-enterable representation
		return lilivm.Opaque(), nil
	}
	p := &literalParser{src: s}
	v, err := p.parseExprList()
	if err != nil {
		return lilivm.Value{}, err
	}
	p.skipSpace()
	if !p.eof() {
		return lilivm.Value{}, p.fail("trailing text %q", p.src[p.pos:])
	}
	return v, nil
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnevaluable, fmt.Sprintf(format, args...))
}

func (p *literalParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *literalParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *literalParser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// parseExprList handles the top-level and parenthesized positions where a
// bare comma sequence denotes a tuple.
func (p *literalParser) parseExprList() (lilivm.Value, error) {
	first, err := p.parseExpr()
	if err != nil {
		return lilivm.Value{}, err
	}
	p.skipSpace()
	if p.peek() != ',' {
		return first, nil
	}
	items := []lilivm.Value{first}
	for p.peek() == ',' {
		p.pos++
		p.skipSpace()
		if p.eof() || p.peek() == ')' {
			break
		}
		item, err := p.parseExpr()
		if err != nil {
			return lilivm.Value{}, err
		}
		items = append(items, item)
		p.skipSpace()
	}
	return lilivm.TupleOf(items...), nil
}

func (p *literalParser) parseExpr() (lilivm.Value, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return lilivm.Value{}, err
	}
	for {
		p.skipSpace()
		c := p.peek()
		if c != '+' && c != '-' {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return lilivm.Value{}, err
		}
		// the only binary form: a real combined with an imaginary part,
		// for writing complex numbers as a+bj
		var re float64
		switch lhs.Kind {
		case lilivm.KindInt:
			re = float64(lhs.Int)
		case lilivm.KindFloat:
			re = lhs.Float
		default:
			return lilivm.Value{}, p.fail("unsupported operands")
		}
		if rhs.Kind != lilivm.KindComplex {
			return lilivm.Value{}, p.fail("unsupported operands")
		}
		if c == '+' {
			lhs = lilivm.ComplexOf(complex(re, 0) + rhs.Complex)
		} else {
			lhs = lilivm.ComplexOf(complex(re, 0) - rhs.Complex)
		}
	}
}

func (p *literalParser) parseUnary() (lilivm.Value, error) {
	p.skipSpace()
	c := p.peek()
	if c != '+' && c != '-' {
		return p.parseAtom()
	}
	p.pos++
	v, err := p.parseUnary()
	if err != nil {
		return lilivm.Value{}, err
	}
	if c == '+' {
		switch v.Kind {
		case lilivm.KindInt, lilivm.KindFloat, lilivm.KindComplex, lilivm.KindBool:
			return v, nil
		}
		return lilivm.Value{}, p.fail("bad operand for unary +")
	}
	switch v.Kind {
	case lilivm.KindInt:
		return lilivm.IntOf(-v.Int), nil
	case lilivm.KindFloat:
		return lilivm.FloatOf(-v.Float), nil
	case lilivm.KindComplex:
		return lilivm.ComplexOf(-v.Complex), nil
	case lilivm.KindBool:
		if v.Bool {
			return lilivm.IntOf(-1), nil
		}
		return lilivm.IntOf(0), nil
	}
	return lilivm.Value{}, p.fail("bad operand for unary -")
}

func (p *literalParser) parseAtom() (lilivm.Value, error) {
	p.skipSpace()
	if p.eof() {
		return lilivm.Value{}, p.fail("unexpected end of literal")
	}
	c := p.peek()
	switch {
	case isDigit(c) || c == '.' && p.pos+1 < len(p.src) && isDigit(p.src[p.pos+1]):
		return p.parseNumber()
	case c == '\'' || c == '"' || p.hasStringPrefix():
		return p.parseString()
	case isIdentByte(c):
		return p.parseIdent()
	case c == '(':
		return p.parseParen()
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseBraces()
	}
	return lilivm.Value{}, p.fail("unexpected character %q", c)
}

func (p *literalParser) parseNumber() (lilivm.Value, error) {
	start := p.pos
	if n := scanIntLiteral(p.src[p.pos:]); n > 2 && p.src[p.pos] == '0' && !isDigit(p.src[p.pos+1]) && p.src[p.pos+1] != '_' && p.src[p.pos+1] != '.' {
		// 0x / 0o / 0b forms
		p.pos += n
		i, err := strconv.ParseInt(p.src[start:p.pos], 0, 64)
		if err != nil {
			return lilivm.Value{}, p.fail("bad integer %q", p.src[start:p.pos])
		}
		return lilivm.IntOf(i), nil
	}

	isFloat := false
	for !p.eof() && (isDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
		p.pos++
	}
	if !p.eof() && p.src[p.pos] == '.' {
		isFloat = true
		p.pos++
		for !p.eof() && (isDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
			p.pos++
		}
	}
	if !p.eof() && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if !p.eof() && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.eof() || !isDigit(p.src[p.pos]) {
			p.pos = mark
		} else {
			isFloat = true
			for !p.eof() && isDigit(p.src[p.pos]) {
				p.pos++
			}
		}
	}
	text := p.src[start:p.pos]
	if !p.eof() && (p.src[p.pos] == 'j' || p.src[p.pos] == 'J') {
		p.pos++
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lilivm.Value{}, p.fail("bad imaginary %q", text)
		}
		return lilivm.ComplexOf(complex(0, f)), nil
	}
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lilivm.Value{}, p.fail("bad float %q", text)
		}
		return lilivm.FloatOf(f), nil
	}
	i, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return lilivm.Value{}, p.fail("bad integer %q", text)
	}
	return lilivm.IntOf(i), nil
}

func (p *literalParser) hasStringPrefix() bool {
	n := 0
	for p.pos+n < len(p.src) && n < 2 && isStringPrefix(p.src[p.pos+n]) {
		n++
	}
	if n == 0 || p.pos+n >= len(p.src) {
		return false
	}
	c := p.src[p.pos+n]
	return c == '\'' || c == '"'
}

func (p *literalParser) parseString() (lilivm.Value, error) {
	raw, isBytes := false, false
	for !p.eof() && isStringPrefix(p.src[p.pos]) {
		switch p.src[p.pos] {
		case 'r', 'R':
			raw = true
		case 'b', 'B':
			isBytes = true
		}
		p.pos++
	}
	if p.eof() || p.src[p.pos] != '\'' && p.src[p.pos] != '"' {
		return lilivm.Value{}, p.fail("bad string prefix")
	}
	quote := p.src[p.pos]
	p.pos++
	var b strings.Builder
	for {
		if p.eof() {
			return lilivm.Value{}, p.fail("unterminated string")
		}
		c := p.src[p.pos]
		if c == quote {
			p.pos++
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			p.pos++
			continue
		}
		p.pos++
		if p.eof() {
			return lilivm.Value{}, p.fail("unterminated string")
		}
		esc := p.src[p.pos]
		p.pos++
		if raw {
			b.WriteByte('\\')
			b.WriteByte(esc)
			continue
		}
		switch esc {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(esc)
		case 'x':
			n, err := p.hexEscape(2)
			if err != nil {
				return lilivm.Value{}, err
			}
			b.WriteByte(byte(n))
		case 'u':
			n, err := p.hexEscape(4)
			if err != nil {
				return lilivm.Value{}, err
			}
			b.WriteRune(rune(n))
		case 'U':
			n, err := p.hexEscape(8)
			if err != nil {
				return lilivm.Value{}, err
			}
			b.WriteRune(rune(n))
		default:
			b.WriteByte('\\')
			b.WriteByte(esc)
		}
	}
	if isBytes {
		return lilivm.BytesOf([]byte(b.String())), nil
	}
	return lilivm.StringOf(b.String()), nil
}

// hexEscape consumes exactly n hex digits of a \x, \u or \U escape.
func (p *literalParser) hexEscape(n int) (uint64, error) {
	if p.pos+n > len(p.src) {
		return 0, p.fail("bad hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil {
		return 0, p.fail("bad hex escape")
	}
	p.pos += n
	return v, nil
}

func (p *literalParser) parseIdent() (lilivm.Value, error) {
	start := p.pos
	for !p.eof() && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	switch name := p.src[start:p.pos]; name {
	case "None":
		return lilivm.None(), nil
	case "True":
		return lilivm.BoolOf(true), nil
	case "False":
		return lilivm.BoolOf(false), nil
	case "Ellipsis":
		return lilivm.EllipsisValue(), nil
	case "StopIteration":
		return lilivm.StopIterationValue(), nil
	case "set", "frozenset":
		return p.parseSetCall(name)
	default:
		return lilivm.Value{}, p.fail("unknown name %q", name)
	}
}

func (p *literalParser) parseSetCall(name string) (lilivm.Value, error) {
	p.skipSpace()
	if p.peek() != '(' {
		return lilivm.Value{}, p.fail("%s is not a literal", name)
	}
	p.pos++
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		if name == "set" {
			return lilivm.SetOf(), nil
		}
		return lilivm.FrozenSetOf(), nil
	}
	if name == "set" {
		return lilivm.Value{}, p.fail("set() takes no literal arguments")
	}
	arg, err := p.parseExprList()
	if err != nil {
		return lilivm.Value{}, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return lilivm.Value{}, p.fail("expected )")
	}
	p.pos++
	switch arg.Kind {
	case lilivm.KindTuple, lilivm.KindList, lilivm.KindSet, lilivm.KindFrozenSet:
		return lilivm.FrozenSetOf(arg.Items...), nil
	}
	return lilivm.Value{}, p.fail("frozenset() argument is not a container")
}

func (p *literalParser) parseParen() (lilivm.Value, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return lilivm.TupleOf(), nil
	}
	v, err := p.parseExprList()
	if err != nil {
		return lilivm.Value{}, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return lilivm.Value{}, p.fail("expected )")
	}
	p.pos++
	return v, nil
}

func (p *literalParser) parseList() (lilivm.Value, error) {
	p.pos++
	var items []lilivm.Value
	p.skipSpace()
	for p.peek() != ']' {
		item, err := p.parseExpr()
		if err != nil {
			return lilivm.Value{}, err
		}
		items = append(items, item)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			p.skipSpace()
			continue
		}
		break
	}
	if p.peek() != ']' {
		return lilivm.Value{}, p.fail("expected ]")
	}
	p.pos++
	return lilivm.ListOf(items...), nil
}

func (p *literalParser) parseBraces() (lilivm.Value, error) {
	p.pos++
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return lilivm.MapOf(), nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return lilivm.Value{}, err
	}
	p.skipSpace()
	if p.peek() == ':' {
		return p.parseMapRest(first)
	}
	items := []lilivm.Value{first}
	for p.peek() == ',' {
		p.pos++
		p.skipSpace()
		if p.peek() == '}' {
			break
		}
		item, err := p.parseExpr()
		if err != nil {
			return lilivm.Value{}, err
		}
		items = append(items, item)
		p.skipSpace()
	}
	if p.peek() != '}' {
		return lilivm.Value{}, p.fail("expected }")
	}
	p.pos++
	return lilivm.SetOf(items...), nil
}

func (p *literalParser) parseMapRest(firstKey lilivm.Value) (lilivm.Value, error) {
	var pairs []lilivm.Pair
	key := firstKey
	for {
		if p.peek() != ':' {
			return lilivm.Value{}, p.fail("expected :")
		}
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return lilivm.Value{}, err
		}
		pairs = append(pairs, lilivm.Pair{Key: key, Value: value})
		p.skipSpace()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipSpace()
		if p.peek() == '}' {
			break
		}
		key, err = p.parseExpr()
		if err != nil {
			return lilivm.Value{}, err
		}
		p.skipSpace()
	}
	if p.peek() != '}' {
		return lilivm.Value{}, p.fail("expected }")
	}
	p.pos++
	return lilivm.MapOf(pairs...), nil
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || isDigit(c)
}
