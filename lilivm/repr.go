package lilivm

import (
	"fmt"
	"strconv"
	"strings"
)

// Repr renders a value in the literal syntax the assembler reads back.
// Nested code units have no literal form and render as an opaque blob
// reference handled by the disassembler.
func (v Value) Repr() string {
	switch v.Kind {
	case KindNone:
		return "None"
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	case KindComplex:
		return formatComplex(v.Complex)
	case KindString:
		return strconv.Quote(v.Str)
	case KindBytes:
		return "b" + strconv.Quote(v.Str)
	case KindTuple:
		if len(v.Items) == 1 {
			return "(" + v.Items[0].Repr() + ",)"
		}
		return "(" + joinReprs(v.Items) + ")"
	case KindList:
		return "[" + joinReprs(v.Items) + "]"
	case KindSet:
		if len(v.Items) == 0 {
			return "set()"
		}
		return "{" + joinReprs(v.Items) + "}"
	case KindFrozenSet:
		if len(v.Items) == 0 {
			return "frozenset()"
		}
		return "frozenset({" + joinReprs(v.Items) + "})"
	case KindMap:
		var b strings.Builder
		b.WriteByte('{')
		for i, pair := range v.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pair.Key.Repr())
			b.WriteString(": ")
			b.WriteString(pair.Value.Repr())
		}
		b.WriteByte('}')
		return b.String()
	case KindEllipsis:
		return "Ellipsis"
	case KindStopIteration:
		return "StopIteration"
	case KindOpaque:
		return "%opaque"
	case KindCode:
		return fmt.Sprintf("<code %p>", v.Code)
	}
	return "None"
}

func joinReprs(items []Value) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Repr()
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// keep a literal the evaluator recognises as a float
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}

func formatComplex(c complex128) string {
	im := formatFloat(imag(c)) + "j"
	if real(c) == 0 {
		return im
	}
	if imag(c) < 0 {
		return "(" + formatFloat(real(c)) + im + ")"
	}
	return "(" + formatFloat(real(c)) + "+" + im + ")"
}
