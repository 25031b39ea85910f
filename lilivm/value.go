package lilivm

import (
	"hash/fnv"
	"math"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindComplex
	KindString
	KindBytes
	KindTuple
	KindList
	KindSet
	KindFrozenSet
	KindMap
	KindEllipsis
	KindStopIteration
	KindOpaque
	KindCode
)

// Value is one entry of a constant pool. The zero value is None.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Float   float64
	Complex complex128
	Str     string // string and bytes payload
	Items   []Value
	Pairs   []Pair
	Code    *CodeUnit
}

type Pair struct {
	Key   Value
	Value Value
}

func None() Value {
	return Value{Kind: KindNone}
}

func BoolOf(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func IntOf(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func FloatOf(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func ComplexOf(c complex128) Value {
	return Value{Kind: KindComplex, Complex: c}
}

func StringOf(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func BytesOf(b []byte) Value {
	return Value{Kind: KindBytes, Str: string(b)}
}

func TupleOf(items ...Value) Value {
	return Value{Kind: KindTuple, Items: items}
}

func ListOf(items ...Value) Value {
	return Value{Kind: KindList, Items: items}
}

// SetOf and FrozenSetOf keep first-seen order and drop duplicate elements.
func SetOf(items ...Value) Value {
	return Value{Kind: KindSet, Items: dedup(items)}
}

func FrozenSetOf(items ...Value) Value {
	return Value{Kind: KindFrozenSet, Items: dedup(items)}
}

func MapOf(pairs ...Pair) Value {
	return Value{Kind: KindMap, Pairs: pairs}
}

func EllipsisValue() Value {
	return Value{Kind: KindEllipsis}
}

func StopIterationValue() Value {
	return Value{Kind: KindStopIteration}
}

// Opaque is the placeholder for a constant that cannot be re-entered from
// text, e.g. one that was hex-dumped. Opaque values are unhashable, so two
// of them never merge in a pool.
func Opaque() Value {
	return Value{Kind: KindOpaque}
}

func CodeOf(u *CodeUnit) Value {
	return Value{Kind: KindCode, Code: u}
}

// Hashable reports whether the value participates in hash-based pool dedup.
// Mutable containers, code units and the opaque sentinel only ever compare
// by identity, which freshly parsed values never share.
func (v Value) Hashable() bool {
	switch v.Kind {
	case KindList, KindSet, KindMap, KindOpaque, KindCode:
		return false
	case KindTuple, KindFrozenSet:
		for _, item := range v.Items {
			if !item.Hashable() {
				return false
			}
		}
		return true
	}
	return true
}

// Equal implements the constant pool equality rule: exact kind match plus
// hash-grade equality. A bool and an int of the same numeric value are
// distinct; unhashable values are never equal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if !v.Hashable() || !o.Hashable() {
		return false
	}
	switch v.Kind {
	case KindNone, KindEllipsis, KindStopIteration:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindComplex:
		return v.Complex == o.Complex
	case KindString, KindBytes:
		return v.Str == o.Str
	case KindTuple:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindFrozenSet:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for _, item := range v.Items {
			if !containsValue(o.Items, item) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash is stable within one process and only defined for hashable values.
func (v Value) Hash() (uint64, bool) {
	if !v.Hashable() {
		return 0, false
	}
	h := fnv.New64a()
	h.Write([]byte{byte(v.Kind)})
	switch v.Kind {
	case KindBool:
		if v.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case KindInt:
		writeUint64(h, uint64(v.Int))
	case KindFloat:
		writeUint64(h, math.Float64bits(v.Float))
	case KindComplex:
		writeUint64(h, math.Float64bits(real(v.Complex)))
		writeUint64(h, math.Float64bits(imag(v.Complex)))
	case KindString, KindBytes:
		h.Write([]byte(v.Str))
	case KindTuple:
		for _, item := range v.Items {
			sub, _ := item.Hash()
			writeUint64(h, sub)
		}
	case KindFrozenSet:
		// order-independent
		var acc uint64
		for _, item := range v.Items {
			sub, _ := item.Hash()
			acc ^= sub
		}
		writeUint64(h, acc)
	}
	return h.Sum64(), true
}

func writeUint64(h interface{ Write([]byte) (int, error) }, u uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(u >> (8 * i))
	}
	h.Write(buf[:])
}

func containsValue(items []Value, v Value) bool {
	for _, item := range items {
		if item.Equal(v) {
			return true
		}
	}
	return false
}

func dedup(items []Value) []Value {
	var out []Value
	for _, item := range items {
		if !containsValue(out, item) {
			out = append(out, item)
		}
	}
	return out
}
