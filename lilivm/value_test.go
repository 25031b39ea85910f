package lilivm

import "testing"

func TestConstDedupIsKindSensitive(t *testing.T) {
	u := NewCodeUnit()
	i1 := u.AddConst(BoolOf(true))
	i2 := u.AddConst(IntOf(1))
	if i1 == i2 {
		t.Fatal("bool and int must not merge")
	}
	if len(u.Constants) != 2 {
		t.Fatalf("got %d entries", len(u.Constants))
	}
	if i := u.AddConst(IntOf(1)); i != i2 {
		t.Fatalf("got %d", i)
	}
	if len(u.Constants) != 2 {
		t.Fatalf("got %d entries", len(u.Constants))
	}
}

func TestUnhashableNeverMerges(t *testing.T) {
	u := NewCodeUnit()
	u.AddConst(ListOf(IntOf(1)))
	u.AddConst(ListOf(IntOf(1)))
	if len(u.Constants) != 2 {
		t.Fatalf("got %d entries", len(u.Constants))
	}
	u.AddConst(Opaque())
	u.AddConst(Opaque())
	if len(u.Constants) != 4 {
		t.Fatalf("got %d entries", len(u.Constants))
	}
}

func TestTupleEquality(t *testing.T) {
	a := TupleOf(IntOf(1), StringOf("x"))
	b := TupleOf(IntOf(1), StringOf("x"))
	if !a.Equal(b) {
		t.Fatal()
	}
	c := TupleOf(IntOf(1), StringOf("y"))
	if a.Equal(c) {
		t.Fatal()
	}
	// a tuple holding an unhashable element is itself unhashable
	d := TupleOf(ListOf())
	if d.Equal(TupleOf(ListOf())) {
		t.Fatal()
	}
}

func TestFrozenSetEqualityIgnoresOrder(t *testing.T) {
	a := FrozenSetOf(IntOf(1), IntOf(2))
	b := FrozenSetOf(IntOf(2), IntOf(1))
	if !a.Equal(b) {
		t.Fatal()
	}
	ha, ok := a.Hash()
	if !ok {
		t.Fatal()
	}
	hb, _ := b.Hash()
	if ha != hb {
		t.Fatal()
	}
}

func TestSymbolAutoRegistration(t *testing.T) {
	u := NewCodeUnit()
	pool := u.SymbolPool(opmap["LOAD_FAST"])
	if pool == nil {
		t.Fatal()
	}
	if i := AddSymbol(pool, "n"); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := AddSymbol(pool, "m"); i != 1 {
		t.Fatalf("got %d", i)
	}
	if i := AddSymbol(pool, "n"); i != 0 {
		t.Fatalf("got %d", i)
	}
	if len(u.Varnames) != 2 {
		t.Fatalf("got %v", u.Varnames)
	}
}

func TestRepr(t *testing.T) {
	for _, c := range []struct {
		value Value
		want  string
	}{
		{None(), "None"},
		{BoolOf(true), "True"},
		{IntOf(-3), "-3"},
		{FloatOf(0.5), "0.5"},
		{FloatOf(2), "2.0"},
		{ComplexOf(complex(1, 2)), "(1.0+2.0j)"},
		{ComplexOf(complex(0, 2)), "2.0j"},
		{StringOf("hi"), `"hi"`},
		{BytesOf([]byte{0x41}), `b"A"`},
		{TupleOf(IntOf(1)), "(1,)"},
		{TupleOf(IntOf(1), IntOf(2)), "(1, 2)"},
		{ListOf(), "[]"},
		{SetOf(), "set()"},
		{FrozenSetOf(IntOf(1)), "frozenset({1})"},
		{MapOf(Pair{Key: IntOf(1), Value: StringOf("a")}), `{1: "a"}`},
		{EllipsisValue(), "Ellipsis"},
		{StopIterationValue(), "StopIteration"},
		{Opaque(), "%opaque"},
	} {
		if got := c.value.Repr(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestOpcodeTables(t *testing.T) {
	op, ok := LookupOp("LOAD_CONST")
	if !ok || op != 100 {
		t.Fatalf("got %d %v", op, ok)
	}
	if op.Class() != ClassConst {
		t.Fatal()
	}
	if c := opmap["LOAD_FAST"].Class(); c != ClassLocal {
		t.Fatalf("got %d", c)
	}
	if c := opmap["LOAD_GLOBAL"].Class(); c != ClassName {
		t.Fatalf("got %d", c)
	}
	if c := opmap["LOAD_DEREF"].Class(); c != ClassFree {
		t.Fatalf("got %d", c)
	}
	if c := opmap["RETURN_VALUE"].Class(); c != ClassRaw {
		t.Fatalf("got %d", c)
	}
	if !opmap["JUMP_ABSOLUTE"].IsJump() || !opmap["JUMP_ABSOLUTE"].IsAbsJump() {
		t.Fatal()
	}
	if !opmap["JUMP_FORWARD"].IsJump() || opmap["JUMP_FORWARD"].IsAbsJump() {
		t.Fatal()
	}
	if _, ok := LookupOp("NOT_AN_OP"); ok {
		t.Fatal()
	}
}

func TestGobRoundTrip(t *testing.T) {
	inner := NewCodeUnit()
	inner.Instrs = append(inner.Instrs, Instr{Op: opmap["RETURN_VALUE"]})
	u := NewCodeUnit()
	u.Constants = append(u.Constants, IntOf(1), CodeOf(inner))
	u.Names = append(u.Names, "f")
	u.Flags = 0b11
	u.StackSize = 2

	data, err := u.EncodeGob()
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeGob(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Flags != 0b11 || got.StackSize != 2 {
		t.Fatalf("got %+v", got)
	}
	if len(got.Constants) != 2 || got.Constants[1].Kind != KindCode {
		t.Fatalf("got %+v", got.Constants)
	}
	if len(got.Constants[1].Code.Instrs) != 1 {
		t.Fatal()
	}
}
