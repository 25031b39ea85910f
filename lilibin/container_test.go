package lilibin

import (
	"errors"
	"testing"

	"github.com/dzshn/lili-v0/lilivm"
)

func sampleUnit() *lilivm.CodeUnit {
	inner := lilivm.NewCodeUnit()
	inner.Instrs = append(inner.Instrs, lilivm.Instr{Op: 83})
	inner.StackSize = 1

	u := lilivm.NewCodeUnit()
	u.Instrs = append(u.Instrs,
		lilivm.Instr{Op: 100, Arg: 0},
		lilivm.Instr{Op: 83, Arg: 0},
	)
	u.Constants = append(u.Constants,
		lilivm.StringOf("hello"),
		lilivm.CodeOf(inner),
	)
	u.Names = append(u.Names, "print")
	u.Flags = 0b01
	u.StackSize = 2
	return u
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	u := sampleUnit()
	data, err := Encode(u, 0b01)
	if err != nil {
		t.Fatal(err)
	}
	got, h, err := Load(data, false)
	if err != nil {
		t.Fatal(err)
	}
	if !h.MagicOK() || h.Flags != 0b01 {
		t.Fatalf("got header %+v", h)
	}
	if len(got.Instrs) != 2 || got.StackSize != 2 {
		t.Fatalf("got %+v", got)
	}
	if got.Constants[1].Kind != lilivm.KindCode {
		t.Fatalf("got %+v", got.Constants)
	}
	if got.Constants[1].Code.StackSize != 1 {
		t.Fatal("nested unit lost")
	}
}

func TestTruncatedHeader(t *testing.T) {
	_, err := ReadHeader(make([]byte, 15), false)
	if !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("got %v", err)
	}
	// forcing does not excuse truncation
	_, err = ReadHeader(nil, true)
	if !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("got %v", err)
	}
}

func TestMagicMismatch(t *testing.T) {
	u := sampleUnit()
	data, err := Encode(u, 0)
	if err != nil {
		t.Fatal(err)
	}
	data[0] ^= 0xff

	_, _, err = Load(data, false)
	if !errors.Is(err, ErrMagicMismatch) {
		t.Fatalf("got %v", err)
	}

	got, h, err := Load(data, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.MagicOK() {
		t.Fatal("mismatch must stay observable")
	}
	if len(got.Instrs) != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestUnsupportedFlags(t *testing.T) {
	u := sampleUnit()
	data, err := Encode(u, 0)
	if err != nil {
		t.Fatal(err)
	}
	data[4] = 0b100

	_, _, err = Load(data, false)
	if !errors.Is(err, ErrUnsupportedFlags) {
		t.Fatalf("got %v", err)
	}

	_, h, err := Load(data, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.FlagsOK() {
		t.Fatal()
	}
	if h.Flags != 0b100 {
		t.Fatalf("got %#x", h.Flags)
	}
}

func TestGarbagePayload(t *testing.T) {
	data := make([]byte, HeaderSize+4)
	copy(data[:4], lilivm.Magic[:])
	_, _, err := Load(data, false)
	if err == nil {
		t.Fatal("expected decode error")
	}
}
