package editors

import "testing"

func TestInsertRuneCapitalize(t *testing.T) {
	b := NewBuffer(nil)
	for _, r := range "load_fast" {
		b.InsertRune(r)
	}
	if b.Lines[0] != "LOAD_FAST" {
		t.Fatalf("got %q", b.Lines[0])
	}
	b.InsertRune(' ')
	for _, r := range "@spam" {
		b.InsertRune(r)
	}
	if b.Lines[0] != "LOAD_FAST @spam" {
		t.Fatalf("got %q", b.Lines[0])
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	b := NewBuffer([]string{"FOO", "BAR"})
	b.Row = 1
	b.Col = 0
	b.Backspace()
	if len(b.Lines) != 1 {
		t.Fatal()
	}
	if b.Lines[0] != "FOOBAR" {
		t.Fatalf("got %q", b.Lines[0])
	}
	if b.Row != 0 || b.Col != 3 {
		t.Fatalf("got %d %d", b.Row, b.Col)
	}
}

func TestNewline(t *testing.T) {
	b := NewBuffer([]string{"FOO"})
	b.Col = 3
	b.Newline()
	if len(b.Lines) != 2 {
		t.Fatal()
	}
	if b.Lines[1] != "" {
		t.Fatalf("got %q", b.Lines[1])
	}
	if b.Row != 1 || b.Col != 0 {
		t.Fatalf("got %d %d", b.Row, b.Col)
	}
}

func TestDeleteLastLineRefused(t *testing.T) {
	b := NewBuffer([]string{"FOO"})
	if b.DeleteLine(0) {
		t.Fatal()
	}
	if len(b.Lines) != 1 {
		t.Fatal()
	}
}

func TestCursorClamp(t *testing.T) {
	b := NewBuffer([]string{"FOO", "A"})
	b.Col = 3
	b.MoveDown()
	if b.Col != 1 {
		t.Fatalf("got %d", b.Col)
	}
	b.MoveRight()
	if b.Row != 1 || b.Col != 1 {
		t.Fatalf("got %d %d", b.Row, b.Col)
	}
}
