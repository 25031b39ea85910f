package liliasm

import "testing"

func TestTokenizeBody(t *testing.T) {
	parsed := Tokenize([]string{
		"LOAD_CONST @'hi' # greeting",
		"LOAD_FAST @n",
		"JUMP_ABSOLUTE %3",
		"RETURN_VALUE",
	})
	if len(parsed) != 4 {
		t.Fatalf("got %d lines", len(parsed))
	}

	line := parsed[0]
	// the whitespace after the quoted const is not a comment start, so the
	// scan halts there with an unknown tail, exactly like the raw run case
	// halts at '#'
	kinds := []TokenKind{TokenName, TokenOperator, TokenConst, TokenUnknown}
	if len(line) != len(kinds) {
		t.Fatalf("got %v", line)
	}
	for i, kind := range kinds {
		if line[i].Kind != kind {
			t.Fatalf("token %d: got %v", i, line[i])
		}
	}
	if line[2].Text != "'hi'" {
		t.Fatalf("got %q", line[2].Text)
	}

	if parsed[2][2].Text != "3" {
		t.Fatalf("got %q", parsed[2][2].Text)
	}
	if len(parsed[3]) != 1 || parsed[3][0].Kind != TokenName {
		t.Fatalf("got %v", parsed[3])
	}
}

func TestTokenizeHeader(t *testing.T) {
	parsed := Tokenize([]string{
		"CONSTS:",
		"    1",
		"    'x'",
		"FLAGS: 0b11",
		"",
		"RETURN_VALUE",
	})
	if parsed[0][0].Kind != TokenSection || parsed[0][0].Text != "CONSTS" {
		t.Fatalf("got %v", parsed[0])
	}
	if parsed[1][0].Kind != TokenField || parsed[2][0].Kind != TokenField {
		t.Fatal()
	}
	if len(parsed[3]) != 3 || parsed[3][2].Kind != TokenField {
		t.Fatalf("got %v", parsed[3])
	}
	if len(parsed[4]) != 0 {
		t.Fatalf("got %v", parsed[4])
	}
	if parsed[5][0].Kind != TokenName {
		t.Fatalf("got %v", parsed[5])
	}
}

func TestIndentedLineBeforeAnySectionIsBody(t *testing.T) {
	parsed := Tokenize([]string{"    RETURN_VALUE"})
	if len(parsed) != 1 {
		t.Fatal()
	}
	// leading whitespace is not a mnemonic; the scan halts as unknown
	if parsed[0][0].Kind != TokenUnknown {
		t.Fatalf("got %v", parsed[0])
	}
}

func TestUnknownHaltsLineScan(t *testing.T) {
	parsed := Tokenize([]string{"LOAD_CONST !? @1"})
	line := parsed[0]
	if len(line) != 2 {
		t.Fatalf("got %v", line)
	}
	if line[1].Kind != TokenUnknown || line[1].Text != "!? @1" {
		t.Fatalf("got %v", line[1])
	}
}

func TestMnemonicGluedToOperandIsUnknown(t *testing.T) {
	parsed := Tokenize([]string{"LOAD_CONST@1"})
	if parsed[0][0].Kind != TokenUnknown {
		t.Fatalf("got %v", parsed[0])
	}
}

func TestAtOperatorFallsBackToRawRun(t *testing.T) {
	parsed := Tokenize([]string{"LOAD_FAST @some_name # note"})
	line := parsed[0]
	if len(line) != 4 {
		t.Fatalf("got %v", line)
	}
	if line[2].Kind != TokenConst || line[2].Text != "some_name " {
		t.Fatalf("got %q", line[2].Text)
	}
}

func TestPercentWithoutIntHasNoConst(t *testing.T) {
	parsed := Tokenize([]string{"NOP %"})
	line := parsed[0]
	if len(line) != 2 || line[1].Kind != TokenOperator {
		t.Fatalf("got %v", line)
	}
}

func TestPercentLeadingUnderscoreHasNoConst(t *testing.T) {
	parsed := Tokenize([]string{"COMPARE_OP %_5"})
	line := parsed[0]
	if len(line) != 3 || line[1].Kind != TokenOperator || line[2].Kind != TokenUnknown {
		t.Fatalf("got %v", line)
	}
}

func TestScanStringLiteral(t *testing.T) {
	for _, c := range []struct {
		in   string
		want int
	}{
		{`'abc'`, 5},
		{`"a\"b" rest`, 6},
		{`b'xy'`, 5},
		{`rb"z"`, 5},
		{`'unterminated`, 0},
		{`plain`, 0},
	} {
		if got := scanStringLiteral(c.in); got != c.want {
			t.Fatalf("%q: got %d, want %d", c.in, got, c.want)
		}
	}
}
