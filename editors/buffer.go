package editors

// Buffer is the editable source text: ordered lines plus a cursor clamped
// to line bounds. The assembler reads it wholesale every pass and never
// mutates it.
type Buffer struct {
	Lines []string
	Row   int
	Col   int
}

func NewBuffer(lines []string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Buffer{
		Lines: lines,
	}
}

func (b *Buffer) clamp() {
	if b.Row < 0 {
		b.Row = 0
	}
	if b.Row > len(b.Lines)-1 {
		b.Row = len(b.Lines) - 1
	}
	if b.Col < 0 {
		b.Col = 0
	}
	if b.Col > len(b.Lines[b.Row]) {
		b.Col = len(b.Lines[b.Row])
	}
}

// InsertRune types one character at the cursor. Characters typed at the
// start of a line or inside a mnemonic run are upper-cased, so mnemonics
// can be typed in lower case.
func (b *Buffer) InsertRune(r rune) {
	b.clamp()
	line := b.Lines[b.Row]
	if b.Col == 0 || (b.Col-1 < len(line) && isMnemonicByte(line[b.Col-1])) {
		r = upperRune(r)
	}
	b.Lines[b.Row] = line[:b.Col] + string(r) + line[b.Col:]
	b.Col++
}

// Backspace deletes the character before the cursor, joining with the
// previous line at column zero.
func (b *Buffer) Backspace() {
	b.clamp()
	if b.Col > 0 {
		line := b.Lines[b.Row]
		b.Lines[b.Row] = line[:b.Col-1] + line[b.Col:]
		b.Col--
		return
	}
	if b.Row == 0 {
		return
	}
	b.Col = len(b.Lines[b.Row-1])
	b.Lines[b.Row-1] += b.Lines[b.Row]
	b.Lines = append(b.Lines[:b.Row], b.Lines[b.Row+1:]...)
	b.Row--
}

// Newline opens an empty line below the cursor and moves onto it.
func (b *Buffer) Newline() {
	b.clamp()
	b.Row++
	b.Col = 0
	b.Lines = append(b.Lines[:b.Row], append([]string{""}, b.Lines[b.Row:]...)...)
}

func (b *Buffer) SetLine(i int, text string) bool {
	if i < 0 || i >= len(b.Lines) {
		return false
	}
	b.Lines[i] = text
	b.clamp()
	return true
}

func (b *Buffer) InsertLine(i int, text string) bool {
	if i < 0 || i > len(b.Lines) {
		return false
	}
	b.Lines = append(b.Lines[:i], append([]string{text}, b.Lines[i:]...)...)
	b.clamp()
	return true
}

func (b *Buffer) DeleteLine(i int) bool {
	if i < 0 || i >= len(b.Lines) || len(b.Lines) == 1 {
		return false
	}
	b.Lines = append(b.Lines[:i], b.Lines[i+1:]...)
	b.clamp()
	return true
}

func (b *Buffer) MoveLeft() {
	b.clamp()
	if b.Col > 0 {
		b.Col--
	} else if b.Row > 0 {
		b.Row--
		b.Col = len(b.Lines[b.Row])
	}
}

func (b *Buffer) MoveRight() {
	b.clamp()
	if b.Col < len(b.Lines[b.Row]) {
		b.Col++
	} else if b.Row < len(b.Lines)-1 {
		b.Row++
		b.Col = 0
	}
}

func (b *Buffer) MoveUp() {
	b.clamp()
	if b.Row > 0 {
		b.Row--
		b.clamp()
	}
}

func (b *Buffer) MoveDown() {
	b.clamp()
	if b.Row < len(b.Lines)-1 {
		b.Row++
		b.clamp()
	}
}

func isMnemonicByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c == '_'
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
