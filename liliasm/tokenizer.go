package liliasm

// The tokenizer is a hand-rolled character scanner, not regex-driven, so
// its cost stays predictable on long lines.

// Tokenize classifies every buffer line. The leading run of declaration
// sections and their indented field lines is the header region; everything
// from the first unindented non-declaration line on is instruction body.
func Tokenize(lines []string) []ParsedLine {
	parsed := make([]ParsedLine, 0, len(lines))

	i := 0
	inHeader := false
	for ; i < len(lines); i++ {
		line := lines[i]
		if name, rest, ok := matchSectionLine(line); ok {
			tokens := ParsedLine{
				{Kind: TokenSection, Text: name},
				{Kind: TokenOperator, Text: ":"},
			}
			if rest != "" {
				tokens = append(tokens, Token{Kind: TokenField, Text: rest})
			}
			parsed = append(parsed, tokens)
			inHeader = true
			continue
		}
		if inHeader && len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			parsed = append(parsed, ParsedLine{{Kind: TokenField, Text: line}})
			continue
		}
		break
	}

	for ; i < len(lines); i++ {
		parsed = append(parsed, scanBodyLine(lines[i]))
	}
	return parsed
}

// matchSectionLine recognises `UPPERNAME ':' optional-inline-value`.
func matchSectionLine(line string) (name, rest string, ok bool) {
	p := 0
	for p < len(line) && isUpperName(line[p]) {
		p++
	}
	if p == 0 || p >= len(line) || line[p] != ':' {
		return "", "", false
	}
	return line[:p], line[p+1:], true
}

func scanBodyLine(line string) ParsedLine {
	var tokens ParsedLine
	p := 0
	for p < len(line) {
		switch {
		case line[p] == '#':
			tokens = append(tokens, Token{Kind: TokenComment, Text: line[p:]})
			return tokens

		case isUpperName(line[p]):
			end := p
			for end < len(line) && isUpperName(line[end]) {
				end++
			}
			// a mnemonic must end the line or be followed by whitespace
			if end < len(line) && !isSpace(line[end]) {
				tokens = append(tokens, Token{Kind: TokenUnknown, Text: line[p:]})
				return tokens
			}
			ws := end
			for ws < len(line) && isSpace(line[ws]) {
				ws++
			}
			tokens = append(tokens, Token{Kind: TokenName, Text: line[p:ws]})
			p = ws

		case line[p] == '@':
			end := p + 1
			for end < len(line) && isSpace(line[end]) {
				end++
			}
			tokens = append(tokens, Token{Kind: TokenOperator, Text: line[p:end]})
			p = end
			if n := scanStringLiteral(line[p:]); n > 0 {
				tokens = append(tokens, Token{Kind: TokenConst, Text: line[p : p+n]})
				p += n
			} else {
				// raw run up to the comment marker
				end := p
				for end < len(line) && line[end] != '#' {
					end++
				}
				tokens = append(tokens, Token{Kind: TokenConst, Text: line[p:end]})
				p = end
			}

		case line[p] == '%':
			end := p + 1
			for end < len(line) && isSpace(line[end]) {
				end++
			}
			tokens = append(tokens, Token{Kind: TokenOperator, Text: line[p:end]})
			p = end
			if n := scanIntLiteral(line[p:]); n > 0 {
				tokens = append(tokens, Token{Kind: TokenConst, Text: line[p : p+n]})
				p += n
			}

		default:
			tokens = append(tokens, Token{Kind: TokenUnknown, Text: line[p:]})
			return tokens
		}
	}
	return tokens
}

// scanStringLiteral reports the length of a leading quoted-string-shaped
// run: optional r/b prefixes, then a quoted body with backslash escapes.
// Unterminated strings do not match.
func scanStringLiteral(s string) int {
	p := 0
	for p < len(s) && p < 2 && isStringPrefix(s[p]) {
		p++
	}
	if p >= len(s) || (s[p] != '\'' && s[p] != '"') {
		return 0
	}
	quote := s[p]
	p++
	for p < len(s) {
		switch s[p] {
		case '\\':
			p += 2
		case quote:
			return p + 1
		default:
			p++
		}
	}
	return 0
}

// scanIntLiteral reports the length of a leading integer-shaped run:
// decimal, or 0x/0o/0b prefixed, with optional underscores.
func scanIntLiteral(s string) int {
	p := 0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X' || s[1] == 'o' || s[1] == 'O' || s[1] == 'b' || s[1] == 'B') {
		p = 2
		for p < len(s) && (isHexDigit(s[p]) || s[p] == '_') {
			p++
		}
		if p == 2 {
			return 0
		}
		return p
	}
	if len(s) == 0 || !isDigit(s[0]) {
		return 0
	}
	for p < len(s) && (isDigit(s[p]) || s[p] == '_') {
		p++
	}
	return p
}

func isUpperName(c byte) bool {
	return c >= 'A' && c <= 'Z' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isStringPrefix(c byte) bool {
	switch c {
	case 'r', 'R', 'b', 'B':
		return true
	}
	return false
}
