package liliasm

import "strings"

// Declared section names the assembler consumes. CELLVARS is accepted for
// display parity with loaded containers; FLAGS and STACKSIZE carry the
// informational header values emitted by the disassembler.
const (
	SectionConsts    = "CONSTS"
	SectionNames     = "NAMES"
	SectionVarnames  = "VARNAMES"
	SectionFreevars  = "FREEVARS"
	SectionCellvars  = "CELLVARS"
	SectionFlags     = "FLAGS"
	SectionStackSize = "STACKSIZE"
)

// ExtractSections consumes the leading declaration blocks of a parsed
// buffer. It returns each section's ordered raw field strings, left-trimmed,
// and the index of the first body line. An inline value ends its own
// section; field lines extend the most recent one.
func ExtractSections(parsed []ParsedLine) (map[string][]string, int) {
	sections := make(map[string][]string)
	i := 0
	for i < len(parsed) {
		tokens := parsed[i]
		if len(tokens) == 0 || tokens[0].Kind != TokenSection {
			break
		}
		name := tokens[0].Text
		entries := sections[name]
		i++
		if len(tokens) > 2 {
			sections[name] = append(entries, strings.TrimLeft(tokens[2].Text, " \t"))
			continue
		}
		for i < len(parsed) {
			tokens := parsed[i]
			if len(tokens) == 0 || tokens[0].Kind != TokenField {
				break
			}
			entries = append(entries, strings.TrimLeft(tokens[0].Text, " \t"))
			i++
		}
		sections[name] = entries
	}
	return sections, i
}
