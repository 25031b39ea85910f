package editors

import (
	"strconv"
	"strings"

	"github.com/dzshn/lili-v0/lilivm"
)

// Status is the surface a renderer draws the status bar from.
type Status struct {
	Title          string
	StackSize      int
	Pools          []PoolListing
	WarningCount   int
	WarningMessage string
	WarnLine       int
}

type PoolListing struct {
	Name    string
	Entries []string
}

func (s *Session) Status() Status {
	status := Status{
		Title:     s.Title(),
		StackSize: s.Unit.StackSize,
		WarnLine:  s.WarnLine,
	}
	status.Pools = []PoolListing{
		{Name: "consts", Entries: reprAll(s.Unit.Constants)},
		{Name: "names", Entries: quoteAll(s.Unit.Names)},
		{Name: "varnames", Entries: quoteAll(s.Unit.Varnames)},
		{Name: "freevars", Entries: quoteAll(s.Unit.Freevars)},
		{Name: "cellvars", Entries: quoteAll(s.Unit.Cellvars)},
	}
	status.WarningCount = len(s.Warnings)
	if len(s.Warnings) > 0 {
		status.WarningMessage = s.Warnings[0].String()
	}
	return status
}

// PoolLine renders the pool listings in one line, like
// "stacksize=2, consts=(0.5, ), names=(), ...".
func (st Status) PoolLine() string {
	var b strings.Builder
	b.WriteString("stacksize=")
	b.WriteString(strconv.Itoa(st.StackSize))
	for _, pool := range st.Pools {
		b.WriteString(", ")
		b.WriteString(pool.Name)
		b.WriteString("=(")
		for _, entry := range pool.Entries {
			b.WriteString(entry)
			b.WriteString(", ")
		}
		b.WriteString(")")
	}
	return b.String()
}

func reprAll(values []lilivm.Value) []string {
	var ret []string
	for _, v := range values {
		ret = append(ret, v.Repr())
	}
	return ret
}

func quoteAll(names []string) []string {
	var ret []string
	for _, name := range names {
		ret = append(ret, "'"+name+"'")
	}
	return ret
}
