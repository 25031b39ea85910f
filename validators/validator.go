package validators

import (
	"fmt"

	"github.com/dzshn/lili-v0/lilivm"
	"github.com/dzshn/lili-v0/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Warning flags a suspicious byte sequence in an assembled stream. Offset
// is the byte offset of the offending instruction; the editor maps it back
// to a source line for highlighting.
type Warning struct {
	Offset  int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%d] %s", w.Offset, w.Message)
}

// Validate classifies an assembled code unit and reports anything a VM
// might choke on. Warnings never block editing; they are advisory only.
// The policy is pluggable: provide another Validate in the scope to swap
// the rule set.
type Validate func(unit *lilivm.CodeUnit) []Warning

func (Module) Validate(
	logger logs.Logger,
) Validate {
	return func(unit *lilivm.CodeUnit) []Warning {
		warnings := checkUnit(unit)
		if len(warnings) > 0 {
			logger.Debug("unsafe bytecode",
				"count", len(warnings),
			)
		}
		return warnings
	}
}

// checkUnit is a shallow scan: jump targets inside the stream and pool
// references inside their pools. No stack-effect simulation.
func checkUnit(unit *lilivm.CodeUnit) []Warning {
	var warnings []Warning
	n := len(unit.Instrs)
	for i, ins := range unit.Instrs {
		offset := i * 2
		arg := int(ins.Arg)
		switch {
		case ins.Op.IsAbsJump():
			if arg >= n {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: jump target %d beyond stream end", ins.Op.Name(), arg),
				})
			}
		case ins.Op.IsJump():
			if i+1+arg > n {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: relative jump %d beyond stream end", ins.Op.Name(), arg),
				})
			}
		}
		switch ins.Op.Class() {
		case lilivm.ClassConst:
			if arg >= len(unit.Constants) {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: constant %d not in pool", ins.Op.Name(), arg),
				})
			}
		case lilivm.ClassName:
			if arg >= len(unit.Names) {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: name %d not in pool", ins.Op.Name(), arg),
				})
			}
		case lilivm.ClassLocal:
			if arg >= len(unit.Varnames) {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: local %d not in pool", ins.Op.Name(), arg),
				})
			}
		case lilivm.ClassFree:
			if arg >= len(unit.Freevars) {
				warnings = append(warnings, Warning{
					Offset:  offset,
					Message: fmt.Sprintf("%s: free variable %d not in pool", ins.Op.Name(), arg),
				})
			}
		}
	}
	return warnings
}
