package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.commands, 0)
}

func printCommands(commands map[string]*Command, level int) {
	names := slices.Sorted(maps.Keys(commands))
	printed := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true
		display := name
		if len(command.Aliases) > 0 {
			display += " | " + strings.Join(command.Aliases, " | ")
		}
		fmt.Fprintf(os.Stdout, "%s%s", strings.Repeat("  ", level), display)
		if command.Description != "" {
			fmt.Fprintf(os.Stdout, "\t%s", command.Description)
		}
		fmt.Fprintln(os.Stdout)
		if len(command.Subs) > 0 {
			printCommands(command.Subs, level+1)
		}
	}
}
