package handlers

import (
	"fmt"

	"peersupport/command"
)

// HandleHelp prints the command list.
func HandleHelp() {
	for _, def := range command.AllCommands {
		fmt.Printf("  %-45s %s\n", def.Usage, def.Description)
	}
}
