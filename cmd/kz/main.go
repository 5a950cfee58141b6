package main

import (
	"os"

	"github.com/kanbanzone/kz/cmd/kz/commands"
	"github.com/kanbanzone/kz/internal/printer"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	if err := commands.Execute(); err != nil {
		// Errors from inside commands have already written their JSON
		// document; anything else (flag parse errors, missing command)
		// is rendered here so every failure yields exactly one document.
		if !printer.Reported(err) {
			_ = printer.Fail(err)
		}
		os.Exit(1)
	}
}
