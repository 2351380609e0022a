// Command codexspec scaffolds Spec-Driven Development projects for Claude Code.
package main

import (
	"os"

	"github.com/NielsdaWheelz/codexspec/internal/cli"
	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/ui"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err, ui.NewPrinter(os.Stderr, os.Getenv).ErrorStyle())
		os.Exit(errors.ExitCode(err))
	}
}
