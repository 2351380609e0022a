// Package commands implements the codexspec CLI commands.
//
// Every command receives an *Env built for the single invocation; nothing in
// this package holds process-wide state.
package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/NielsdaWheelz/codexspec/internal/exec"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
	"github.com/NielsdaWheelz/codexspec/internal/logging"
	"github.com/NielsdaWheelz/codexspec/internal/ui"
)

// Env is the per-invocation command context.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	FS     fs.FS
	Runner exec.CommandRunner
	Cwd    string
	Now    func() time.Time
	Getenv func(string) string

	Logger *slog.Logger
	UI     *ui.Printer
}

// NewEnv returns an Env backed by the real filesystem, os/exec and the process
// environment. Status output goes to stdout, logs to stderr.
func NewEnv(stdin io.Reader, stdout, stderr io.Writer, debug bool) (*Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Env{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		FS:     fs.NewRealFS(),
		Runner: exec.NewRealRunner(),
		Cwd:    cwd,
		Now:    time.Now,
		Getenv: os.Getenv,
		Logger: logging.FromEnv(os.Getenv, debug, stderr),
		UI:     ui.NewPrinter(stdout, os.Getenv),
	}, nil
}
