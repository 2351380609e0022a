package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NielsdaWheelz/codexspec/internal/exec"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
	"github.com/NielsdaWheelz/codexspec/internal/logging"
	"github.com/NielsdaWheelz/codexspec/internal/ui"
)

// stubRunner is a CommandRunner that simulates git and PATH lookups.
type stubRunner struct {
	gitInitExit int
	paths       map[string]string // LookPath results
	versions    map[string]string // stdout of "<tool> --version"
	calls       []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	switch {
	case name == "git" && len(args) == 1 && args[0] == "init":
		if s.gitInitExit != 0 {
			return exec.CmdResult{ExitCode: s.gitInitExit, Stderr: "fatal: boom"}, nil
		}
		if err := os.MkdirAll(filepath.Join(opts.Dir, ".git"), 0o755); err != nil {
			return exec.CmdResult{}, err
		}
		return exec.CmdResult{Stdout: "Initialized empty Git repository\n"}, nil
	case len(args) == 1 && args[0] == "--version":
		if v, ok := s.versions[name]; ok {
			return exec.CmdResult{Stdout: v}, nil
		}
	}
	return exec.CmdResult{ExitCode: 127, Stderr: "command not found"}, nil
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if p, ok := s.paths[name]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (s *stubRunner) called(cmd string) bool {
	for _, c := range s.calls {
		if c == cmd {
			return true
		}
	}
	return false
}

type testEnv struct {
	*Env
	out    *bytes.Buffer
	runner *stubRunner
}

// newTestEnv returns an Env rooted at cwd with plain output and the given stdin.
func newTestEnv(t *testing.T, cwd, stdin string, vars map[string]string) testEnv {
	t.Helper()
	var out bytes.Buffer
	runner := &stubRunner{paths: map[string]string{}, versions: map[string]string{}}
	env := &Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &out,
		FS:     fs.NewRealFS(),
		Runner: runner,
		Cwd:    cwd,
		Now:    func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
		Getenv: func(k string) string { return vars[k] },
		Logger: logging.Discard(),
		UI:     ui.NewPlainPrinter(&out),
	}
	return testEnv{Env: env, out: &out, runner: runner}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
