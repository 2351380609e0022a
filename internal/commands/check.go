package commands

import (
	"context"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/exec"
)

// Tool is an external program reported by `codexspec check`.
type Tool struct {
	Command     string
	Description string
}

// Tools are the programs a CodexSpec workflow relies on.
var Tools = []Tool{
	{"git", "Git version control"},
	{"claude", "Claude Code CLI"},
	{"uv", "UV package manager"},
	{"python", "Python interpreter"},
}

// probeEnv keeps --version output unlocalized.
var probeEnv = map[string]string{"LC_ALL": "C"}

// ToolStatus is the result of probing one Tool.
type ToolStatus struct {
	Tool
	Found   bool
	Path    string
	Version string
}

// Check implements `codexspec check`. Missing tools are reported, never an error.
func Check(ctx context.Context, env *Env) error {
	rows := make([][]string, 0, len(Tools))
	for _, t := range Tools {
		st := probe(ctx, env.Runner, t)
		env.Logger.Debug("tool probe", "tool", t.Command, "found", st.Found, "path", st.Path)

		status := env.UI.Status("Not Found", false)
		if st.Found {
			status = env.UI.Status("Installed", true)
		}
		rows = append(rows, []string{t.Command + " (" + t.Description + ")", status, st.Version, st.Path})
	}
	env.UI.Table("Tool Check", []string{"Tool", "Status", "Version", "Path"}, rows)
	return nil
}

func probe(ctx context.Context, cr exec.CommandRunner, t Tool) ToolStatus {
	st := ToolStatus{Tool: t}
	path, err := cr.LookPath(t.Command)
	if err != nil {
		return st
	}
	st.Found = true
	st.Path = path

	res, err := cr.Run(ctx, t.Command, []string{"--version"}, exec.RunOpts{Env: probeEnv})
	if err != nil || res.ExitCode != 0 {
		return st
	}
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		out = strings.TrimSpace(res.Stderr)
	}
	st.Version, _, _ = strings.Cut(out, "\n")
	return st
}
