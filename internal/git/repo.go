// Package git provides the git operations codexspec needs, via CommandRunner.
package git

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/exec"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// IsRepo reports whether dir has its own .git entry (directory or worktree file).
// A parent repository does not count.
func IsRepo(fsys fs.FS, dir string) bool {
	ok, err := fs.Exists(fsys, filepath.Join(dir, ".git"))
	return err == nil && ok
}

// Init runs `git init` in dir.
//
// Returns E_GIT_FAILED if git cannot be executed or exits non-zero; the
// message carries git's stderr.
func Init(ctx context.Context, cr exec.CommandRunner, dir string) error {
	result, err := cr.Run(ctx, "git", []string{"init"}, exec.RunOpts{Dir: dir})
	if err != nil {
		return errors.Wrap(errors.EGitFailed, "failed to run git init", err)
	}
	if result.ExitCode != 0 {
		msg := "git init failed"
		if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
			msg += ": " + stderr
		}
		return errors.NewWithDetails(errors.EGitFailed, msg, map[string]string{
			"exit_code": strconv.Itoa(result.ExitCode),
		})
	}
	return nil
}
