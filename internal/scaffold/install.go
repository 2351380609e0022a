package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// Project layout below the project root.
const (
	CodexSpecDir  = ".codexspec"
	ClaudeDir     = ".claude"
	ClaudeMDFile  = "CLAUDE.md"
	CommandPrefix = "codexspec."
)

// Layout returns the directories init creates under root, parents first.
func Layout(root string) []string {
	cs := filepath.Join(root, CodexSpecDir)
	return []string{
		cs,
		filepath.Join(cs, "memory"),
		filepath.Join(cs, "specs"),
		filepath.Join(cs, "templates"),
		filepath.Join(cs, "templates", "docs"),
		filepath.Join(cs, "scripts"),
		filepath.Join(cs, "scripts", "bash"),
		filepath.Join(root, ClaudeDir, "commands"),
	}
}

// CreateLayout creates every Layout directory. Existing directories are fine.
func CreateLayout(fsys fs.FS, root string) error {
	for _, dir := range Layout(root) {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// CommandsDir returns the slash command directory for root.
func CommandsDir(root string) string {
	return filepath.Join(root, ClaudeDir, "commands")
}

// CommandFileName returns the installed file name of a command template,
// e.g. "specify.md" becomes "codexspec.specify.md" (invoked as /codexspec.specify).
func CommandFileName(t Template) string {
	return CommandPrefix + t.Name
}

// InstallResult lists relative paths touched by an install step.
type InstallResult struct {
	Written []string
	Skipped []string
}

// InstallCommands writes every slash command into .claude/commands,
// replacing earlier copies. The commands are owned by codexspec.
// A template whose frontmatter does not parse is an error.
func InstallCommands(fsys fs.FS, root string) (InstallResult, error) {
	templates, err := CommandTemplates()
	if err != nil {
		return InstallResult{}, err
	}
	dir := CommandsDir(root)
	var res InstallResult
	for _, t := range templates {
		if _, _, err := ParseFrontmatter(t.Content); err != nil {
			return res, fmt.Errorf("command %s: %w", t.Stem(), err)
		}
		if err := fsys.WriteFile(filepath.Join(dir, CommandFileName(t)), []byte(t.Content), 0o644); err != nil {
			return res, err
		}
		res.Written = append(res.Written, filepath.Join(ClaudeDir, "commands", CommandFileName(t)))
	}
	return res, nil
}

// InstallDocs copies the document templates into .codexspec/templates/docs,
// replacing earlier copies.
func InstallDocs(fsys fs.FS, root string) (InstallResult, error) {
	templates, err := DocTemplates()
	if err != nil {
		return InstallResult{}, err
	}
	dir := filepath.Join(root, CodexSpecDir, "templates", "docs")
	var res InstallResult
	for _, t := range templates {
		if err := fsys.WriteFile(filepath.Join(dir, t.Name), []byte(t.Content), 0o644); err != nil {
			return res, err
		}
		res.Written = append(res.Written, filepath.Join(CodexSpecDir, "templates", "docs", t.Name))
	}
	return res, nil
}

// InstallScripts writes the helper scripts under .codexspec/scripts.
// Existing scripts are never overwritten since users are expected to edit them.
// Created scripts are made executable.
func InstallScripts(fsys fs.FS, root string) (InstallResult, error) {
	templates, err := ScriptTemplates()
	if err != nil {
		return InstallResult{}, err
	}
	var res InstallResult
	for _, t := range templates {
		rel := filepath.Join(CodexSpecDir, filepath.FromSlash(t.RelPath))
		abs := filepath.Join(root, rel)

		if err := fsys.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return res, err
		}
		created, err := WriteIfMissing(fsys, abs, []byte(t.Content), 0o644)
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped = append(res.Skipped, rel)
			continue
		}
		if err := fsys.Chmod(abs, 0o755); err != nil {
			return res, err
		}
		res.Written = append(res.Written, rel)
	}
	return res, nil
}

// WriteIfMissing writes data to path only if nothing exists there yet.
// Reports whether the file was created.
func WriteIfMissing(fsys fs.FS, path string, data []byte, perm os.FileMode) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := fsys.WriteFile(path, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
