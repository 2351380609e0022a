package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/codexspec/internal/compliance"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

var expectedCommands = []string{
	"analyze", "checklist", "clarify", "constitution", "generate-spec",
	"implement-tasks", "plan-to-tasks", "pr", "review-plan", "review-spec",
	"review-tasks", "spec-to-plan", "specify", "tasks-to-issues",
}

func TestCommandTemplates(t *testing.T) {
	templates, err := CommandTemplates()
	require.NoError(t, err)

	var stems []string
	for _, tpl := range templates {
		stems = append(stems, tpl.Stem())
		assert.Equal(t, "commands/"+tpl.Name, tpl.RelPath)

		fm, body, err := ParseFrontmatter(tpl.Content)
		require.NoError(t, err, tpl.Name)
		assert.NotEmpty(t, fm.Description, tpl.Name)
		assert.Contains(t, body, "$ARGUMENTS", tpl.Name)
	}
	assert.Equal(t, expectedCommands, stems)
}

func TestCommands(t *testing.T) {
	cmds, err := Commands()
	require.NoError(t, err)
	require.Len(t, cmds, len(expectedCommands))
	for i, c := range cmds {
		assert.Equal(t, "codexspec."+expectedCommands[i], c.Name)
		assert.NotEmpty(t, c.Description, c.Name)
	}
}

func TestPRTemplate(t *testing.T) {
	templates, err := CommandTemplates()
	require.NoError(t, err)

	var pr Template
	for _, tpl := range templates {
		if tpl.Stem() == "pr" {
			pr = tpl
		}
	}
	require.NotEmpty(t, pr.Content)
	require.True(t, strings.HasPrefix(pr.Content, "---"))

	fm, body, err := ParseFrontmatter(pr.Content)
	require.NoError(t, err)
	for _, cmd := range []string{"git branch", "git diff", "git log", "git remote"} {
		assert.Contains(t, fm.AllowedTools, cmd)
	}

	for _, section := range []string{
		"## Language Preference",
		"## Git Context Collection",
		"## Platform Detection",
		"## Parameters",
		"## Spec.md Integration",
		"## PR Title Generation",
		"## Test File Discovery",
		"## Project Command Detection",
		"## Section Generation",
		"## Output Format",
		"## Edge Cases",
	} {
		assert.Contains(t, body, section)
	}
	for _, s := range []string{"--target-branch", "origin/main", "--output", "--sections", "--spec", "Opt-in",
		"github.com", "Pull Request", "gitlab.com", "Merge Request", "No changes detected",
		"Not a git repository", "Detached HEAD"} {
		assert.Contains(t, body, s)
	}

	start := strings.Index(body, "## Language Preference")
	end := strings.Index(body[start+1:], "\n## ") + start + 1
	lang := body[start:end]
	assert.Less(t, strings.Index(lang, "language.commit"), strings.Index(lang, "language.output"))
}

func TestDocAndScriptTemplates(t *testing.T) {
	docs, err := DocTemplates()
	require.NoError(t, err)
	var names []string
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"checklist-template.md", "plan-template.md", "spec-template.md", "tasks-template.md"}, names)

	scripts, err := ScriptTemplates()
	require.NoError(t, err)
	var paths []string
	for _, s := range scripts {
		paths = append(paths, s.RelPath)
		assert.True(t, strings.HasPrefix(s.Content, "#!/usr/bin/env bash"), s.RelPath)
	}
	assert.Equal(t, []string{
		"scripts/bash/check-prerequisites.sh",
		"scripts/bash/common.sh",
		"scripts/bash/create-new-feature.sh",
	}, paths)
}

func TestClaudeMDAndConstitution(t *testing.T) {
	md := ClaudeMD()
	assert.True(t, compliance.ContainsGovernanceMarker(md))
	body, ok := compliance.Original(md)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(body, "# CLAUDE.md - CodexSpec Project Guidelines"))
	assert.Contains(t, body, "/codexspec.pr")

	assert.True(t, strings.HasPrefix(Constitution(), "# Project Constitution"))
}

func TestParseFrontmatter(t *testing.T) {
	t.Run("with handoffs", func(t *testing.T) {
		content := "---\ndescription: Do it\nhandoffs:\n  - agent: claude\n    step: First\n---\n\n# Body\n"
		fm, body, err := ParseFrontmatter(content)
		require.NoError(t, err)
		assert.Equal(t, "Do it", fm.Description)
		require.Len(t, fm.Handoffs, 1)
		assert.Equal(t, Handoff{Agent: "claude", Step: "First"}, fm.Handoffs[0])
		assert.Equal(t, "# Body\n", body)
	})

	t.Run("crlf", func(t *testing.T) {
		fm, body, err := ParseFrontmatter("---\r\ndescription: x\r\n---\r\nbody")
		require.NoError(t, err)
		assert.Equal(t, "x", fm.Description)
		assert.Equal(t, "body", body)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		fm, body, err := ParseFrontmatter("# Title\n")
		require.NoError(t, err)
		assert.Empty(t, fm.Description)
		assert.Equal(t, "# Title\n", body)
	})

	t.Run("unclosed", func(t *testing.T) {
		_, body, err := ParseFrontmatter("---\ndescription: x\n")
		require.Error(t, err)
		assert.Equal(t, "---\ndescription: x\n", body)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, _, err := ParseFrontmatter("---\ndescription: [\n---\nbody")
		require.Error(t, err)
	})
}

func TestLayoutAndInstall(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewRealFS()

	require.NoError(t, CreateLayout(fsys, root))
	for _, dir := range Layout(root) {
		assert.DirExists(t, dir)
	}

	cmds, err := InstallCommands(fsys, root)
	require.NoError(t, err)
	assert.Len(t, cmds.Written, len(expectedCommands))
	assert.FileExists(t, filepath.Join(root, ".claude", "commands", "codexspec.specify.md"))
	assert.FileExists(t, filepath.Join(root, ".claude", "commands", "codexspec.pr.md"))

	docs, err := InstallDocs(fsys, root)
	require.NoError(t, err)
	assert.Contains(t, docs.Written, filepath.Join(".codexspec", "templates", "docs", "spec-template.md"))
	assert.FileExists(t, filepath.Join(root, ".codexspec", "templates", "docs", "spec-template.md"))
}

func TestInstallScripts_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	fsys := fs.NewRealFS()
	require.NoError(t, CreateLayout(fsys, root))

	common := filepath.Join(root, ".codexspec", "scripts", "bash", "common.sh")
	require.NoError(t, os.WriteFile(common, []byte("# mine\n"), 0o644))

	res, err := InstallScripts(fsys, root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(".codexspec", "scripts", "bash", "common.sh")}, res.Skipped)
	assert.Len(t, res.Written, 2)

	data, err := os.ReadFile(common)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	info, err := os.Stat(filepath.Join(root, ".codexspec", "scripts", "bash", "check-prerequisites.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	again, err := InstallScripts(fsys, root)
	require.NoError(t, err)
	assert.Empty(t, again.Written)
	assert.Len(t, again.Skipped, 3)
}

func TestWriteIfMissing(t *testing.T) {
	fsys := fs.NewRealFS()
	path := filepath.Join(t.TempDir(), "constitution.md")

	created, err := WriteIfMissing(fsys, path, []byte("first"), 0o644)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = WriteIfMissing(fsys, path, []byte("second"), 0o644)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestEnsureGitignore(t *testing.T) {
	fsys := fs.NewRealFS()
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")

	res, err := EnsureGitignore(fsys, path, GitignoreEntries)
	require.NoError(t, err)
	assert.Equal(t, GitignoreCreated, res)
	data, _ := os.ReadFile(path)
	assert.Equal(t, ".codexspec-tmp-*\n", string(data))

	res, err = EnsureGitignore(fsys, path, GitignoreEntries)
	require.NoError(t, err)
	assert.Equal(t, GitignoreUnchanged, res)

	require.NoError(t, os.WriteFile(path, []byte("node_modules/"), 0o644))
	res, err = EnsureGitignore(fsys, path, GitignoreEntries)
	require.NoError(t, err)
	assert.Equal(t, GitignoreUpdated, res)
	data, _ = os.ReadFile(path)
	assert.Equal(t, "node_modules/\n.codexspec-tmp-*\n", string(data))
}
