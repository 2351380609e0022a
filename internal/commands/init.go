package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/compliance"
	"github.com/NielsdaWheelz/codexspec/internal/config"
	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
	"github.com/NielsdaWheelz/codexspec/internal/git"
	"github.com/NielsdaWheelz/codexspec/internal/i18n"
	"github.com/NielsdaWheelz/codexspec/internal/scaffold"
	"github.com/NielsdaWheelz/codexspec/internal/ui"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	Name       string // project directory; "." means the current directory
	Here       bool
	AI         string
	Lang       string // empty: CODEXSPEC_LANG, then LANG, then English
	CommitLang string // empty: no language.commit key
	Force      bool
	NoGit      bool
	Debug      bool
}

// CompliancePrompt is asked when an existing CLAUDE.md lacks the compliance section.
const CompliancePrompt = "Add the Constitution Compliance section to the top of CLAUDE.md?"

// Init implements `codexspec init`.
//
// It creates the project layout, installs slash commands, document templates
// and helper scripts, then writes the constitution (only if missing),
// config.yml and CLAUDE.md (if missing, or always with Force). An existing
// CLAUDE.md without the compliance marker is patched only after confirmation.
// A failing `git init` is reported as a warning.
func Init(ctx context.Context, env *Env, opts InitOpts) error {
	here := opts.Here || opts.Name == "."
	var target string
	switch {
	case here:
		target = env.Cwd
	case opts.Name != "":
		target = opts.Name
		if !filepath.IsAbs(target) {
			target = filepath.Join(env.Cwd, target)
		}
	default:
		return errors.NewWithDetails(errors.ENoProjectName, "please provide a project name or use --here",
			map[string]string{"hint": "codexspec init my-project, or codexspec init --here"})
	}

	lang := opts.Lang
	if lang == "" {
		lang = i18n.FromEnv(env.Getenv)
	}
	lang = i18n.Normalize(lang)

	p := env.UI
	if opts.Debug {
		p.Debug("Target directory: " + target)
		p.Debug("AI assistant: " + aiOrDefault(opts.AI))
		p.Debug(fmt.Sprintf("Language: %s (normalized: %s)", opts.Lang, lang))
	}
	env.Logger.Debug("init", "target", target, "lang", lang, "force", opts.Force, "no_git", opts.NoGit)

	exists, err := fs.Exists(env.FS, target)
	if err != nil {
		return errors.Wrap(errors.EReadFailed, "failed to check "+target, err)
	}
	if exists && !fs.IsDir(env.FS, target) {
		return errors.New(errors.EDirExists, fmt.Sprintf("'%s' exists and is not a directory", target))
	}
	if exists && !here && !opts.Force {
		return errors.NewWithDetails(errors.EDirExists, fmt.Sprintf("directory '%s' already exists", target),
			map[string]string{"hint": "use --force to overwrite or choose a different name"})
	}
	if !exists {
		if err := env.FS.MkdirAll(target, 0o755); err != nil {
			return errors.Wrap(errors.EWriteFailed, "failed to create "+target, err)
		}
		p.Success("Created directory:", target)
	}

	if err := installProject(env, target); err != nil {
		return err
	}
	if err := writeConfig(env, target, lang, opts); err != nil {
		return err
	}
	if err := writeClaudeMD(env, target, opts.Force); err != nil {
		return err
	}
	if !opts.NoGit {
		initGit(ctx, env, target)
	}

	p.Blank()
	p.Panel("Success", successMessage(p, target, opts.Name))
	return nil
}

func installProject(env *Env, target string) error {
	p := env.UI
	if err := scaffold.CreateLayout(env.FS, target); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to create project directories", err)
	}

	docs, err := scaffold.InstallDocs(env.FS, target)
	if err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to copy document templates", err)
	}
	for _, rel := range docs.Written {
		p.Success("Copied template:", filepath.Base(rel))
	}

	cmds, err := scaffold.InstallCommands(env.FS, target)
	if err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to install slash commands", err)
	}
	for _, rel := range cmds.Written {
		name := strings.TrimSuffix(filepath.Base(rel), ".md")
		p.Success("Installed command:", "/"+name)
	}
	if commands, err := scaffold.Commands(); err == nil {
		for _, c := range commands {
			env.Logger.Debug("slash command", "name", "/"+c.Name, "description", c.Description)
		}
	}

	scripts, err := scaffold.InstallScripts(env.FS, target)
	if err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to install helper scripts", err)
	}
	for _, rel := range scripts.Written {
		p.Success("Installed script:", filepath.ToSlash(rel))
	}

	created, err := scaffold.WriteIfMissing(env.FS, filepath.Join(target, filepath.FromSlash(config.ConstitutionPath)),
		[]byte(scaffold.Constitution()), 0o644)
	if err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write constitution", err)
	}
	if created {
		p.Success("Created:", config.ConstitutionPath)
	}
	return nil
}

func writeConfig(env *Env, target, lang string, opts InitOpts) error {
	path := config.Path(target)
	exists, err := fs.Exists(env.FS, path)
	if err != nil {
		return errors.Wrap(errors.EReadFailed, "failed to check "+path, err)
	}
	if exists && !opts.Force {
		return nil
	}

	warnUnsupported(env.UI, opts.Lang, lang)
	content := config.Generate(lang, opts.AI, env.Now().Format("2006-01-02"))
	if opts.CommitLang != "" {
		commit := i18n.Normalize(opts.CommitLang)
		warnUnsupported(env.UI, opts.CommitLang, commit)
		content, _ = config.SetCommitLanguage(content, commit)
	}

	if err := fs.WriteFileAtomic(env.FS, path, []byte(content), 0o644); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write "+path, err)
	}
	env.UI.Success("Created:", fmt.Sprintf("%s/%s (language: %s)", config.DirName, config.FileName, i18n.Name(lang)))
	return nil
}

func writeClaudeMD(env *Env, target string, force bool) error {
	p := env.UI
	path := filepath.Join(target, scaffold.ClaudeMDFile)
	exists, err := fs.Exists(env.FS, path)
	if err != nil {
		return errors.Wrap(errors.EReadFailed, "failed to check "+path, err)
	}

	if !exists || force {
		if err := fs.WriteFileAtomic(env.FS, path, []byte(scaffold.ClaudeMD()), fs.ModeOr(env.FS, path, 0o644)); err != nil {
			return errors.Wrap(errors.EWriteFailed, "failed to write "+path, err)
		}
		p.Success("Created:", scaffold.ClaudeMDFile)
		return nil
	}

	has, err := compliance.HasMarker(env.FS, path)
	if err != nil {
		return errors.Wrap(errors.EReadFailed, "failed to read "+path, err)
	}
	if has {
		env.Logger.Debug("CLAUDE.md already references the constitution", "path", path)
		return nil
	}

	p.Warn("CLAUDE.md exists but has no Constitution Compliance section")
	ok, err := ui.Confirm(env.Stdin, env.Stdout, CompliancePrompt, false)
	if err != nil {
		return errors.Wrap(errors.EPromptFailed, "failed to read confirmation", err)
	}
	if !ok {
		p.Info("Skipped: CLAUDE.md left unchanged")
		return nil
	}
	if err := compliance.Prepend(env.FS, path); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to update "+path, err)
	}
	p.Success("Updated:", "CLAUDE.md (added Constitution Compliance section)")
	return nil
}

func initGit(ctx context.Context, env *Env, target string) {
	p := env.UI
	if !git.IsRepo(env.FS, target) {
		if err := git.Init(ctx, env.Runner, target); err != nil {
			env.Logger.Warn("git init failed", "dir", target, "err", err)
			p.Warn("Failed to initialize git repository")
			return
		}
		p.Success("Initialized:", "Git repository")
	}

	res, err := scaffold.EnsureGitignore(env.FS, filepath.Join(target, ".gitignore"), scaffold.GitignoreEntries)
	if err != nil {
		env.Logger.Warn("failed to update .gitignore", "err", err)
		p.Warn("Failed to update .gitignore")
		return
	}
	if res != scaffold.GitignoreUnchanged {
		p.Success("Updated:", ".gitignore")
	}
}

func successMessage(p *ui.Printer, target, name string) string {
	cd := "."
	if name != "" && name != "." {
		cd = name
	}
	lines := []string{
		"CodexSpec project initialized successfully!",
		"",
		"Project directory: " + p.Accent(target),
		"",
		"Next steps:",
		"1. Navigate to your project: " + p.Accent("cd "+cd),
		"2. Start Claude Code: " + p.Accent("claude"),
		"3. Use " + p.Accent("/codexspec.constitution") + " to establish project principles",
		"4. Use " + p.Accent("/codexspec.specify") + " to create your first specification",
	}
	return strings.Join(lines, "\n")
}

func aiOrDefault(ai string) string {
	if ai == "" {
		return config.DefaultAI
	}
	return ai
}

// warnUnsupported prints a warning when a user-supplied language is not in the
// built-in table. The language is still used.
func warnUnsupported(p *ui.Printer, raw, normalized string) {
	if raw == "" || i18n.IsSupported(normalized) {
		return
	}
	p.Warn(fmt.Sprintf("'%s' is not in the list of commonly supported languages.", raw))
	p.Info("It may still work if Claude supports it. Run " + p.Accent("codexspec config --list-langs") + " to see supported languages.")
}
