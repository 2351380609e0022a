package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/config"
	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
	"github.com/NielsdaWheelz/codexspec/internal/i18n"
	"github.com/NielsdaWheelz/codexspec/internal/ui"
)

// ConfigOpts holds options for the config command.
type ConfigOpts struct {
	SetLang       string
	SetCommitLang string
	ListLangs     bool
	Render        bool // render the configuration as markdown
}

// Config implements `codexspec config`.
//
// With no options it shows .codexspec/config.yml of the current directory.
// SetLang and SetCommitLang edit language.output and language.commit in place,
// leaving the rest of the file untouched.
func Config(ctx context.Context, env *Env, opts ConfigOpts) error {
	p := env.UI
	if opts.ListLangs {
		rows := make([][]string, 0, len(i18n.Supported()))
		for _, l := range i18n.Supported() {
			rows = append(rows, []string{l.Code, l.Name, "Supported"})
		}
		p.Table("Supported Languages", []string{"Code", "Name", "Status"}, rows)
		return nil
	}

	path := config.Path(env.Cwd)
	exists, err := fs.Exists(env.FS, path)
	if err != nil {
		return errors.Wrap(errors.EReadFailed, "failed to check "+path, err)
	}
	if !exists {
		return errors.NewWithDetails(errors.ENoProject, "No CodexSpec project found in current directory.",
			map[string]string{"hint": "run 'codexspec init' to create a new project"})
	}

	if opts.SetLang != "" || opts.SetCommitLang != "" {
		if opts.SetLang != "" {
			if err := setLanguage(env, path, config.KeyOutput, opts.SetLang); err != nil {
				return err
			}
		}
		if opts.SetCommitLang != "" {
			if err := setLanguage(env, path, config.KeyCommit, opts.SetCommitLang); err != nil {
				return err
			}
		}
		return nil
	}

	cfg, data, perr := config.Load(env.FS, path)
	if perr != nil {
		if errors.GetCode(perr) != errors.EConfigInvalid {
			return perr
		}
		env.Logger.Warn("config.yml does not parse", "path", path, "err", perr)
	}

	if opts.Render {
		out, err := ui.RenderMarkdown(configMarkdown(path, string(data), cfg, perr == nil), ui.DefaultWrap, p.Color())
		if err != nil {
			return errors.Wrap(errors.EInternal, "failed to render configuration", err)
		}
		fmt.Fprint(env.Stdout, out)
		return nil
	}

	p.Panel("Configuration: "+path, string(data))
	if perr != nil {
		p.Warn("config.yml is not valid YAML: " + perr.Error())
		return nil
	}
	p.Table("", []string{"Setting", "Value"}, summaryRows(cfg))
	return nil
}

func setLanguage(env *Env, path string, key config.Key, raw string) error {
	normalized := i18n.Normalize(raw)
	warnUnsupported(env.UI, raw, normalized)

	if err := config.UpdateLanguageFile(env.FS, path, key, normalized); err != nil {
		return err
	}
	env.Logger.Debug("language updated", "key", string(key), "value", normalized)

	label := "Language set to:"
	if key == config.KeyCommit {
		label = "Commit language set to:"
	}
	env.UI.Success(label, fmt.Sprintf("%s (%s)", normalized, i18n.Name(normalized)))
	return nil
}

func summaryRows(cfg config.ProjectConfig) [][]string {
	commit := cfg.CommitLanguage()
	if cfg.Language.Commit == "" && commit != "" {
		commit += " (from output)"
	}
	return [][]string{
		{"Output language", languageLabel(cfg.Language.Output)},
		{"Commit language", commit},
		{"Template language", cfg.Language.Templates},
		{"AI assistant", cfg.Project.AI},
		{"Created", cfg.Project.Created},
	}
}

func languageLabel(code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s)", code, i18n.Name(code))
}

func configMarkdown(path, raw string, cfg config.ProjectConfig, parsed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Configuration\n\n`%s`\n\n", path)
	if parsed {
		b.WriteString("| Setting | Value |\n|---|---|\n")
		for _, row := range summaryRows(cfg) {
			fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "```yaml\n%s\n```\n", strings.TrimRight(raw, "\n"))
	return b.String()
}
