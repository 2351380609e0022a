// Package scaffold lays out a CodexSpec project: directories, slash commands,
// document templates, helper scripts, the default constitution and CLAUDE.md.
//
// All content is compiled into the binary from templates/.
package scaffold

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/NielsdaWheelz/codexspec/internal/compliance"
)

//go:embed templates
var templatesFS embed.FS

const (
	commandsGlob = "templates/commands/*.md"
	docsGlob     = "templates/docs/*.md"
	scriptsGlob  = "templates/scripts/**/*.sh"
)

// Template is one embedded file.
type Template struct {
	// Name is the file name without directory, e.g. "specify.md".
	Name string
	// RelPath is the path below templates/, e.g. "scripts/bash/common.sh".
	RelPath string
	Content string
}

// Stem returns Name without its extension.
func (t Template) Stem() string {
	return strings.TrimSuffix(t.Name, path.Ext(t.Name))
}

// CommandTemplates returns the slash command templates sorted by name.
func CommandTemplates() ([]Template, error) {
	return load(commandsGlob)
}

// DocTemplates returns the document templates sorted by name.
func DocTemplates() ([]Template, error) {
	return load(docsGlob)
}

// ScriptTemplates returns the helper scripts sorted by path.
func ScriptTemplates() ([]Template, error) {
	return load(scriptsGlob)
}

// Command describes an installable slash command.
type Command struct {
	Name        string // invocation name, e.g. "codexspec.specify"
	Description string
}

// Commands returns the slash commands with the descriptions from their frontmatter.
func Commands() ([]Command, error) {
	templates, err := CommandTemplates()
	if err != nil {
		return nil, err
	}
	out := make([]Command, 0, len(templates))
	for _, t := range templates {
		fm, _, err := ParseFrontmatter(t.Content)
		if err != nil {
			return nil, err
		}
		out = append(out, Command{Name: CommandPrefix + t.Stem(), Description: fm.Description})
	}
	return out, nil
}

// Constitution returns the default constitution.
func Constitution() string {
	return mustRead("templates/constitution.md")
}

// ClaudeMD returns the content of a fresh CLAUDE.md: the compliance section
// followed by the project guidelines.
func ClaudeMD() string {
	return compliance.Compose(mustRead("templates/claude.md"))
}

func load(pattern string) ([]Template, error) {
	matches, err := doublestar.Glob(templatesFS, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	out := make([]Template, 0, len(matches))
	for _, m := range matches {
		data, err := templatesFS.ReadFile(m)
		if err != nil {
			return nil, err
		}
		out = append(out, Template{
			Name:    path.Base(m),
			RelPath: strings.TrimPrefix(m, "templates/"),
			Content: string(data),
		})
	}
	return out, nil
}

// mustRead reads a file that is always embedded.
func mustRead(name string) string {
	data, err := templatesFS.ReadFile(name)
	if err != nil {
		panic("scaffold: missing embedded template " + name)
	}
	return string(data)
}
