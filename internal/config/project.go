// Package config reads, generates and edits the project config file
// (.codexspec/config.yml).
//
// Reads go through yaml.v3; writes never do. Edits are line-based (see
// SetOutputLanguage and SetCommitLanguage) so user formatting survives.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// Project layout names.
const (
	DirName          = ".codexspec"
	FileName         = "config.yml"
	ConstitutionPath = DirName + "/memory/constitution.md"
)

// ProjectConfig is the parsed view of config.yml.
type ProjectConfig struct {
	Version  string   `yaml:"version"`
	Language Language `yaml:"language"`
	Project  Project  `yaml:"project"`
}

// Language holds the language section.
type Language struct {
	Output    string `yaml:"output"`
	Commit    string `yaml:"commit,omitempty"`
	Templates string `yaml:"templates"`
}

// Project holds project metadata.
type Project struct {
	AI      string `yaml:"ai"`
	Created string `yaml:"created"`
}

// CommitLanguage returns language.commit, falling back to language.output.
func (c ProjectConfig) CommitLanguage() string {
	if c.Language.Commit != "" {
		return c.Language.Commit
	}
	return c.Language.Output
}

// Path returns the config file path for a project root.
func Path(root string) string {
	return filepath.Join(root, DirName, FileName)
}

// Load reads and parses the config file at path, returning the raw bytes
// alongside the parsed view. Returns E_NO_PROJECT if it does not exist and
// E_CONFIG_INVALID if it is not valid YAML; the raw bytes are still returned
// in the latter case.
func Load(fsys fs.FS, path string) (ProjectConfig, []byte, error) {
	data, err := read(fsys, path)
	if err != nil {
		return ProjectConfig{}, nil, err
	}
	cfg, err := Parse(data)
	return cfg, data, err
}

func read(fsys fs.FS, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithDetails(errors.ENoProject, "no CodexSpec project found: "+path+" does not exist",
				map[string]string{"hint": "run 'codexspec init' to create a new project"})
		}
		return nil, errors.Wrap(errors.EReadFailed, "failed to read "+path, err)
	}
	return data, nil
}

// Parse decodes config.yml content.
func Parse(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, errors.Wrap(errors.EConfigInvalid, "invalid config.yml: "+err.Error(), err)
	}
	return cfg, nil
}
