package scaffold

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a slash command template.
type Frontmatter struct {
	Description  string    `yaml:"description"`
	AllowedTools string    `yaml:"allowed-tools,omitempty"`
	Handoffs     []Handoff `yaml:"handoffs,omitempty"`
}

// Handoff names the agent and step a command hands off to.
type Handoff struct {
	Agent string `yaml:"agent"`
	Step  string `yaml:"step"`
}

const delimiter = "---"

// ParseFrontmatter splits content into its YAML header and markdown body.
// Content without a leading "---" line has an empty header and is all body.
func ParseFrontmatter(content string) (Frontmatter, string, error) {
	var fm Frontmatter
	if !strings.HasPrefix(content, delimiter+"\n") && !strings.HasPrefix(content, delimiter+"\r\n") {
		return fm, content, nil
	}

	start := len(delimiter)
	if content[start] == '\r' {
		start++
	}
	start++

	closeIdx := strings.Index(content[start:], "\n"+delimiter)
	if closeIdx == -1 {
		return fm, content, fmt.Errorf("no closing frontmatter delimiter")
	}
	header := content[start : start+closeIdx]

	bodyStart := start + closeIdx + 1 + len(delimiter)
	for bodyStart < len(content) && (content[bodyStart] == '\n' || content[bodyStart] == '\r') {
		bodyStart++
	}

	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return Frontmatter{}, content, fmt.Errorf("parse YAML frontmatter: %w", err)
	}
	return fm, content[bodyStart:], nil
}
