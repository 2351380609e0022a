package config

import (
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/i18n"
)

// Template is the default config.yml. {{language}} and {{created}} are filled by Generate.
const Template = `# CodexSpec Configuration
# This file configures project-level settings for CodexSpec

version: "1.0"

# Language settings for internationalization (i18n)
language:
  # Output language - Claude will use this language for interactions
  # and generated documents. Supports any Claude-supported language.
  # Common values: en, zh-CN, zh-TW, ja, ko, es, fr, de, pt, ru
  output: "{{language}}"

  # Template language - keep as "en" for best compatibility
  # All command templates are in English and translated dynamically
  templates: "en"

# Project metadata
project:
  ai: "{{ai}}"
  created: "{{created}}"
`

// DefaultAI is the only assistant the generated commands target.
const DefaultAI = "claude"

// Generate renders the default config.yml for a language (normalized here) and
// creation date (YYYY-MM-DD).
func Generate(language, ai, created string) string {
	if ai == "" {
		ai = DefaultAI
	}
	r := strings.NewReplacer(
		"{{language}}", i18n.Normalize(language),
		"{{ai}}", ai,
		"{{created}}", created,
	)
	return r.Replace(Template)
}
