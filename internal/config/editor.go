package config

import (
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// Key is a child key of the language section.
type Key string

const (
	KeyOutput    Key = "output"
	KeyCommit    Key = "commit"
	KeyTemplates Key = "templates"
)

const (
	sectionKey         = "language:"
	defaultChildIndent = "  "
)

// The editor works on lines rather than a YAML tree so comments, blank lines,
// quoting and indentation of everything it does not target survive byte for byte.

// SetOutputLanguage sets language.output to code.
//
// The first output: line after a language: line is rewritten with its own
// indentation and a double-quoted value. There is no section boundary check:
// an output: key anywhere after language: qualifies. Only the first match is
// touched. Returns the document unchanged and false if nothing qualified.
func SetOutputLanguage(doc, code string) (string, bool) {
	lines := strings.Split(doc, "\n")
	inSection := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, sectionKey):
			inSection = true
		case inSection && hasKey(trimmed, KeyOutput):
			lines[i] = assignment(line, KeyOutput, code)
			return strings.Join(lines, "\n"), true
		}
	}
	return doc, false
}

// SetCommitLanguage sets language.commit to code, inserting the key if absent.
//
// The section runs from the first language: line up to a templates: line or
// the first non-blank, non-comment line not indented deeper than language:.
// Only keys indented deeper than language: belong to it. An existing commit:
// inside the section is rewritten in place. Otherwise a new line using the
// indentation of output: (two spaces if there is none) is inserted where the
// section ends, or at the end of the document. Returns the document unchanged
// and false if there is no language: line. Calling it twice with the same code
// is a no-op.
func SetCommitLanguage(doc, code string) (string, bool) {
	lines := strings.Split(doc, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), sectionKey) {
			start = i
			break
		}
	}
	if start < 0 {
		return doc, false
	}

	sectionIndent := indentWidth(lines[start])
	childIndent := defaultChildIndent
	insertAt := len(lines)
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if indentWidth(line) <= sectionIndent || hasKey(trimmed, KeyTemplates) {
			insertAt = i
			break
		}
		switch {
		case hasKey(trimmed, KeyCommit):
			lines[i] = assignment(line, KeyCommit, code)
			return strings.Join(lines, "\n"), true
		case hasKey(trimmed, KeyOutput):
			childIndent = leadingWhitespace(line)
		}
	}

	// keep a trailing newline as the last thing in the file
	if insertAt == len(lines) && insertAt > start+1 && lines[insertAt-1] == "" {
		insertAt--
	}

	eol := lineEnding(lines[start])
	added := childIndent + string(KeyCommit) + `: "` + code + `"` + eol

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt]...)
	out = append(out, added)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n"), true
}

// UpdateLanguageFile applies SetOutputLanguage or SetCommitLanguage to the
// config file at path and writes the result back.
func UpdateLanguageFile(fsys fs.FS, path string, key Key, code string) error {
	data, err := read(fsys, path)
	if err != nil {
		return err
	}

	var (
		updated string
		ok      bool
	)
	switch key {
	case KeyOutput:
		updated, ok = SetOutputLanguage(string(data), code)
	case KeyCommit:
		updated, ok = SetCommitLanguage(string(data), code)
	default:
		return errors.New(errors.EInternal, "unsupported language key: "+string(key))
	}
	if !ok {
		return errors.New(errors.ELanguageSectionMissing, "failed to update "+string(key)+" language: no language."+string(key)+" setting found in "+path)
	}

	if err := fs.RewriteFile(fsys, path, []byte(updated)); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write "+path, err)
	}
	return nil
}

func hasKey(trimmed string, key Key) bool {
	return strings.HasPrefix(trimmed, string(key)+":")
}

// assignment renders `<indent>key: "value"` reusing line's indentation and line ending.
func assignment(line string, key Key, value string) string {
	return leadingWhitespace(line) + string(key) + `: "` + value + `"` + lineEnding(line)
}

func leadingWhitespace(line string) string {
	return line[:indentWidth(line)]
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// lineEnding returns "\r" for lines split out of a CRLF document.
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}
