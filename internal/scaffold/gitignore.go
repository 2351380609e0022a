package scaffold

import (
	"os"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// GitignoreEntries are the patterns init keeps in a project's .gitignore:
// temp files left behind by an interrupted atomic write.
var GitignoreEntries = []string{fs.TempPattern}

// GitignoreResult says what EnsureGitignore did.
type GitignoreResult string

const (
	GitignoreCreated   GitignoreResult = "created"
	GitignoreUpdated   GitignoreResult = "updated"
	GitignoreUnchanged GitignoreResult = "unchanged"
)

// EnsureGitignore appends each missing entry to the .gitignore at path,
// creating the file if needed. Existing lines are never reordered or removed.
func EnsureGitignore(fsys fs.FS, path string, entries []string) (GitignoreResult, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		data := strings.Join(entries, "\n") + "\n"
		if err := fsys.WriteFile(path, []byte(data), 0o644); err != nil {
			return "", err
		}
		return GitignoreCreated, nil
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(content), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return GitignoreUnchanged, nil
	}

	updated := string(content)
	if updated != "" && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += strings.Join(missing, "\n") + "\n"

	if err := fs.RewriteFile(fsys, path, []byte(updated)); err != nil {
		return "", err
	}
	return GitignoreUpdated, nil
}
