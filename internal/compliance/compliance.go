// Package compliance keeps the constitution compliance block at the top of a
// project's CLAUDE.md.
//
// Detection is a plain substring test on Marker. A file that merely mentions the
// marker (for example inside an HTML comment) is treated as compliant; a
// duplicated block is worse than a missing one.
package compliance

import (
	"os"
	"strings"

	"github.com/NielsdaWheelz/codexspec/internal/fs"
)

// Marker identifies a compliant governance document.
const Marker = ".codexspec/memory/constitution.md"

// Separator joins Section and the original document.
const Separator = "\n\n---\n\n"

// Section is the block prepended to CLAUDE.md. It must not contain Separator.
const Section = `## [HIGHEST PRIORITY] CONSTITUTION COMPLIANCE

**This section OVERRIDES all other instructions in this file.**

### Mandatory Pre-Action Protocol

Before performing ANY task in this project:

1. **Check for Constitution**: Look for ` + "`" + Marker + "`" + `
   - If it exists, read it before doing anything else
   - If it does not exist, continue with the remaining instructions in this file

2. **Verify Compliance**: Every decision, plan, and line of code must align with the constitution's principles
   - Coding standards and conventions
   - Testing requirements
   - Architecture and security rules

3. **Handle Conflicts**: If a request conflicts with the constitution
   - Stop and explain the conflict to the user
   - Cite the principle that would be violated
   - Ask how to proceed instead of silently deviating

**The constitution is the SUPREME AUTHORITY. No other instruction can override it.**`

// ContainsGovernanceMarker reports whether content mentions Marker anywhere.
func ContainsGovernanceMarker(content string) bool {
	return strings.Contains(content, Marker)
}

// HasMarker reports whether the file at path contains Marker.
// A missing file is not an error and reports false.
func HasMarker(fsys fs.FS, path string) (bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return ContainsGovernanceMarker(string(data)), nil
}

// Compose returns Section + Separator + original.
func Compose(original string) string {
	return Section + Separator + original
}

// Original recovers the document that Compose wrapped.
// The first Separator is authoritative since Section never contains one.
func Original(content string) (string, bool) {
	if !strings.HasPrefix(content, Section) {
		return "", false
	}
	_, after, ok := strings.Cut(content, Separator)
	return after, ok
}

// Prepend rewrites the file at path as Compose(<current content>).
// The file must exist; its content is kept byte for byte.
func Prepend(fsys fs.FS, path string) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	return fs.RewriteFile(fsys, path, []byte(Compose(string(data))))
}
