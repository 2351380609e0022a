package fs

import (
	"os"
	"path/filepath"
)

// TempPattern is the name pattern of in-flight temp files.
const TempPattern = ".codexspec-tmp-*"

// WriteFileAtomic replaces path with data through a temp file in the same
// directory followed by a rename. On failure the original file is left as it was.
// The parent directory must exist.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	tmpPath, w, err := fsys.CreateTemp(filepath.Dir(path), TempPattern)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	committed = true
	return nil
}

// RewriteFile replaces the content of an existing file, keeping its permission bits.
func RewriteFile(fsys FS, path string, data []byte) error {
	return WriteFileAtomic(fsys, path, data, ModeOr(fsys, path, 0o644))
}
