// Package fs is the filesystem seam used by init and config. Project files
// (config.yml, CLAUDE.md, slash commands, scripts) are written through FS so
// commands can run against a temp dir or a fault-injecting stub.
package fs

import (
	"io"
	iofs "io/fs"
	"os"
)

// FS covers the calls scaffolding and the atomic rewrite of config.yml and
// CLAUDE.md need.
type FS interface {
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (iofs.FileInfo, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Chmod(path string, perm os.FileMode) error
	// CreateTemp opens a sibling temp file for WriteFileAtomic; the caller
	// closes it and renames or removes it.
	CreateTemp(dir, pattern string) (path string, w io.WriteCloser, err error)
}

// RealFS writes to the local disk.
type RealFS struct{}

// NewRealFS returns the FS every command uses outside tests.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (r *RealFS) Remove(path string) error {
	return os.Remove(path)
}

func (r *RealFS) Chmod(path string, perm os.FileMode) error {
	return os.Chmod(path, perm)
}

func (r *RealFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(fsys FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// ModeOr returns the permission bits of path, or def if it cannot be stat'ed.
func ModeOr(fsys FS, path string, def os.FileMode) os.FileMode {
	info, err := fsys.Stat(path)
	if err != nil {
		return def
	}
	return info.Mode().Perm()
}
