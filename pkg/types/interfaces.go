package types

import (
	"io/fs"
)

// FS is the filesystem interface required for csvmv operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Entry operations
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Reporter receives the outcome of every processed mapping row, in file order.
// Implementations decide where and how outcomes are shown to the user.
type Reporter interface {
	Report(outcome RenameOutcome)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(outcome RenameOutcome)

// Report calls f(outcome)
func (f ReporterFunc) Report(outcome RenameOutcome) {
	f(outcome)
}
