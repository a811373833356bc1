package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/csvmv/pkg/types"
)

// Op names an FS operation for error injection
type Op string

const (
	OpStat     Op = "stat"
	OpReadFile Op = "readfile"
	OpRename   Op = "rename"
)

// FaultyFS wraps a types.FS, returning injected errors for chosen
// (operation, path) pairs and counting mutating calls
type FaultyFS struct {
	types.FS

	mu        sync.Mutex
	errors    map[Op]map[string]error
	mutations int
}

// NewFaultyFS wraps fs
func NewFaultyFS(fs types.FS) *FaultyFS {
	return &FaultyFS{FS: fs, errors: make(map[Op]map[string]error)}
}

// WithError makes op fail with err for path. For OpRename, path is the source.
func (f *FaultyFS) WithError(op Op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errors[op] == nil {
		f.errors[op] = make(map[string]error)
	}
	f.errors[op][filepath.Clean(path)] = err
	return f
}

// Mutations returns the number of rename, write, mkdir and remove calls
// made through the wrapper
func (f *FaultyFS) Mutations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

// Unwrap returns the wrapped filesystem
func (f *FaultyFS) Unwrap() types.FS {
	return f.FS
}

func (f *FaultyFS) injected(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[op][filepath.Clean(path)]
}

func (f *FaultyFS) mutated() {
	f.mu.Lock()
	f.mutations++
	f.mu.Unlock()
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.injected(OpStat, name); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.injected(OpReadFile, name); err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	f.mutated()
	if err := f.injected(OpRename, oldpath); err != nil {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: err}
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.mutated()
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	f.mutated()
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) Remove(name string) error {
	f.mutated()
	return f.FS.Remove(name)
}
