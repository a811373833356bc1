package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/csvmv/pkg/filesystem"
	"github.com/arthur-debert/csvmv/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a base directory to rename in and a separate
// directory for mapping files
type TestEnvironment struct {
	BaseDir    string
	MappingDir string

	// FS is wrapped in a FaultyFS so tests can inject errors and count mutations
	FS *FaultyFS

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	var root string
	var fs types.FS
	switch envType {
	case EnvIsolated:
		root = t.TempDir()
		fs = filesystem.NewOS()
	default:
		root = "/virtual"
		fs = filesystem.NewMemory()
	}

	env.BaseDir = filepath.Join(root, "bulletins")
	env.MappingDir = filepath.Join(root, "mappings")
	env.FS = NewFaultyFS(fs)

	for _, dir := range []string{env.BaseDir, env.MappingDir} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// WithFiles creates files in the base directory. Keys are names relative
// to BaseDir, values are file contents.
func (env *TestEnvironment) WithFiles(files map[string]string) *TestEnvironment {
	env.t.Helper()

	for name, content := range files {
		path := env.Path(name)
		if err := env.FS.Unwrap().MkdirAll(filepath.Dir(path), 0755); err != nil {
			env.t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := env.FS.Unwrap().WriteFile(path, []byte(content), 0644); err != nil {
			env.t.Fatalf("Failed to write file %s: %v", name, err)
		}
	}
	return env
}

// WriteMapping writes a mapping file into MappingDir and returns its path
func (env *TestEnvironment) WriteMapping(name string, content []byte) string {
	env.t.Helper()

	path := filepath.Join(env.MappingDir, name)
	if err := env.FS.Unwrap().WriteFile(path, content, 0644); err != nil {
		env.t.Fatalf("Failed to write mapping %s: %v", name, err)
	}
	return path
}

// Path joins name onto the base directory
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.BaseDir, name)
}

// Exists reports whether name exists in the base directory
func (env *TestEnvironment) Exists(name string) bool {
	_, err := env.FS.Unwrap().Stat(env.Path(name))
	return err == nil
}

// ReadFile returns the content of name in the base directory
func (env *TestEnvironment) ReadFile(name string) string {
	env.t.Helper()

	data, err := env.FS.Unwrap().ReadFile(env.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			env.t.Fatalf("File %s does not exist", name)
		}
		env.t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}
