package csvmv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config and log locations at a temp dir and clears CSVMV_* vars
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"CSVMV_MAPPING_PATH", "CSVMV_BASE_DIRECTORY", "CSVMV_MAPPING__DELIMITER", "CSVMV_OUTPUT__FORMAT"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRootCmd_RenamesFromMapping(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "bulletins")
	mappingPath := filepath.Join(dir, "Titles.csv")
	writeFile(t, filepath.Join(base, "report1.txt"), "r1")
	writeFile(t, filepath.Join(base, "report2.txt"), "r2")
	writeFile(t, mappingPath, "report1.txt,Q1-Report.txt\nreport3.txt,Q3-Report.txt\nreport2.txt,Q2-Report.txt\n")

	stdout, stderr, err := execute(t, mappingPath, base)
	require.NoError(t, err)

	assert.Equal(t,
		"Renamed '"+filepath.Join(base, "report1.txt")+"' to '"+filepath.Join(base, "Q1-Report.txt")+"'!\n"+
			"Renamed '"+filepath.Join(base, "report2.txt")+"' to '"+filepath.Join(base, "Q2-Report.txt")+"'!\n",
		stdout)
	assert.Equal(t, "File '"+filepath.Join(base, "report3.txt")+"' not found!\n", stderr)

	assert.FileExists(t, filepath.Join(base, "Q1-Report.txt"))
	assert.FileExists(t, filepath.Join(base, "Q2-Report.txt"))
	assert.NoFileExists(t, filepath.Join(base, "report1.txt"))
}

func TestRootCmd_MissingMappingIsFatal(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "base", "a.txt"), "a")

	stdout, _, err := execute(t, filepath.Join(dir, "nope.csv"), filepath.Join(dir, "base"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingOpen))
	assert.Empty(t, stdout)
	assert.FileExists(t, filepath.Join(dir, "base", "a.txt"))
}

func TestRootCmd_RequiresPaths(t *testing.T) {
	isolate(t)

	_, _, err := execute(t)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), "mapping file is required")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "a.csv", "dir", "extra")
	require.Error(t, err)
}

func TestRootCmd_InvalidFlagValues(t *testing.T) {
	dir := isolate(t)
	mappingPath := filepath.Join(dir, "m.csv")
	writeFile(t, mappingPath, "")

	_, _, err := execute(t, "--delimiter", "::", mappingPath, dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	_, _, err = execute(t, "--format", "xml", mappingPath, dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRootCmd_FlagsOverrideEnvironment(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "base")
	writeFile(t, filepath.Join(base, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "m.csv"), "a.txt;b.txt\n")
	t.Setenv("CSVMV_MAPPING_PATH", filepath.Join(dir, "m.csv"))
	t.Setenv("CSVMV_BASE_DIRECTORY", base)
	t.Setenv("CSVMV_MAPPING__DELIMITER", "|")

	stdout, _, err := execute(t, "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Renamed")
	assert.FileExists(t, filepath.Join(base, "b.txt"))
}

func TestRootCmd_JSONFormat(t *testing.T) {
	dir := isolate(t)
	base := filepath.Join(dir, "base")
	writeFile(t, filepath.Join(base, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "m.csv"), "a.txt,b.txt\nghost.txt,c.txt\n")

	stdout, stderr, err := execute(t, "--format", "json", filepath.Join(dir, "m.csv"), base)
	require.NoError(t, err)

	assert.Contains(t, stdout, `"status":"renamed"`)
	assert.Contains(t, stdout, `"status":"not_found"`)
	assert.NotContains(t, stderr, "not found!")
}

func TestRootCmd_FormatHelpNamesJSONStream(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "json writes every outcome to stdout")
}

func TestGenConfigCmd(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := execute(t, "genconfig", "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[mapping]")
	assert.Regexp(t, `# delimiter = ['"];['"]`, stdout)

	stdout, _, err = execute(t, "genconfig", "-w")
	require.NoError(t, err)
	target := filepath.Join(dir, "config", "csvmv", "config.toml")
	assert.Contains(t, stdout, target)
	assert.FileExists(t, target)

	stdout, _, err = execute(t, "genconfig", "-w")
	require.NoError(t, err)
	assert.Equal(t, MsgConfigExists, stdout)
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "csvmv version dev")
}

func TestCompletionCmd(t *testing.T) {
	isolate(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		stdout, _, err := execute(t, "completion", shell)
		require.NoError(t, err, shell)
		assert.NotEmpty(t, stdout, shell)
	}

	_, _, err := execute(t, "completion", "tcsh")
	require.Error(t, err)
}
