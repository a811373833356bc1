package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/mapping"
	"github.com/arthur-debert/csvmv/pkg/report"
	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/mitchellh/go-homedir"
)

// Config is the effective configuration of a csvmv run
type Config struct {
	MappingPath   string        `koanf:"mapping_path" toml:"mapping_path"`
	BaseDirectory string        `koanf:"base_directory" toml:"base_directory"`
	Mapping       MappingConfig `koanf:"mapping" toml:"mapping"`
	Output        OutputConfig  `koanf:"output" toml:"output"`
}

// MappingConfig controls how the mapping table is read
type MappingConfig struct {
	Delimiter string `koanf:"delimiter" toml:"delimiter"`
	Comment   string `koanf:"comment" toml:"comment"`
	TrimSpace bool   `koanf:"trim_space" toml:"trim_space"`
	Sheet     string `koanf:"sheet" toml:"sheet"`
}

// OutputConfig controls how outcomes are reported
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Validate checks that the configuration can drive a run and normalizes
// paths in place. The base directory must exist and be a directory.
// The mapping file is not opened here.
func (c *Config) Validate(fs types.FS) error {
	if c.MappingPath == "" {
		return errors.New(errors.ErrConfigValid, "mapping file is required")
	}
	if c.BaseDirectory == "" {
		return errors.New(errors.ErrConfigValid, "base directory is required")
	}

	var err error
	if c.MappingPath, err = homedir.Expand(c.MappingPath); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "cannot expand mapping path %q", c.MappingPath)
	}
	if c.BaseDirectory, err = homedir.Expand(c.BaseDirectory); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "cannot expand base directory %q", c.BaseDirectory)
	}

	if _, err := c.MappingOptions(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output format")
	}

	info, err := fs.Stat(c.BaseDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrConfigValid, "base directory '%s' does not exist", c.BaseDirectory).
				WithDetail("path", c.BaseDirectory)
		}
		return errors.Wrapf(err, errors.ErrConfigValid, "cannot access base directory '%s'", c.BaseDirectory)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrConfigValid, "base directory '%s' is not a directory", c.BaseDirectory).
			WithDetail("path", c.BaseDirectory)
	}

	return nil
}

// MappingOptions converts the mapping section into reader options
func (c *Config) MappingOptions() (mapping.Options, error) {
	delimiter, err := singleRune("mapping.delimiter", c.Mapping.Delimiter, false)
	if err != nil {
		return mapping.Options{}, err
	}
	comment, err := singleRune("mapping.comment", c.Mapping.Comment, true)
	if err != nil {
		return mapping.Options{}, err
	}
	if comment != 0 && comment == delimiter {
		return mapping.Options{}, errors.New(errors.ErrConfigValid, "mapping.comment must differ from mapping.delimiter")
	}

	return mapping.Options{
		Delimiter: delimiter,
		Comment:   comment,
		TrimSpace: c.Mapping.TrimSpace,
		Sheet:     c.Mapping.Sheet,
	}, nil
}

func singleRune(key, value string, allowEmpty bool) (rune, error) {
	if value == "" {
		if allowEmpty {
			return 0, nil
		}
		return 0, errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
	}
	if value == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, errors.Newf(errors.ErrConfigValid, "%s must be a single character, got %q", key, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, errors.Newf(errors.ErrConfigValid, "%s cannot be %q", key, value)
	}
	return r, nil
}

// String returns a short description used in debug logs
func (c *Config) String() string {
	return fmt.Sprintf("mapping=%s base=%s delimiter=%q format=%s", c.MappingPath, c.BaseDirectory, c.Mapping.Delimiter, c.Output.Format)
}
