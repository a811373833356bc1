package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/csvmv/pkg/config"
	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/filesystem"
	"github.com/arthur-debert/csvmv/pkg/logging"
	"github.com/arthur-debert/csvmv/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is rendered as the file content. Nil means the built-in defaults.
	Config *config.Config
	// Write stores the content at Path instead of only returning it
	Write bool
	// Path defaults to the user config file
	Path       string
	FileSystem types.FS
}

// GenConfig renders a commented configuration file and optionally writes it.
// An existing file is never overwritten.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return nil, err
		}
	}

	content, err := config.GenerateConfigContent(cfg)
	if err != nil {
		return nil, err
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	targetPath := opts.Path
	if targetPath == "" {
		targetPath = config.UserConfigPath()
	}

	logger.Info().Str("path", targetPath).Msg("Writing config file")

	if _, err := fs.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	} else if !os.IsNotExist(err) {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", targetPath)
	}

	dir := filepath.Dir(targetPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create directory %s", dir)
	}
	if err := fs.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
