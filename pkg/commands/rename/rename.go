package rename

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/filesystem"
	"github.com/arthur-debert/csvmv/pkg/logging"
	"github.com/arthur-debert/csvmv/pkg/mapping"
	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/rs/zerolog"
)

// RenameFilesOptions holds options for the rename command
type RenameFilesOptions struct {
	MappingPath   string
	BaseDirectory string
	Mapping       mapping.Options
	FileSystem    types.FS       // Allow injecting a filesystem for testing
	Reporter      types.Reporter // Receives every outcome in file order
}

// RenameFiles renames the files listed in the mapping table
func RenameFiles(opts RenameFilesOptions) (*types.RenameResult, error) {
	logger := logging.GetLogger("commands.rename")
	logger.Info().
		Str("mapping", opts.MappingPath).
		Str("base_directory", opts.BaseDirectory).
		Msg("Renaming files from mapping")
	done := logging.LogOperationStart(logger, "rename")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = types.ReporterFunc(func(types.RenameOutcome) {})
	}

	rows, err := mapping.Load(fs, opts.MappingPath, opts.Mapping)
	if err != nil {
		logRename(logger, opts, nil, err)
		return nil, err
	}

	result := &types.RenameResult{
		MappingPath:   opts.MappingPath,
		BaseDirectory: opts.BaseDirectory,
		Outcomes:      make([]types.RenameOutcome, 0, len(rows)),
	}

	for _, row := range rows {
		outcome := renameRow(fs, logger, opts.BaseDirectory, row)
		result.Add(outcome)
		reporter.Report(outcome)
	}

	logRename(logger, opts, result, nil)
	return result, nil
}

// renameRow processes a single mapping row. It never returns an error:
// every problem is captured in the outcome.
func renameRow(fs types.FS, logger zerolog.Logger, baseDirectory string, row types.MappingRow) types.RenameOutcome {
	outcome := types.RenameOutcome{Row: row}

	if !row.Valid() {
		outcome.Status = types.StatusFailed
		outcome.Err = row.Err
		logger.Debug().Err(row.Err).Int("line", row.Line).Strs("fields", row.Fields).Msg("Skipping malformed row")
		return outcome
	}

	outcome.OldPath = filepath.Join(baseDirectory, row.Old)

	if _, err := fs.Stat(outcome.OldPath); err != nil {
		if isNotExist(err) {
			outcome.Status = types.StatusNotFound
			outcome.Err = errors.Newf(errors.ErrSourceNotFound, "file '%s' not found", outcome.OldPath).
				WithDetail("path", outcome.OldPath)
			logger.Debug().Int("line", row.Line).Str("old", outcome.OldPath).Msg("Source not found")
			return outcome
		}
		outcome.Status = types.StatusFailed
		outcome.Err = errors.Wrapf(err, errors.ErrRename, "cannot access '%s'", outcome.OldPath)
		logger.Debug().Err(err).Int("line", row.Line).Str("old", outcome.OldPath).Msg("Cannot access source")
		return outcome
	}

	outcome.NewPath = filepath.Join(baseDirectory, row.New)

	if err := fs.Rename(outcome.OldPath, outcome.NewPath); err != nil {
		outcome.Status = types.StatusFailed
		outcome.Err = errors.Wrapf(err, errors.ErrRename, "cannot rename '%s' to '%s'", outcome.OldPath, outcome.NewPath)
		logger.Debug().
			Err(err).
			Int("line", row.Line).
			Str("old", outcome.OldPath).
			Str("new", outcome.NewPath).
			Msg("Rename failed")
		return outcome
	}

	outcome.Status = types.StatusRenamed
	logger.Debug().
		Int("line", row.Line).
		Str("old", outcome.OldPath).
		Str("new", outcome.NewPath).
		Msg("Renamed")
	return outcome
}

// isNotExist reports whether a stat error means the path is absent,
// including a parent part that is a regular file
func isNotExist(err error) bool {
	return stderrors.Is(err, os.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}

// logRename logs the rename command execution
func logRename(logger zerolog.Logger, opts RenameFilesOptions, result *types.RenameResult, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
	}

	event.
		Str("command", "rename").
		Str("mapping", opts.MappingPath).
		Str("base_directory", opts.BaseDirectory)

	if result != nil {
		event.
			Int("rows", result.Rows()).
			Int("renamed", result.Renamed).
			Int("not_found", result.NotFound).
			Int("failed", result.Failed)
	}

	if err != nil {
		event.Msg("Rename command failed")
	} else {
		event.Msg("Rename command completed")
	}
}
