package mapping

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/logging"
	"github.com/arthur-debert/csvmv/pkg/types"
)

// Load reads the whole mapping file at path through fs and parses it.
// Files ending in .xlsx are read as spreadsheets, everything else as CSV.
// The file is fully consumed before any row is returned.
func Load(fs types.FS, path string, opts Options) ([]types.MappingRow, error) {
	logger := logging.GetLogger("mapping")

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingOpen, "cannot read mapping file '%s'", path).
			WithDetail("path", path)
	}

	var rows []types.MappingRow
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = ReadXLSX(bytes.NewReader(data), opts)
	default:
		rows, err = ReadCSV(bytes.NewReader(data), opts)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Int("rows", len(rows)).
		Msg("Mapping loaded")

	return rows, nil
}
