package mapping

import (
	"io"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first two columns of a worksheet as mapping rows.
// Blank rows are skipped; Line is the spreadsheet row number.
func ReadXLSX(r io.Reader, opts Options) ([]types.MappingRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMappingOpen, "failed to open spreadsheet")
	}
	defer func() { _ = f.Close() }()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrMappingOpen, "spreadsheet has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingOpen, "failed to read sheet %q", sheet)
	}

	var rows []types.MappingRow
	for i, record := range records {
		if isBlank(record) {
			continue
		}
		rows = append(rows, newRow(i+1, record, opts.TrimSpace))
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
