package mapping

import (
	"strings"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/types"
)

const byteOrderMark = "\ufeff"

// newRow turns a raw record into a mapping row, flagging records that
// cannot be used
func newRow(line int, record []string, trimSpace bool) types.MappingRow {
	row := types.MappingRow{
		Line:   line,
		Fields: append([]string(nil), record...),
	}

	if len(record) < 2 {
		row.Err = errors.Newf(errors.ErrRowMalformed, "expected at least 2 fields, got %d", len(record)).
			WithDetail("line", line)
		return row
	}

	row.Old, row.New = record[0], record[1]
	if trimSpace {
		row.Old = strings.TrimSpace(row.Old)
		row.New = strings.TrimSpace(row.New)
	}

	switch {
	case row.Old == "":
		row.Err = errors.New(errors.ErrRowMalformed, "old name is empty").WithDetail("line", line)
	case row.New == "":
		row.Err = errors.New(errors.ErrRowMalformed, "new name is empty").WithDetail("line", line)
	}

	return row
}
