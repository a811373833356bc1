package mapping

import (
	"bufio"
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"io"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/types"
)

// ReadCSV reads every record of a CSV mapping table in file order
func ReadCSV(r io.Reader, opts Options) ([]types.MappingRow, error) {
	reader := csv.NewReader(skipByteOrderMark(r))
	reader.Comma = opts.delimiter()
	reader.Comment = opts.Comment
	reader.FieldsPerRecord = -1

	var rows []types.MappingRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) {
				// Skip the broken record; the reader resumes on the next line
				rows = append(rows, types.MappingRow{
					Line:   parseErr.StartLine,
					Fields: record,
					Err:    errors.Wrap(parseErr, errors.ErrMappingParse, "invalid CSV record").WithDetail("line", parseErr.StartLine),
				})
				continue
			}
			return nil, errors.Wrap(err, errors.ErrMappingOpen, "failed to read mapping")
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, newRow(line, record, opts.TrimSpace))
	}

	return rows, nil
}

// skipByteOrderMark drops a UTF-8 BOM at the start of the input so a
// quoted first field still parses
func skipByteOrderMark(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(byteOrderMark)); err == nil && bytes.Equal(head, []byte(byteOrderMark)) {
		_, _ = br.Discard(len(byteOrderMark))
	}
	return br
}
