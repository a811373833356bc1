package mapping_test

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/mapping"
	"github.com/arthur-debert/csvmv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairs(rows []types.MappingRow) [][2]string {
	var out [][2]string
	for _, r := range rows {
		out = append(out, [2]string{r.Old, r.New})
	}
	return out
}

func TestReadCSV_FileOrder(t *testing.T) {
	input := "report1.txt,Q1-Report.txt\nreport3.txt,Q3-Report.txt\nreport2.txt,Q2-Report.txt\n"

	rows, err := mapping.ReadCSV(strings.NewReader(input), mapping.Options{})
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{"report1.txt", "Q1-Report.txt"},
		{"report3.txt", "Q3-Report.txt"},
		{"report2.txt", "Q2-Report.txt"},
	}, pairs(rows))

	for i, row := range rows {
		assert.Equal(t, i+1, row.Line)
		assert.True(t, row.Valid())
	}
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := mapping.ReadCSV(strings.NewReader(""), mapping.Options{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSV_ExtraColumnsIgnored(t *testing.T) {
	rows, err := mapping.ReadCSV(strings.NewReader("a.txt,b.txt,note,more\n"), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "a.txt", rows[0].Old)
	assert.Equal(t, "b.txt", rows[0].New)
	assert.Equal(t, []string{"a.txt", "b.txt", "note", "more"}, rows[0].Fields)
}

func TestReadCSV_QuotedFields(t *testing.T) {
	input := `"Report, final.txt","Q4 ""draft"".txt"` + "\r\n"

	rows, err := mapping.ReadCSV(strings.NewReader(input), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Report, final.txt", rows[0].Old)
	assert.Equal(t, `Q4 "draft".txt`, rows[0].New)
}

func TestReadCSV_MalformedRowsDoNotStopReading(t *testing.T) {
	input := strings.Join([]string{
		"a.txt,b.txt",
		"lonely.txt",
		",empty-old.txt",
		"empty-new.txt,",
		`bad"quote,x.txt`,
		"c.txt,d.txt",
	}, "\n") + "\n"

	rows, err := mapping.ReadCSV(strings.NewReader(input), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.True(t, rows[0].Valid())

	assert.True(t, errors.IsErrorCode(rows[1].Err, errors.ErrRowMalformed))
	assert.Contains(t, rows[1].Err.Error(), "expected at least 2 fields, got 1")
	assert.Equal(t, []string{"lonely.txt"}, rows[1].Fields)

	assert.True(t, errors.IsErrorCode(rows[2].Err, errors.ErrRowMalformed))
	assert.Contains(t, rows[2].Err.Error(), "old name is empty")

	assert.True(t, errors.IsErrorCode(rows[3].Err, errors.ErrRowMalformed))
	assert.Contains(t, rows[3].Err.Error(), "new name is empty")

	assert.True(t, errors.IsErrorCode(rows[4].Err, errors.ErrMappingParse))
	assert.Equal(t, 5, rows[4].Line)

	assert.True(t, rows[5].Valid())
	assert.Equal(t, "c.txt", rows[5].Old)
	assert.Equal(t, 6, rows[5].Line)
}

func TestReadCSV_BlankLinesKeepLineNumbers(t *testing.T) {
	rows, err := mapping.ReadCSV(strings.NewReader("a,b\n\nc,d\n"), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, 3, rows[1].Line)
}

func TestReadCSV_Options(t *testing.T) {
	t.Run("delimiter_and_comment", func(t *testing.T) {
		input := "# old;new\na.txt;b.txt\n"
		rows, err := mapping.ReadCSV(strings.NewReader(input), mapping.Options{Delimiter: ';', Comment: '#'})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"a.txt", "b.txt"}}, pairs(rows))
		assert.Equal(t, 2, rows[0].Line)
	})

	t.Run("trim_space", func(t *testing.T) {
		rows, err := mapping.ReadCSV(strings.NewReader("  a.txt ,  b.txt  \n"), mapping.Options{TrimSpace: true})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"a.txt", "b.txt"}}, pairs(rows))
	})

	t.Run("spaces_kept_by_default", func(t *testing.T) {
		rows, err := mapping.ReadCSV(strings.NewReader("a.txt, b.txt\n"), mapping.Options{})
		require.NoError(t, err)
		assert.Equal(t, " b.txt", rows[0].New)
	})
}

func TestReadCSV_StripsByteOrderMark(t *testing.T) {
	rows, err := mapping.ReadCSV(strings.NewReader("\ufeffa.txt,b.txt\n\ufeffc.txt,d.txt\n"), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a.txt", rows[0].Old)
	assert.Equal(t, "\ufeffc.txt", rows[1].Old, "only a leading BOM is stripped")
}

func TestReadCSV_StripsByteOrderMarkBeforeQuotedField(t *testing.T) {
	rows, err := mapping.ReadCSV(strings.NewReader("\ufeff\"Report, final.txt\",b.txt\n"), mapping.Options{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, "Report, final.txt", rows[0].Old)
	assert.Equal(t, "b.txt", rows[0].New)
	assert.Equal(t, 1, rows[0].Line)
}

func TestReadCSV_ReaderFailureIsFatal(t *testing.T) {
	_, err := mapping.ReadCSV(iotest.ErrReader(assert.AnError), mapping.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMappingOpen))
	assert.ErrorIs(t, err, assert.AnError)
}
