package mapping_test

import (
	"testing"

	"github.com/arthur-debert/csvmv/pkg/errors"
	"github.com/arthur-debert/csvmv/pkg/filesystem"
	"github.com/arthur-debert/csvmv/pkg/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/maps", 0755))

	t.Run("csv", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/maps/Titles.csv", []byte("a.txt,b.txt\nc.txt,d.txt\n"), 0644))

		rows, err := mapping.Load(fs, "/maps/Titles.csv", mapping.Options{})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"a.txt", "b.txt"}, {"c.txt", "d.txt"}}, pairs(rows))
	})

	t.Run("unknown_extension_is_csv", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/maps/titles.txt", []byte("a.txt|b.txt\n"), 0644))

		rows, err := mapping.Load(fs, "/maps/titles.txt", mapping.Options{Delimiter: '|'})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"a.txt", "b.txt"}}, pairs(rows))
	})

	t.Run("xlsx", func(t *testing.T) {
		data := workbook(t, map[string][][]interface{}{"Sheet1": {{"x.txt", "y.txt"}}})
		require.NoError(t, fs.WriteFile("/maps/Titles.XLSX", data, 0644))

		rows, err := mapping.Load(fs, "/maps/Titles.XLSX", mapping.Options{})
		require.NoError(t, err)
		assert.Equal(t, [][2]string{{"x.txt", "y.txt"}}, pairs(rows))
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := mapping.Load(fs, "/maps/nope.csv", mapping.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingOpen))
		assert.Equal(t, "/maps/nope.csv", errors.GetErrorDetails(err)["path"])
	})

	t.Run("directory", func(t *testing.T) {
		_, err := mapping.Load(fs, "/maps", mapping.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingOpen))
	})
}
