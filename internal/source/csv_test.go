package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCSVReader_Read(t *testing.T) {
	path := writeFile(t, "export.csv", []byte("Date,Description,Amount\n05/03/2024,TESCO,12.34\n"))

	in, err := (&CSVReader{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, KindTable, in.Kind)
	assert.Equal(t, []string{"Date", "Description", "Amount"}, in.Table.Headers)
	require.Len(t, in.Table.Rows, 1)
	assert.Equal(t, "TESCO", in.Table.Rows[0][1])
}

func TestCSVReader_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Merchant,Amount\n")...)
	path := writeFile(t, "bom.csv", data)

	in, err := (&CSVReader{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Date", in.Table.Headers[0])
}

func TestCSVReader_Windows1252Fallback(t *testing.T) {
	// 0xA3 is the pound sign in Windows-1252 and invalid as UTF-8.
	data := []byte("Date,Description,Amount\n05/03/2024,CAF\xC9 NERO,\xA33.20\n")
	path := writeFile(t, "latin.csv", data)

	in, err := (&CSVReader{}).Read(path)
	require.NoError(t, err)
	require.Len(t, in.Table.Rows, 1)
	assert.Equal(t, "CAFÉ NERO", in.Table.Rows[0][1])
	assert.Equal(t, "£3.20", in.Table.Rows[0][2])
}

func TestCSVReader_RaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", []byte("Date,Description,Amount\n05/03/2024,TESCO\n"))

	in, err := (&CSVReader{}).Read(path)
	require.NoError(t, err)
	require.Len(t, in.Table.Rows, 1)
	assert.Len(t, in.Table.Rows[0], 2)
}

func TestCSVReader_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", nil)
	_, err := (&CSVReader{}).Read(path)
	assert.Error(t, err)
}

func TestTextReader_Read(t *testing.T) {
	path := writeFile(t, "dump.txt", []byte("line one\r\nline two\n"))

	in, err := (&TextReader{}).Read(path)
	require.NoError(t, err)
	assert.Equal(t, KindText, in.Kind)
	assert.Equal(t, []string{"line one", "line two", ""}, in.Lines)
}
