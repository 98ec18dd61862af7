package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/VeteranWolfy/track-finance/internal/extract"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader reads comma-separated statement exports into a headed table.
// Files that are not valid UTF-8 are decoded as Windows-1252, which covers
// the Latin-1 exports some banks still produce.
type CSVReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *CSVReader) Extensions() []string { return []string{"csv"} }

// Read parses the CSV file at path. The first record is taken as the header
// row; records may vary in field count.
func (r *CSVReader) Read(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := decodeStatementBytes(data)
	if err != nil {
		return Input{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return Input{}, fmt.Errorf("parsing CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return Input{}, fmt.Errorf("empty CSV %s", path)
	}

	return Input{
		Kind: KindTable,
		Table: extract.Table{
			Headers: records[0],
			Rows:    records[1:],
		},
	}, nil
}

// TextReader reads plain text statement dumps line by line.
type TextReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *TextReader) Extensions() []string { return []string{"txt"} }

// Read returns the file's lines for text-mode extraction.
func (r *TextReader) Read(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := decodeStatementBytes(data)
	if err != nil {
		return Input{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Input{Kind: KindText, Lines: splitLines(text)}, nil
}

// decodeStatementBytes normalizes file bytes to UTF-8: BOM stripped, and
// non-UTF-8 content decoded as Windows-1252.
func decodeStatementBytes(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding as windows-1252: %w", err)
	}
	return string(decoded), nil
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
