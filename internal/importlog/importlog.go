// Package importlog keeps a CSV audit trail of import runs next to the
// ledger workbook.
package importlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp  time.Time
	SourceFile string
	Extracted  int
	Skipped    int
	Duplicates int
	Appended   int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,source_file,extracted,skipped,duplicates,appended"

const (
	numFields     = 6
	logFile       = "import-log.csv"
	colTimestamp  = 0
	colSourceFile = 1
	colExtracted  = 2
	colSkipped    = 3
	colDuplicates = 4
	colAppended   = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSourceFile] = e.SourceFile
	row[colExtracted] = strconv.Itoa(e.Extracted)
	row[colSkipped] = strconv.Itoa(e.Skipped)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colAppended] = strconv.Itoa(e.Appended)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, numFields)
	for _, col := range []int{colExtracted, colSkipped, colDuplicates, colAppended} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[col] = n
	}

	return Entry{
		Timestamp:  ts,
		SourceFile: record[colSourceFile],
		Extracted:  counts[colExtracted],
		Skipped:    counts[colSkipped],
		Duplicates: counts[colDuplicates],
		Appended:   counts[colAppended],
	}, nil
}

// Append writes an entry to import-log.csv in the ledger's directory,
// creating the file and header if needed.
func Append(ledgerPath string, e Entry) error {
	path := filepath.Join(filepath.Dir(ledgerPath), logFile)

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if isNew {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := cw.Write(MarshalEntry(e)); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read loads all entries from an import log reader.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
