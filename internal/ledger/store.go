// Package ledger persists categorized transactions into an Excel workbook:
// one sheet per calendar month, each holding a three-column block per
// category, plus a Dashboard sheet rebuilt from the monthly sheets.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/normalize"
)

const (
	dashboardSheet  = "Dashboard"
	colsPerCategory = 3
	firstDataRow    = 3 // rows 1-2 are the category and column headers
	gbpNumFmt       = "£#,##0.00"
	headerFillColor = "E2EFDA"
	columnWidth     = 15
)

// Store is an Excel-backed ledger at a fixed path. It assumes exclusive
// ownership of the file: load whole workbook, mutate in memory, save whole
// workbook.
type Store struct {
	path string
}

// NewStore creates a Store for the workbook at path. The file need not
// exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the workbook path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every transaction from the monthly sheets. A missing workbook
// is an empty ledger, not an error. Rows with unparsable dates are skipped;
// unparsable costs coerce to zero.
func (s *Store) Load() ([]model.Transaction, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	return readAll(f)
}

// Append writes categorized transactions into their monthly sheets, after
// the last existing row of each category block, then rebuilds the Dashboard
// and saves. Nothing is written when any transaction is invalid.
func (s *Store) Append(txns []model.Transaction) error {
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("invalid transaction %q: %w", t.Description, err)
		}
		if !model.ValidCategory(t.Category) {
			return fmt.Errorf("invalid transaction %q: unknown category %q", t.Description, t.Category)
		}
	}

	f, created, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	// Next free row per (sheet, category), derived once per sheet rather
	// than re-scanned per write.
	nextRow := make(map[string]int)
	for _, t := range sorted {
		sheet := SheetName(t.Date)
		if err := s.ensureMonthSheet(f, sheet, styles); err != nil {
			return err
		}

		key := sheet + "\x00" + t.Category
		if _, ok := nextRow[key]; !ok {
			n, err := blockLength(f, sheet, t.Category)
			if err != nil {
				return err
			}
			nextRow[key] = firstDataRow + n
		}

		if err := writeTransaction(f, sheet, nextRow[key], t, styles); err != nil {
			return err
		}
		nextRow[key]++
	}

	if err := rebuildDashboard(f, styles); err != nil {
		return err
	}

	if created {
		return saveAs(f, s.path)
	}
	return save(f)
}

// RebuildDashboard recomputes the Dashboard sheet from the monthly sheets
// and saves the workbook.
func (s *Store) RebuildDashboard() error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}
	if err := rebuildDashboard(f, styles); err != nil {
		return err
	}
	return save(f)
}

// open returns the workbook, creating a fresh one (Dashboard as first
// sheet) when the file does not exist yet.
func (s *Store) open() (f *excelize.File, created bool, err error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SetSheetName("Sheet1", dashboardSheet); err != nil {
			return nil, false, fmt.Errorf("naming dashboard sheet: %w", err)
		}
		return f, true, nil
	}

	f, err = excelize.OpenFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	return f, false, nil
}

// sheetStyles carries the style IDs used across a workbook.
type sheetStyles struct {
	header   int
	currency int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	numFmt := gbpNumFmt
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("creating header style: %w", err)
	}
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("creating currency style: %w", err)
	}
	return sheetStyles{header: header, currency: currency}, nil
}

// ensureMonthSheet creates the monthly sheet with its category block headers
// if it does not exist yet.
func (s *Store) ensureMonthSheet(f *excelize.File, sheet string, styles sheetStyles) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("looking up sheet %s: %w", sheet, err)
	}
	if idx >= 0 {
		return nil
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	for i, category := range model.Categories {
		base := i*colsPerCategory + 1
		cells := []struct {
			col, row int
			value    string
		}{
			{base, 1, category},
			{base, 2, "Date"},
			{base + 1, 2, "Description"},
			{base + 2, 2, "Cost"},
		}
		for _, c := range cells {
			if err := setCell(f, sheet, c.col, c.row, c.value); err != nil {
				return err
			}
		}

		first, err := cellName(base, 1)
		if err != nil {
			return err
		}
		last, err := cellName(base+colsPerCategory-1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, styles.header); err != nil {
			return fmt.Errorf("styling headers on %s: %w", sheet, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(model.Categories) * colsPerCategory)
	if err != nil {
		return fmt.Errorf("resolving last column: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return fmt.Errorf("setting column widths on %s: %w", sheet, err)
	}
	return nil
}

// blockLength counts the existing data rows in a category's block.
func blockLength(f *excelize.File, sheet, category string) (int, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	col := model.CategoryIndex(category) * colsPerCategory
	n := 0
	for i := firstDataRow - 1; i < len(rows); i++ {
		if col >= len(rows[i]) || strings.TrimSpace(rows[i][col]) == "" {
			break
		}
		n++
	}
	return n, nil
}

func writeTransaction(f *excelize.File, sheet string, row int, t model.Transaction, styles sheetStyles) error {
	base := model.CategoryIndex(t.Category)*colsPerCategory + 1

	if err := setCell(f, sheet, base, row, t.DateISO()); err != nil {
		return err
	}
	if err := setCell(f, sheet, base+1, row, t.Description); err != nil {
		return err
	}

	costCell, err := cellName(base+2, row)
	if err != nil {
		return err
	}
	cost, _ := t.Cost.Round(2).Float64()
	if err := f.SetCellValue(sheet, costCell, cost); err != nil {
		return fmt.Errorf("writing cell %s on %s: %w", costCell, sheet, err)
	}
	if err := f.SetCellStyle(sheet, costCell, costCell, styles.currency); err != nil {
		return fmt.Errorf("styling cell %s on %s: %w", costCell, sheet, err)
	}
	return nil
}

// readAll walks every monthly sheet and reconstructs the stored
// transactions, category by category block.
func readAll(f *excelize.File) ([]model.Transaction, error) {
	var txns []model.Transaction
	for _, sheet := range f.GetSheetList() {
		if sheet == dashboardSheet {
			continue
		}
		if _, err := ParseSheetName(sheet); err != nil {
			continue
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}

		for i, category := range model.Categories {
			txns = append(txns, readBlock(rows, i*colsPerCategory, category)...)
		}
	}
	return txns, nil
}

// readBlock reads one category block until its first empty date cell. Rows
// whose date will not parse are skipped; unparsable costs coerce to zero.
func readBlock(rows [][]string, col int, category string) []model.Transaction {
	var txns []model.Transaction
	for i := firstDataRow - 1; i < len(rows); i++ {
		row := rows[i]
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			break
		}

		date, ok := parseStoredDate(row[col])
		if !ok {
			continue
		}

		desc := ""
		if col+1 < len(row) {
			desc = row[col+1]
		}
		cost := ""
		if col+2 < len(row) {
			cost = row[col+2]
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Description: desc,
			Cost:        normalize.ParseCost(cost),
			Category:    category,
		})
	}
	return txns
}

// parseStoredDate reads a date cell written by this store. Cells edited by
// hand into other shapes are tolerated if they still parse day-first.
func parseStoredDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(model.DateLayout, s); err == nil {
		return d, true
	}
	if d, err := time.Parse("2/1/2006", s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	name, err := cellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, name, value); err != nil {
		return fmt.Errorf("writing cell %s on %s: %w", name, sheet, err)
	}
	return nil
}

func cellName(col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("resolving cell (%d,%d): %w", col, row, err)
	}
	return name, nil
}

func save(f *excelize.File) error {
	if err := f.Save(); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

func saveAs(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving ledger %s: %w", path, err)
	}
	return nil
}
