package source

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/VeteranWolfy/track-finance/internal/extract"
)

// XLSXReader reads the first sheet of a modern Excel workbook into a headed
// table.
type XLSXReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *XLSXReader) Extensions() []string { return []string{"xlsx"} }

// Read parses the workbook's first sheet; the first row is the header.
func (r *XLSXReader) Read(path string) (Input, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Input{}, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Input{}, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Input{}, fmt.Errorf("empty sheet %s in %s", sheets[0], path)
	}

	return Input{
		Kind: KindTable,
		Table: extract.Table{
			Headers: rows[0],
			Rows:    rows[1:],
		},
	}, nil
}

// XLSReader reads the first sheet of a legacy BIFF workbook into a headed
// table.
type XLSReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *XLSReader) Extensions() []string { return []string{"xls"} }

// Read parses the workbook's first sheet; the first row is the header.
func (r *XLSReader) Read(path string) (Input, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return Input{}, fmt.Errorf("opening %s: %w", path, err)
	}
	if wb.NumSheets() == 0 {
		return Input{}, fmt.Errorf("no sheets in %s", path)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return Input{}, fmt.Errorf("unreadable first sheet in %s", path)
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []string
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return Input{}, fmt.Errorf("empty sheet in %s", path)
	}

	return Input{
		Kind: KindTable,
		Table: extract.Table{
			Headers: rows[0],
			Rows:    rows[1:],
		},
	}, nil
}
