package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/VeteranWolfy/track-finance/internal/model"
)

// rebuildDashboard recomputes the Dashboard sheet as a month-by-category
// matrix of summed costs with row and column totals. It is always a full
// rebuild from the monthly sheets, so manual edits to them are picked up.
func rebuildDashboard(f *excelize.File, styles sheetStyles) error {
	txns, err := readAll(f)
	if err != nil {
		return err
	}

	// month start -> category -> sum
	sums := make(map[time.Time]map[string]decimal.Decimal)
	for _, t := range txns {
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if sums[month] == nil {
			sums[month] = make(map[string]decimal.Decimal)
		}
		sums[month][t.Category] = sums[month][t.Category].Add(t.Cost)
	}

	months := make([]time.Time, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	if err := resetDashboardSheet(f); err != nil {
		return err
	}

	// Header row: Month, one column per category, Monthly Total.
	if err := setCell(f, dashboardSheet, 1, 1, "Month"); err != nil {
		return err
	}
	for i, category := range model.Categories {
		if err := setCell(f, dashboardSheet, i+2, 1, category); err != nil {
			return err
		}
	}
	totalCol := len(model.Categories) + 2
	if err := setCell(f, dashboardSheet, totalCol, 1, "Monthly Total"); err != nil {
		return err
	}

	row := 2
	yearTotals := make(map[string]decimal.Decimal)
	for _, month := range months {
		if err := setCell(f, dashboardSheet, 1, row, SheetName(month)); err != nil {
			return err
		}
		monthTotal := decimal.Zero
		for i, category := range model.Categories {
			v := sums[month][category]
			monthTotal = monthTotal.Add(v)
			yearTotals[category] = yearTotals[category].Add(v)
			if err := setCurrencyCell(f, i+2, row, v, styles); err != nil {
				return err
			}
		}
		if err := setCurrencyCell(f, totalCol, row, monthTotal, styles); err != nil {
			return err
		}
		row++
	}

	// Year Total row.
	if err := setCell(f, dashboardSheet, 1, row, "Year Total"); err != nil {
		return err
	}
	yearTotal := decimal.Zero
	for i, category := range model.Categories {
		v := yearTotals[category]
		yearTotal = yearTotal.Add(v)
		if err := setCurrencyCell(f, i+2, row, v, styles); err != nil {
			return err
		}
	}
	if err := setCurrencyCell(f, totalCol, row, yearTotal, styles); err != nil {
		return err
	}

	return styleDashboard(f, styles, totalCol, row)
}

// resetDashboardSheet drops and recreates the Dashboard sheet so stale rows
// never survive a rebuild.
func resetDashboardSheet(f *excelize.File) error {
	idx, err := f.GetSheetIndex(dashboardSheet)
	if err != nil {
		return fmt.Errorf("looking up dashboard: %w", err)
	}
	if idx >= 0 {
		if err := f.DeleteSheet(dashboardSheet); err != nil {
			return fmt.Errorf("clearing dashboard: %w", err)
		}
	}
	if _, err := f.NewSheet(dashboardSheet); err != nil {
		return fmt.Errorf("creating dashboard: %w", err)
	}

	// NewSheet appends; the dashboard stays the workbook's first sheet.
	if list := f.GetSheetList(); len(list) > 0 && list[0] != dashboardSheet {
		if err := f.MoveSheet(dashboardSheet, list[0]); err != nil {
			return fmt.Errorf("moving dashboard first: %w", err)
		}
	}
	return nil
}

func setCurrencyCell(f *excelize.File, col, row int, v decimal.Decimal, styles sheetStyles) error {
	name, err := cellName(col, row)
	if err != nil {
		return err
	}
	value, _ := v.Round(2).Float64()
	if err := f.SetCellValue(dashboardSheet, name, value); err != nil {
		return fmt.Errorf("writing cell %s on %s: %w", name, dashboardSheet, err)
	}
	if err := f.SetCellStyle(dashboardSheet, name, name, styles.currency); err != nil {
		return fmt.Errorf("styling cell %s on %s: %w", name, dashboardSheet, err)
	}
	return nil
}

func styleDashboard(f *excelize.File, styles sheetStyles, totalCol, lastRow int) error {
	last, err := cellName(totalCol, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(dashboardSheet, "A1", last, styles.header); err != nil {
		return fmt.Errorf("styling dashboard header: %w", err)
	}

	yearCell, err := cellName(1, lastRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(dashboardSheet, yearCell, yearCell, styles.header); err != nil {
		return fmt.Errorf("styling year total label: %w", err)
	}

	lastColName, err := excelize.ColumnNumberToName(totalCol)
	if err != nil {
		return fmt.Errorf("resolving last column: %w", err)
	}
	if err := f.SetColWidth(dashboardSheet, "A", lastColName, columnWidth); err != nil {
		return fmt.Errorf("setting dashboard column widths: %w", err)
	}
	return nil
}
