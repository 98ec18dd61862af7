package extract

import (
	"errors"
	"strings"

	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/patterns"
)

// ErrUnrecognizedLayout is returned when a table's date, amount, and
// description columns cannot all be identified.
var ErrUnrecognizedLayout = errors.New("unrecognized table layout")

// descLengthThreshold is the mean cell length above which a column is taken
// to be the description column.
const descLengthThreshold = 20

// Table is a generic rows-by-columns structure of strings, as produced by
// PDF table extraction or spreadsheet readers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FromTable extracts candidate transactions from a table with unknown column
// roles. Columns are classified by content: a column with any cell matching
// the primary date pattern is the date column, one with a currency-decimal
// cell is the amount column, and one whose mean cell length exceeds the
// threshold is the description column. If any role stays unresolved the
// whole table is rejected with ErrUnrecognizedLayout. Sign is inferred from
// the description: expense-pattern match means negative, otherwise positive.
func FromTable(t Table) ([]Result, error) {
	dateCol, amountCol, descCol := classifyColumns(t)
	if dateCol < 0 || amountCol < 0 || descCol < 0 {
		return nil, ErrUnrecognizedLayout
	}

	var results []Result
	for _, row := range t.Rows {
		results = append(results, extractRow(row, dateCol, amountCol, descCol))
	}
	return results, nil
}

func classifyColumns(t Table) (dateCol, amountCol, descCol int) {
	dateCol, amountCol, descCol = -1, -1, -1
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	for col := 0; col < cols; col++ {
		switch {
		case dateCol < 0 && columnMatches(t.Rows, col, patterns.PrimaryDate.MatchString):
			dateCol = col
		case amountCol < 0 && col != dateCol && columnMatches(t.Rows, col, patterns.CurrencyAmount.MatchString):
			amountCol = col
		case descCol < 0 && col != dateCol && col != amountCol && meanLength(t.Rows, col) > descLengthThreshold:
			descCol = col
		}
	}
	return dateCol, amountCol, descCol
}

func columnMatches(rows [][]string, col int, match func(string) bool) bool {
	for _, row := range rows {
		if col < len(row) && match(row[col]) {
			return true
		}
	}
	return false
}

func meanLength(rows [][]string, col int) float64 {
	if len(rows) == 0 {
		return 0
	}
	total := 0
	for _, row := range rows {
		if col < len(row) {
			total += len(row[col])
		}
	}
	return float64(total) / float64(len(rows))
}

func extractRow(row []string, dateCol, amountCol, descCol int) Result {
	if dateCol >= len(row) || amountCol >= len(row) || descCol >= len(row) {
		return skipped("short row")
	}

	date, _, found := patterns.FindDate(row[dateCol])
	if !found {
		return skipped("no date in " + row[dateCol])
	}

	m := patterns.CurrencyAmount.FindStringSubmatch(row[amountCol])
	if m == nil {
		return skipped("no amount in " + row[amountCol])
	}
	amount, err := parseAmount(m[1])
	if err != nil {
		return failed("bad amount " + m[1])
	}

	desc := strings.TrimSpace(row[descCol])
	if patterns.IsExpense(desc) {
		amount = amount.Neg()
	}

	txn := model.Transaction{Date: date, Description: desc, Cost: amount}
	if err := txn.Validate(); err != nil {
		return skipped(err.Error())
	}
	return ok(txn)
}
