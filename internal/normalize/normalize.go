// Package normalize maps tables with arbitrary column headers and value
// encodings onto the canonical {date, description, cost} schema.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VeteranWolfy/track-finance/internal/extract"
	"github.com/VeteranWolfy/track-finance/internal/model"
)

// Canonical field names.
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldCost        = "cost"
)

// columnSynonyms maps known header spellings to canonical fields. Lookup is
// case-insensitive on the trimmed header.
var columnSynonyms = map[string]string{
	"date":                    FieldDate,
	"transaction date":        FieldDate,
	"trans date":              FieldDate,
	"description":             FieldDescription,
	"transaction description": FieldDescription,
	"details":                 FieldDescription,
	"merchant":                FieldDescription,
	"amount":                  FieldCost,
	"value":                   FieldCost,
	"billing amount":          FieldCost,
	"transaction amount":      FieldCost,
}

// dateLayouts is the date-parse cascade, tried in order. The first layout
// that parses the whole column wins; otherwise the layout parsing the most
// cells wins and the failing rows are skipped.
var dateLayouts = []string{
	"2/1/2006", // day-first, tolerant of single digits
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/06",
	"02-01-06",
}

// Profile adjusts normalization for a known statement format. The zero
// profile applies no adjustments.
type Profile struct {
	Name                string
	ExcludeDescriptions []string // drop rows containing any of these (case-insensitive)
	SpendPositive       bool     // statement lists spend as positive; force costs negative
}

// MissingColumnsError reports which canonical columns a table lacked after
// header mapping.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Normalize converts a headed table into transactions on the canonical
// schema, also returning how many rows were dropped. Unmapped columns are
// dropped. The error is a *MissingColumnsError when any of date,
// description, or cost cannot be located; per-row parse problems and profile
// exclusions only skip the affected row.
func Normalize(t extract.Table, profile *Profile) ([]model.Transaction, int, error) {
	cols, err := mapColumns(t.Headers)
	if err != nil {
		return nil, 0, err
	}

	parseDate := pickDateLayout(t.Rows, cols[FieldDate])

	var txns []model.Transaction
	skipped := 0
	for _, row := range t.Rows {
		date, ok := parseDate(cell(row, cols[FieldDate]))
		if !ok {
			skipped++
			continue
		}

		desc := strings.TrimSpace(cell(row, cols[FieldDescription]))
		cost := ParseCost(cell(row, cols[FieldCost]))

		if profile != nil {
			if excluded(desc, profile.ExcludeDescriptions) {
				skipped++
				continue
			}
			if profile.SpendPositive {
				cost = cost.Abs().Neg()
			}
		}

		txn := model.Transaction{Date: date, Description: desc, Cost: cost}
		if err := txn.Validate(); err != nil {
			skipped++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, skipped, nil
}

// ApplyProfile applies a profile's adjustments to transactions extracted
// outside the header-mapping path: excluded descriptions are dropped and
// spend-positive costs are forced negative. It returns the surviving
// transactions and how many were dropped. A nil profile changes nothing.
func ApplyProfile(txns []model.Transaction, profile *Profile) ([]model.Transaction, int) {
	if profile == nil {
		return txns, 0
	}

	var kept []model.Transaction
	dropped := 0
	for _, t := range txns {
		if excluded(t.Description, profile.ExcludeDescriptions) {
			dropped++
			continue
		}
		if profile.SpendPositive {
			t.Cost = t.Cost.Abs().Neg()
		}
		kept = append(kept, t)
	}
	return kept, dropped
}

// mapColumns resolves header synonyms to canonical column indexes. When two
// headers map to the same field, the first one wins.
func mapColumns(headers []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range headers {
		canonical, ok := columnSynonyms[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, taken := cols[canonical]; !taken {
			cols[canonical] = i
		}
	}

	var missing []string
	for _, f := range []string{FieldDate, FieldDescription, FieldCost} {
		if _, ok := cols[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

// pickDateLayout selects one layout for the whole column and returns a
// parser bound to it.
func pickDateLayout(rows [][]string, dateCol int) func(string) (time.Time, bool) {
	best := dateLayouts[0]
	bestHits := -1
	for _, layout := range dateLayouts {
		hits, total := 0, 0
		for _, row := range rows {
			s := strings.TrimSpace(cell(row, dateCol))
			if s == "" {
				continue
			}
			total++
			if _, err := time.Parse(layout, s); err == nil {
				hits++
			}
		}
		if hits == total && total > 0 {
			best = layout
			break
		}
		if hits > bestHits {
			best, bestHits = layout, hits
		}
	}

	layout := best
	return func(s string) (time.Time, bool) {
		d, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
}

// ParseCost coerces a raw cell value into a decimal cost. Currency symbols
// and thousands separators are stripped; anything still unparsable becomes
// zero rather than an error.
func ParseCost(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func excluded(desc string, needles []string) bool {
	upper := strings.ToUpper(desc)
	for _, n := range needles {
		if strings.Contains(upper, strings.ToUpper(n)) {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
