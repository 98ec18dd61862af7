// Package extract turns raw statement sources — OCR text lines or generic
// tables — into candidate transactions.
package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VeteranWolfy/track-finance/internal/model"
	"github.com/VeteranWolfy/track-finance/internal/patterns"
)

// FromLines extracts candidate transactions from raw statement text, one
// Result per non-blank line. A line must carry a recognizable date and match
// an expense or income pattern; anything else is skipped, never fatal.
func FromLines(lines []string) []Result {
	var results []Result
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, extractLine(line))
	}
	return results
}

func extractLine(line string) Result {
	date, _, found := patterns.FindDate(line)
	if !found {
		return skipped("no date")
	}

	amountStr, isExpense := patterns.MatchExpense(line)
	if !isExpense {
		var isIncome bool
		amountStr, isIncome = patterns.MatchIncome(line)
		if !isIncome {
			return skipped("no expense or income pattern")
		}
	}

	amount, err := parseAmount(amountStr)
	if err != nil {
		return failed("bad amount " + amountStr)
	}
	if isExpense {
		amount = amount.Neg()
	}

	desc := patterns.StripNonDescription(line)
	txn := model.Transaction{Date: date, Description: desc, Cost: amount}
	if err := txn.Validate(); err != nil {
		return skipped(err.Error())
	}
	return ok(txn)
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}
