package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical textual date form used throughout the ledger.
const DateLayout = "2006-01-02"

// duplicateTolerance is the maximum cost difference (exclusive) under which
// two otherwise identical transactions count as the same.
var duplicateTolerance = decimal.New(1, -2) // 0.01

// Transaction represents one normalized bank-statement row.
type Transaction struct {
	Date        time.Time
	Description string
	Cost        decimal.Decimal // negative = expense, positive = income
	Category    string          // empty until categorized
}

// DateISO returns the date in canonical YYYY-MM-DD form.
func (t Transaction) DateISO() string {
	return t.Date.Format(DateLayout)
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction has no date")
	}
	if strings.TrimSpace(t.Description) == "" {
		return errors.New("transaction has empty description")
	}
	return nil
}

// DuplicateOf reports whether t and other are the same transaction under the
// duplicate-equality relation: exact date, exact description, cost within
// 0.01. Category is ignored so an uncategorized candidate still matches its
// stored counterpart.
func (t Transaction) DuplicateOf(other Transaction) bool {
	if t.DateISO() != other.DateISO() {
		return false
	}
	if t.Description != other.Description {
		return false
	}
	return t.Cost.Sub(other.Cost).Abs().LessThan(duplicateTolerance)
}
