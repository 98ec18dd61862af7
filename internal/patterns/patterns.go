// Package patterns holds the static text-matching rules used to pull
// transactions out of statement text: date formats, expense/income markers,
// and category classification rules. All rule sets are ordered and evaluated
// first-match-wins.
package patterns

import (
	"regexp"
	"strings"
	"time"
)

// DatePattern pairs a date-detecting regexp with the time layout that parses
// its matches.
type DatePattern struct {
	Regexp *regexp.Regexp
	Layout string
}

// DatePatterns lists recognized statement date formats in priority order.
// The first pattern that matches a line wins.
var DatePatterns = []DatePattern{
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "02/01/2006"},
	{regexp.MustCompile(`\d{2}-\d{2}-\d{4}`), "02-01-2006"},
	{regexp.MustCompile(`\d{2}\s+[A-Za-z]{3}\s+\d{4}`), "02 Jan 2006"},
}

// PrimaryDate is the highest-priority date pattern, used for column role
// detection in tabular sources.
var PrimaryDate = DatePatterns[0].Regexp

var expenseMarkers = []string{
	`CARD PAYMENT TO`,
	`DIRECT DEBIT`,
	`FASTER PAYMENT TO`,
	`ATM WITHDRAWAL`,
	`STANDING ORDER TO`,
}

// ExpenseMarkers mark text as describing an expense, with no amount
// required. Priority order; first match wins.
var ExpenseMarkers = compileMarkers(expenseMarkers)

// ExpensePatterns mark a line as an expense and capture its amount.
var ExpensePatterns = compileAmountPatterns(expenseMarkers)

// IncomePatterns mark a line as income and capture its amount. Checked only
// after every expense pattern has failed.
var IncomePatterns = compileAmountPatterns([]string{
	`FASTER PAYMENT FROM`,
	`DEPOSIT`,
	`SALARY`,
})

// CurrencyAmount matches a GBP-formatted decimal amount, capturing the
// numeric part.
var CurrencyAmount = regexp.MustCompile(`£?(\d+(?:,\d{3})*\.\d{2})`)

// BareDecimal matches a plain two-decimal number; used when stripping
// amounts out of descriptions.
var BareDecimal = regexp.MustCompile(`\d+\.\d{2}`)

var multiSpace = regexp.MustCompile(`\s+`)

// FindDate scans s against DatePatterns in priority order and returns the
// parsed date together with the matched substring.
func FindDate(s string) (time.Time, string, bool) {
	for _, dp := range DatePatterns {
		m := dp.Regexp.FindString(s)
		if m == "" {
			continue
		}
		// "DD Mon YYYY" tolerates runs of whitespace the layout does not.
		normalized := multiSpace.ReplaceAllString(m, " ")
		d, err := time.Parse(dp.Layout, normalized)
		if err != nil {
			continue
		}
		return d, m, true
	}
	return time.Time{}, "", false
}

// MatchExpense returns the captured amount of the first expense pattern
// matching s.
func MatchExpense(s string) (string, bool) {
	return firstCapture(ExpensePatterns, s)
}

// MatchIncome returns the captured amount of the first income pattern
// matching s.
func MatchIncome(s string) (string, bool) {
	return firstCapture(IncomePatterns, s)
}

// IsExpense reports whether any expense marker matches s, ignoring whether
// an amount is present on the line itself.
func IsExpense(s string) bool {
	for _, re := range ExpenseMarkers {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func compileMarkers(markers []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(markers))
	for i, m := range markers {
		res[i] = regexp.MustCompile(m)
	}
	return res
}

func compileAmountPatterns(markers []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(markers))
	for i, m := range markers {
		res[i] = regexp.MustCompile(m + `.*?(\d+\.\d{2})`)
	}
	return res
}

func firstCapture(res []*regexp.Regexp, s string) (string, bool) {
	for _, re := range res {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// StripNonDescription removes date substrings and bare decimal amounts from
// a statement line, leaving the description text.
func StripNonDescription(line string) string {
	s := line
	for _, dp := range DatePatterns {
		s = dp.Regexp.ReplaceAllString(s, "")
	}
	s = BareDecimal.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
