package ledger

import (
	"fmt"
	"time"
)

// sheetNameLayout is the monthly partition naming scheme, e.g. "March 2024".
const sheetNameLayout = "January 2006"

// SheetName returns the monthly sheet name for a date.
func SheetName(date time.Time) string {
	return date.Format(sheetNameLayout)
}

// ParseSheetName parses a monthly sheet name back into the first day of that
// month.
func ParseSheetName(name string) (time.Time, error) {
	t, err := time.Parse(sheetNameLayout, name)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month sheet name %q: %w", name, err)
	}
	return t, nil
}
