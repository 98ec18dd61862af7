package extract

import "github.com/VeteranWolfy/track-finance/internal/model"

// Status classifies the outcome of extracting one line or row.
type Status int

const (
	// StatusOk means a transaction was produced.
	StatusOk Status = iota
	// StatusSkipped means the unit did not look like a transaction and was
	// passed over without error.
	StatusSkipped
	// StatusFailed means the unit looked like a transaction but could not be
	// parsed into one.
	StatusFailed
)

// Result is the outcome of extracting a single line or row. Skips and
// failures carry a reason so callers can log them without treating them as
// errors.
type Result struct {
	Status      Status
	Transaction model.Transaction
	Reason      string
}

func ok(t model.Transaction) Result {
	return Result{Status: StatusOk, Transaction: t}
}

func skipped(reason string) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

func failed(reason string) Result {
	return Result{Status: StatusFailed, Reason: reason}
}

// Transactions collects the transactions from the Ok results.
func Transactions(results []Result) []model.Transaction {
	var txns []model.Transaction
	for _, r := range results {
		if r.Status == StatusOk {
			txns = append(txns, r.Transaction)
		}
	}
	return txns
}

// CountSkipped returns how many results were skipped or failed.
func CountSkipped(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Status != StatusOk {
			n++
		}
	}
	return n
}
