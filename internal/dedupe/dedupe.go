// Package dedupe suppresses re-imports of transactions already present in a
// persisted ledger.
package dedupe

import "github.com/VeteranWolfy/track-finance/internal/model"

// IsDuplicate reports whether candidate matches any existing transaction
// under the duplicate-equality relation (exact date and description, cost
// within 0.01).
func IsDuplicate(candidate model.Transaction, existing []model.Transaction) bool {
	for _, e := range existing {
		if candidate.DuplicateOf(e) {
			return true
		}
	}
	return false
}

// Filter splits candidates into fresh transactions and a duplicate count,
// preserving candidate order. With no existing transactions every candidate
// is fresh.
func Filter(candidates, existing []model.Transaction) (fresh []model.Transaction, duplicates int) {
	for _, c := range candidates {
		if IsDuplicate(c, existing) {
			duplicates++
			continue
		}
		fresh = append(fresh, c)
	}
	return fresh, duplicates
}
