package dedupe

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/VeteranWolfy/track-finance/internal/model"
)

func txn(day int, desc, cost string) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Cost:        decimal.RequireFromString(cost),
	}
}

func TestIsDuplicate_Tolerance(t *testing.T) {
	existing := []model.Transaction{txn(5, "CARD PAYMENT TO TESCO", "10.00")}

	assert.True(t, IsDuplicate(txn(5, "CARD PAYMENT TO TESCO", "10.005"), existing))
	assert.False(t, IsDuplicate(txn(5, "CARD PAYMENT TO TESCO", "10.02"), existing))
}

func TestIsDuplicate_EmptyReference(t *testing.T) {
	assert.False(t, IsDuplicate(txn(5, "ANYTHING", "1.00"), nil))
}

func TestFilter_SplitsFreshAndDuplicates(t *testing.T) {
	existing := []model.Transaction{
		txn(5, "CARD PAYMENT TO TESCO", "10.00"),
		txn(6, "NETFLIX.COM", "9.99"),
	}
	candidates := []model.Transaction{
		txn(5, "CARD PAYMENT TO TESCO", "10.00"), // duplicate
		txn(7, "CARD PAYMENT TO TESCO", "10.00"), // different date
		txn(6, "NETFLIX.COM", "9.99"),            // duplicate
	}

	fresh, duplicates := Filter(candidates, existing)
	assert.Equal(t, 2, duplicates)
	assert.Len(t, fresh, 1)
	assert.Equal(t, "2024-03-07", fresh[0].DateISO())
}

func TestFilter_SelfImportIsIdempotent(t *testing.T) {
	txns := []model.Transaction{
		txn(5, "CARD PAYMENT TO TESCO", "10.00"),
		txn(6, "NETFLIX.COM", "9.99"),
		txn(7, "SALARY ACME", "900.00"),
	}

	fresh, duplicates := Filter(txns, txns)
	assert.Nil(t, fresh)
	assert.Equal(t, len(txns), duplicates)
}

func TestFilter_NoReferenceKeepsAll(t *testing.T) {
	candidates := []model.Transaction{txn(5, "A", "1.00"), txn(6, "B", "2.00")}
	fresh, duplicates := Filter(candidates, nil)
	assert.Len(t, fresh, 2)
	assert.Zero(t, duplicates)
}
