package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTransaction_DateISO(t *testing.T) {
	txn := Transaction{Date: date(2024, time.March, 5)}
	assert.Equal(t, "2024-03-05", txn.DateISO())
}

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		Date:        date(2024, time.March, 5),
		Description: "CARD PAYMENT TO TESCO",
		Cost:        decimal.NewFromFloat(-12.34),
	}
	assert.NoError(t, valid.Validate())

	noDate := valid
	noDate.Date = time.Time{}
	assert.Error(t, noDate.Validate())

	blankDesc := valid
	blankDesc.Description = "   "
	assert.Error(t, blankDesc.Validate())
}

func TestTransaction_DuplicateOf_Tolerance(t *testing.T) {
	base := Transaction{
		Date:        date(2024, time.March, 5),
		Description: "CARD PAYMENT TO TESCO",
		Cost:        decimal.RequireFromString("10.00"),
	}

	near := base
	near.Cost = decimal.RequireFromString("10.005")
	assert.True(t, base.DuplicateOf(near))
	assert.True(t, near.DuplicateOf(base))

	far := base
	far.Cost = decimal.RequireFromString("10.02")
	assert.False(t, base.DuplicateOf(far))

	// Exactly at the tolerance boundary is not a duplicate.
	edge := base
	edge.Cost = decimal.RequireFromString("10.01")
	assert.False(t, base.DuplicateOf(edge))
}

func TestTransaction_DuplicateOf_StrictTextMatch(t *testing.T) {
	base := Transaction{
		Date:        date(2024, time.March, 5),
		Description: "CARD PAYMENT TO TESCO",
		Cost:        decimal.RequireFromString("10.00"),
	}

	otherDesc := base
	otherDesc.Description = "CARD PAYMENT TO TESCOS"
	assert.False(t, base.DuplicateOf(otherDesc))

	otherDate := base
	otherDate.Date = date(2024, time.March, 6)
	assert.False(t, base.DuplicateOf(otherDate))
}

func TestTransaction_DuplicateOf_IgnoresCategory(t *testing.T) {
	a := Transaction{
		Date:        date(2024, time.March, 5),
		Description: "TESCO",
		Cost:        decimal.RequireFromString("10.00"),
		Category:    "Food",
	}
	b := a
	b.Category = ""
	assert.True(t, a.DuplicateOf(b))
}
