package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDate_SlashFormat(t *testing.T) {
	d, matched, ok := FindDate("05/03/2024 CARD PAYMENT TO TESCO 12.34")
	require.True(t, ok)
	assert.Equal(t, "05/03/2024", matched)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestFindDate_DashFormat(t *testing.T) {
	d, matched, ok := FindDate("05-03-2024 DIRECT DEBIT ENERGY 40.00")
	require.True(t, ok)
	assert.Equal(t, "05-03-2024", matched)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestFindDate_MonthNameFormat(t *testing.T) {
	d, matched, ok := FindDate("05 Mar 2024 ATM WITHDRAWAL 20.00")
	require.True(t, ok)
	assert.Equal(t, "05 Mar 2024", matched)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestFindDate_MonthNameExtraSpaces(t *testing.T) {
	d, _, ok := FindDate("05  Mar  2024 ATM WITHDRAWAL 20.00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)
}

func TestFindDate_PriorityOrder(t *testing.T) {
	// Both slash and dash dates present: the slash pattern is declared first
	// and must win.
	d, matched, ok := FindDate("10-01-2020 ref 05/03/2024 CARD PAYMENT")
	require.True(t, ok)
	assert.Equal(t, "05/03/2024", matched)
	assert.Equal(t, 2024, d.Year())
}

func TestFindDate_NoMatch(t *testing.T) {
	_, _, ok := FindDate("OPENING BALANCE 100.00")
	assert.False(t, ok)
}

func TestMatchExpense(t *testing.T) {
	amount, ok := MatchExpense("05/03/2024 CARD PAYMENT TO TESCO STORES 12.34")
	require.True(t, ok)
	assert.Equal(t, "12.34", amount)
}

func TestMatchExpense_PriorityOrder(t *testing.T) {
	// A line matching both CARD PAYMENT TO and DIRECT DEBIT resolves via the
	// earlier pattern and captures its amount.
	amount, ok := MatchExpense("CARD PAYMENT TO ACME 10.00 DIRECT DEBIT 99.99")
	require.True(t, ok)
	assert.Equal(t, "10.00", amount)
}

func TestMatchIncome(t *testing.T) {
	amount, ok := MatchIncome("05/03/2024 FASTER PAYMENT FROM EMPLOYER 50.00")
	require.True(t, ok)
	assert.Equal(t, "50.00", amount)

	_, ok = MatchIncome("05/03/2024 CARD PAYMENT TO TESCO 12.34")
	assert.False(t, ok)
}

func TestIsExpense(t *testing.T) {
	assert.True(t, IsExpense("STANDING ORDER TO LANDLORD"))
	assert.False(t, IsExpense("FASTER PAYMENT FROM EMPLOYER"))
}

func TestStripNonDescription(t *testing.T) {
	desc := StripNonDescription("05/03/2024 CARD PAYMENT TO TESCO 12.34")
	assert.Equal(t, "CARD PAYMENT TO TESCO", desc)
}

func TestCurrencyAmount(t *testing.T) {
	m := CurrencyAmount.FindStringSubmatch("£1,234.56")
	require.NotNil(t, m)
	assert.Equal(t, "1,234.56", m[1])

	m = CurrencyAmount.FindStringSubmatch("15.50")
	require.NotNil(t, m)
	assert.Equal(t, "15.50", m[1])

	assert.Nil(t, CurrencyAmount.FindStringSubmatch("no amount here"))
}
