package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeteranWolfy/track-finance/internal/extract"
	"github.com/VeteranWolfy/track-finance/internal/model"
)

func creditCardProfile() *Profile {
	return &Profile{
		Name:                "credit-card",
		ExcludeDescriptions: []string{"DIRECT DEBIT PAYMENT"},
		SpendPositive:       true,
	}
}

func TestNormalize_CreditCardExport(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Transaction Date", "Merchant", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "TESCO EXPRESS", "15.50"},
		},
	}

	txns, skipped, err := Normalize(table, creditCardProfile())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Zero(t, skipped)

	assert.Equal(t, "2024-02-01", txns[0].DateISO())
	assert.Equal(t, "TESCO EXPRESS", txns[0].Description)
	assert.Equal(t, "-15.50", txns[0].Cost.StringFixed(2))
}

func TestNormalize_ExcludesDirectDebitPayments(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Date", "Merchant", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "DIRECT DEBIT PAYMENT - THANK YOU", "120.00"},
			{"02/02/2024", "COSTA COFFEE", "3.20"},
		},
	}

	txns, skipped, err := Normalize(table, creditCardProfile())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "COSTA COFFEE", txns[0].Description)
}

func TestNormalize_SpendPositiveForcesNegative(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Date", "Merchant", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "SHOP A", "10.00"},
			{"01/02/2024", "SHOP B", "-10.00"},
		},
	}

	txns, skipped, err := Normalize(table, creditCardProfile())
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Zero(t, skipped)
	assert.Equal(t, "-10.00", txns[0].Cost.StringFixed(2))
	assert.Equal(t, "-10.00", txns[1].Cost.StringFixed(2))
}

func TestNormalize_MissingColumns(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Transaction Date", "Reference"},
		Rows:    [][]string{{"01/02/2024", "ref1"}},
	}

	_, _, err := Normalize(table, nil)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"description", "cost"}, missing.Columns)
}

func TestNormalize_HeaderSynonyms(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Trans Date", "Details", "Billing Amount", "Ignored"},
		Rows: [][]string{
			{"03/04/2024", "WATERSTONES", "£8.99", "x"},
		},
	}

	txns, skipped, err := Normalize(table, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "2024-04-03", txns[0].DateISO())
	assert.Equal(t, "8.99", txns[0].Cost.StringFixed(2))
}

func TestNormalize_FirstHeaderWinsOnCollision(t *testing.T) {
	// Both "Description" and "Merchant" map to description; the earlier
	// column must win.
	table := extract.Table{
		Headers: []string{"Date", "Description", "Merchant", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "FULL NARRATIVE", "SHORT", "1.00"},
		},
	}

	txns, skipped, err := Normalize(table, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "FULL NARRATIVE", txns[0].Description)
}

func TestNormalize_DateFormatCascade(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"day first slash", "01/02/2024", "2024-02-01"},
		{"day first dash", "01-02-2024", "2024-02-01"},
		{"iso", "2024-02-01", "2024-02-01"},
		{"two digit year", "01/02/24", "2024-02-01"},
		{"single digit day first", "1/2/2024", "2024-02-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := extract.Table{
				Headers: []string{"Date", "Description", "Amount"},
				Rows:    [][]string{{tc.raw, "SOME SHOP", "5.00"}},
			}
			txns, skipped, err := Normalize(table, nil)
			require.NoError(t, err)
			require.Len(t, txns, 1)
			assert.Zero(t, skipped)
			assert.Equal(t, tc.want, txns[0].DateISO())
		})
	}
}

func TestNormalize_UnparsableDateRowSkipped(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "GOOD ROW", "5.00"},
			{"pending", "BAD ROW", "5.00"},
		},
	}

	txns, skipped, err := Normalize(table, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "GOOD ROW", txns[0].Description)
}

func TestNormalize_UnparsableCostBecomesZero(t *testing.T) {
	table := extract.Table{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"01/02/2024", "MYSTERY CHARGE", "n/a"},
		},
	}

	txns, skipped, err := Normalize(table, nil)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Zero(t, skipped)
	assert.True(t, txns[0].Cost.IsZero())
}

func TestApplyProfile(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Description: "TESCO EXPRESS",
			Cost:        decimal.RequireFromString("15.50"),
		},
		{
			Date:        time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
			Description: "DIRECT DEBIT PAYMENT - THANK YOU",
			Cost:        decimal.RequireFromString("120.00"),
		},
	}

	kept, dropped := ApplyProfile(txns, creditCardProfile())
	require.Len(t, kept, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, "TESCO EXPRESS", kept[0].Description)
	assert.Equal(t, "-15.50", kept[0].Cost.StringFixed(2))
}

func TestApplyProfile_NilProfile(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Description: "TESCO EXPRESS",
			Cost:        decimal.RequireFromString("15.50"),
		},
	}

	kept, dropped := ApplyProfile(txns, nil)
	assert.Equal(t, txns, kept)
	assert.Zero(t, dropped)
}

func TestParseCost(t *testing.T) {
	assert.Equal(t, "1234.56", ParseCost("£1,234.56").StringFixed(2))
	assert.Equal(t, "-15.50", ParseCost("-15.50").StringFixed(2))
	assert.True(t, ParseCost("garbage").IsZero())
	assert.True(t, ParseCost("").IsZero())
}
