package banks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrencyColumn(t *testing.T) {
	testCases := []struct {
		column   string
		currency string
		expected string
	}{
		{column: "MC_USD_Billion", currency: "GBP", expected: "MC_GBP_Billion"},
		{column: "USD", currency: "EUR", expected: "EUR"},
		{column: "MarketCap", currency: "INR", expected: "MarketCap_INR"},
		{column: "USDT_Value", currency: "INR", expected: "USDT_Value_INR"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CurrencyColumn(test.column, test.currency))
	}
}

func TestHeader(t *testing.T) {
	table := EnrichedTable{
		Columns:         [2]string{"Name", "MC_USD_Billion"},
		Currencies:      []string{"GBP", "EUR"},
		CurrencyColumns: []string{"MC_GBP_Billion", "MC_EUR_Billion"},
		Rows: []EnrichedRow{
			{Record: Record{Name: "Bank A", MarketCapUSD: 1}, Converted: []float64{2, 3}},
		},
	}
	require.Equal(t, []string{"Name", "MC_USD_Billion", "MC_GBP_Billion", "MC_EUR_Billion"}, table.Header())
	require.Equal(t, []float64{1, 2, 3}, table.Rows[0].Values())
}
