package banks

import "strings"

// Record is a single ranked entry scraped from the source page.
type Record struct {
	Name         string
	MarketCapUSD float64
}

// Table holds records in the order they appear on the page, which is also
// their rank order.
type Table struct {
	// Columns are the name column and the value column, in that order.
	Columns [2]string
	Rows    []Record
}

// Rates maps a currency code to the amount of that currency one USD buys.
type Rates map[string]float64

type EnrichedRow struct {
	Record
	// Converted[i] is the value denominated in EnrichedTable.Currencies[i].
	Converted []float64
}

type EnrichedTable struct {
	Columns         [2]string
	Currencies      []string
	CurrencyColumns []string
	Rows            []EnrichedRow
}

// Header returns every column name in output order.
func (t EnrichedTable) Header() []string {
	header := make([]string, 0, 2+len(t.CurrencyColumns))
	header = append(header, t.Columns[0], t.Columns[1])
	header = append(header, t.CurrencyColumns...)
	return header
}

// Values returns the numeric cells of a row in header order, without the name.
func (r EnrichedRow) Values() []float64 {
	values := make([]float64, 0, 1+len(r.Converted))
	values = append(values, r.MarketCapUSD)
	values = append(values, r.Converted...)
	return values
}

// CurrencyColumn derives the name of a converted column from the value
// column, carrying its unit suffix over: "MC_USD_Billion" becomes
// "MC_GBP_Billion". Columns without a USD token get the code appended.
func CurrencyColumn(valueColumn, currency string) string {
	parts := strings.Split(valueColumn, "_")
	for i, p := range parts {
		if p == "USD" {
			parts[i] = currency
			return strings.Join(parts, "_")
		}
	}
	return valueColumn + "_" + currency
}
