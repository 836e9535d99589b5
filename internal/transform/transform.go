package transform

import (
	"fmt"
	"math"

	"banks-etl/internal/banks"

	"github.com/shopspring/decimal"
)

// MissingRateError is returned when a requested currency has no rate.
type MissingRateError struct {
	Currency string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %q", e.Currency)
}

// InvalidRateError is returned when a rate is NaN or infinite.
type InvalidRateError struct {
	Currency string
	Rate     float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("exchange rate for currency %q is not a finite number: %v", e.Currency, e.Rate)
}

// InvalidValueError is returned when a record's value is NaN or infinite.
type InvalidValueError struct {
	// Row is 1-based.
	Row   int
	Name  string
	Value float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("row %d (%q): value is not a finite number: %v", e.Row, e.Name, e.Value)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Transform adds one converted column per currency, in the order given.
// The input table is left untouched.
func Transform(table banks.Table, rates banks.Rates, currencies []string) (banks.EnrichedTable, error) {
	factors := make([]decimal.Decimal, len(currencies))
	columns := make([]string, len(currencies))
	for i, currency := range currencies {
		rate, ok := rates[currency]
		if !ok {
			return banks.EnrichedTable{}, &MissingRateError{Currency: currency}
		}
		if !finite(rate) {
			return banks.EnrichedTable{}, &InvalidRateError{Currency: currency, Rate: rate}
		}
		factors[i] = decimal.NewFromFloat(rate)
		columns[i] = banks.CurrencyColumn(table.Columns[1], currency)
	}

	for i, record := range table.Rows {
		if !finite(record.MarketCapUSD) {
			return banks.EnrichedTable{}, &InvalidValueError{Row: i + 1, Name: record.Name, Value: record.MarketCapUSD}
		}
	}

	out := banks.EnrichedTable{
		Columns:         table.Columns,
		Currencies:      append([]string(nil), currencies...),
		CurrencyColumns: columns,
		Rows:            make([]banks.EnrichedRow, len(table.Rows)),
	}
	for i, record := range table.Rows {
		converted := make([]float64, len(factors))
		for j, factor := range factors {
			converted[j] = Convert(record.MarketCapUSD, factor)
		}
		out.Rows[i] = banks.EnrichedRow{Record: record, Converted: converted}
	}
	return out, nil
}

// Convert multiplies usd by rate and rounds half away from zero to 2 places.
// Both operands are taken at their shortest decimal representation, so
// 50.25 * 0.9 is 45.225 and rounds to 45.23. usd must be finite.
func Convert(usd float64, rate decimal.Decimal) float64 {
	return decimal.NewFromFloat(usd).Mul(rate).Round(2).InexactFloat64()
}
