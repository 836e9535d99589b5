package load

import (
	"banks-etl/internal/banks"

	"github.com/parquet-go/parquet-go"
)

type parquetRow struct {
	Name         string             `parquet:"name"`
	MarketCapUSD float64            `parquet:"market_cap_usd"`
	Converted    map[string]float64 `parquet:"converted"`
}

// SaveToParquet writes a parquet snapshot of the table, converted values are
// keyed by their column name.
func SaveToParquet(table banks.EnrichedTable, path string) error {
	rows := make([]parquetRow, len(table.Rows))
	for i, row := range table.Rows {
		converted := make(map[string]float64, len(row.Converted))
		for j, v := range row.Converted {
			converted[table.CurrencyColumns[j]] = v
		}
		rows[i] = parquetRow{
			Name:         row.Name,
			MarketCapUSD: row.MarketCapUSD,
			Converted:    converted,
		}
	}

	err := parquet.WriteFile(path, rows)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}
