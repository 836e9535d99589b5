package load

import (
	"encoding/csv"
	"os"
	"strconv"

	"banks-etl/internal/banks"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SaveToFile writes the table as CSV with a header row and no index column,
// replacing whatever was at path.
func SaveToFile(table banks.EnrichedTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	err = writeCSV(f, table)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

func writeCSV(f *os.File, table banks.EnrichedTable) error {
	w := csv.NewWriter(f)
	if err := w.Write(table.Header()); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := []string{row.Name}
		for _, v := range row.Values() {
			record = append(record, formatFloat(v))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
