package rates

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"banks-etl/internal/banks"
)

// Error reports a problem with the exchange-rate file, Line is 1-based
// and 0 when the problem is not tied to a line.
type Error struct {
	Path string
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("exchange rates %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("exchange rates %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads a two-column CSV of (currency, rate) with a header row.
func Load(path string) (banks.Rates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	rates, err := Parse(f)
	var rateErr *Error
	if errors.As(err, &rateErr) {
		rateErr.Path = path
	}
	return rates, err
}

func Parse(r io.Reader) (banks.Rates, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	_, err := reader.Read()
	if err == io.EOF {
		return nil, &Error{Err: errors.New("empty file")}
	}
	if err != nil {
		return nil, &Error{Line: csvLine(err), Err: err}
	}

	rates := banks.Rates{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Line: csvLine(err), Err: err}
		}
		line, _ := reader.FieldPos(0)

		code := strings.TrimSpace(record[0])
		if code == "" {
			return nil, &Error{Line: line, Err: errors.New("empty currency code")}
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, &Error{Line: line, Err: fmt.Errorf("rate of %s: %w", code, err)}
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, &Error{Line: line, Err: fmt.Errorf("rate of %s: not a finite number", code)}
		}
		rates[code] = rate
	}

	if len(rates) == 0 {
		return nil, &Error{Err: errors.New("no rates")}
	}
	return rates, nil
}

func csvLine(err error) int {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Line
	}
	return 0
}
