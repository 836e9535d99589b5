package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"banks-etl/internal/banks"
	"banks-etl/internal/load"
	"banks-etl/internal/store"
	"banks-etl/lib/configutil"
)

type Config struct {
	SourceURL        string `json:"source_url"`
	ExchangeRatePath string `json:"exchange_rate_path"`
	OutputCSVPath    string `json:"output_csv_path"`
	// OutputParquetPath is optional, no parquet snapshot is written when empty.
	OutputParquetPath string       `json:"output_parquet_path"`
	Store             store.Config `json:"store"`
	TableName         string       `json:"table_name"`
	// Columns are the name and value column of the scraped table.
	Columns    []string `json:"columns"`
	Currencies []string `json:"currencies"`
	// Queries default to DefaultQueries when empty.
	Queries        []string `json:"queries"`
	LogFile        string   `json:"log_file"`
	FetchTimeoutMs int      `json:"fetch_timeout_ms"`
	// DumpDir receives raw HTTP exchanges when debug logging is on.
	DumpDir string `json:"dump_dir"`
}

func DefaultConfig() Config {
	return Config{
		SourceURL:        "https://web.archive.org/web/20230908091635/https://en.wikipedia.org/wiki/List_of_largest_banks",
		ExchangeRatePath: "exchange_rate.csv",
		OutputCSVPath:    "./Largest_banks_data.csv",
		Store:            store.Config{File: "Banks.db"},
		TableName:        "Largest_banks",
		Columns:          []string{"Name", "MC_USD_Billion"},
		Currencies:       []string{"GBP", "EUR", "INR"},
		LogFile:          "code_log.txt",
		FetchTimeoutMs:   30_000,
	}
}

// LoadConfig reads a json5 config file (and its .local override) over the
// defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(path, DefaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.SourceURL == "" {
		errs = append(errs, errors.New("source_url is required"))
	}
	if c.ExchangeRatePath == "" {
		errs = append(errs, errors.New("exchange_rate_path is required"))
	}
	if c.OutputCSVPath == "" {
		errs = append(errs, errors.New("output_csv_path is required"))
	}
	if c.TableName == "" {
		errs = append(errs, errors.New("table_name is required"))
	}
	if c.Store.File == "" && c.Store.URL == "" {
		errs = append(errs, errors.New("store.file or store.url is required"))
	}
	if len(c.Columns) != 2 {
		errs = append(errs, fmt.Errorf("columns must name exactly 2 columns, got %d", len(c.Columns)))
	} else if strings.TrimSpace(c.Columns[0]) == "" || strings.TrimSpace(c.Columns[1]) == "" {
		errs = append(errs, errors.New("columns must not be empty"))
	}
	seen := map[string]bool{}
	for _, currency := range c.Currencies {
		if currency == "" {
			errs = append(errs, errors.New("currencies must not contain an empty code"))
			continue
		}
		if seen[currency] {
			errs = append(errs, fmt.Errorf("currency %s is listed twice", currency))
		}
		seen[currency] = true
	}
	if c.FetchTimeoutMs < 0 {
		errs = append(errs, errors.New("fetch_timeout_ms must not be negative"))
	}
	return errors.Join(errs...)
}

func (c Config) ColumnPair() [2]string {
	return [2]string{c.Columns[0], c.Columns[1]}
}

func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMs) * time.Millisecond
}

// DefaultQueries are the reports run after loading: the whole table, the
// average of the first converted column and the first five names.
func (c Config) DefaultQueries() []string {
	table := load.QuoteIdent(c.TableName)
	queries := []string{fmt.Sprintf("SELECT * FROM %s", table)}
	if len(c.Currencies) > 0 {
		column := banks.CurrencyColumn(c.Columns[1], c.Currencies[0])
		queries = append(queries, fmt.Sprintf("SELECT AVG(%s) FROM %s", load.QuoteIdent(column), table))
	}
	queries = append(queries, fmt.Sprintf("SELECT %s FROM %s LIMIT 5", load.QuoteIdent(c.Columns[0]), table))
	return queries
}

func (c Config) ReportQueries() []string {
	if len(c.Queries) > 0 {
		return c.Queries
	}
	return c.DefaultQueries()
}
