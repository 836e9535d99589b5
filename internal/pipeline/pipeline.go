package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"banks-etl/internal/banks"
	"banks-etl/internal/extract"
	"banks-etl/internal/load"
	"banks-etl/internal/progress"
	"banks-etl/internal/query"
	"banks-etl/internal/rates"
	"banks-etl/internal/telemetry"
	"banks-etl/internal/transform"
	"banks-etl/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

type Options struct {
	// Client defaults to NewClient(cfg).
	Client *resty.Client
	// Logger defaults to a progress logger on cfg.LogFile.
	Logger *progress.Logger
	// Out receives the rendered query results, defaults to stdout.
	Out       io.Writer
	Telemetry telemetry.API
}

type Report struct {
	Table   banks.EnrichedTable
	Results []query.Result
}

// NewClient builds the HTTP client used to fetch the source page.
func NewClient(cfg Config) (*resty.Client, error) {
	var output restyutil.InstrumentOutput
	if cfg.DumpDir != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(cfg.DumpDir)
		if err != nil {
			return nil, err
		}
		output = fsOutput
	}
	return restyutil.NewClient(cfg.FetchTimeout(), output), nil
}

func (o Options) withDefaults(cfg Config) (Options, error) {
	if o.Telemetry == nil {
		o.Telemetry = telemetry.SlogAPI{}
	}
	if o.Logger == nil {
		logger := progress.New(cfg.LogFile, o.Telemetry)
		o.Logger = &logger
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Client == nil {
		client, err := NewClient(cfg)
		if err != nil {
			return o, err
		}
		o.Client = client
	}
	return o, nil
}

// Run performs one extract, transform, load and report cycle. Extraction
// and transformation failures stop the run before anything is written, every
// sink is attempted before load failures are returned, and the store is
// closed on every path once opened.
func Run(ctx context.Context, cfg Config, opts Options) (report Report, err error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("config: %w", err)
	}
	opts, err = opts.withDefaults(cfg)
	if err != nil {
		return Report{}, fmt.Errorf("config: %w", err)
	}
	logger := opts.Logger
	tel := telemetry.NewScopedAPI("pipeline", opts.Telemetry)

	defer func() {
		if err != nil {
			logger.Log(fmt.Sprintf("ETL process failed: %v", err))
		}
	}()

	logger.Log("Preliminaries complete. Initiating ETL process")

	table, err := extract.Extract(ctx, opts.Client, cfg.SourceURL, cfg.ColumnPair())
	if err != nil {
		return Report{}, fmt.Errorf("extract: %w", err)
	}
	tel.ReportCount("extracted_rows", int64(len(table.Rows)))
	logger.Log("Data extraction complete. Initiating Transformation process")

	rateTable, err := rates.Load(cfg.ExchangeRatePath)
	if err != nil {
		return Report{}, fmt.Errorf("transform: %w", err)
	}
	enriched, err := transform.Transform(table, rateTable, cfg.Currencies)
	if err != nil {
		return Report{}, fmt.Errorf("transform: %w", err)
	}
	report.Table = enriched
	logger.Log("Data transformation complete. Initiating Loading process")

	csvErr := load.SaveAll(ctx, load.Sink{
		Name: "csv",
		Save: func(context.Context) error {
			return load.SaveToFile(enriched, cfg.OutputCSVPath)
		},
	})
	if csvErr == nil {
		logger.Log("Data saved to CSV file")
	}

	db, err := cfg.Store.Open()
	if err != nil {
		openErr := &load.StoreError{Table: cfg.TableName, Op: "open " + cfg.Store.String(), Err: err}
		return report, fmt.Errorf("load: %w", errors.Join(csvErr, openErr))
	}
	defer func() {
		closeErr := db.Close()
		if closeErr != nil {
			tel.ReportWarning("store_close", cfg.Store.String(), closeErr)
		}
		logger.Log("Server Connection closed")
	}()
	logger.Log("SQL Connection initiated")

	sinks := []load.Sink{{
		Name: "store",
		Save: func(ctx context.Context) error {
			return load.SaveToStore(ctx, db, enriched, cfg.TableName)
		},
	}}
	if cfg.OutputParquetPath != "" {
		sinks = append(sinks, load.Sink{
			Name: "parquet",
			Save: func(context.Context) error {
				return load.SaveToParquet(enriched, cfg.OutputParquetPath)
			},
		})
	}
	if loadErr := errors.Join(csvErr, load.SaveAll(ctx, sinks...)); loadErr != nil {
		return report, fmt.Errorf("load: %w", loadErr)
	}
	tel.ReportCount("loaded_rows", int64(len(enriched.Rows)))
	logger.Log("Data loaded to Database as a table, Executing queries")

	for _, queryText := range cfg.ReportQueries() {
		result, err := query.Run(ctx, db, queryText)
		if err != nil {
			return report, fmt.Errorf("query: %w", err)
		}
		report.Results = append(report.Results, result)
		if err := query.Render(opts.Out, result); err != nil {
			tel.ReportWarning("render", queryText, err)
		}
		slog.DebugContext(ctx, "query finished", "query", queryText, "rows", len(result.Rows))
		logger.Log("Process Complete")
	}

	return report, nil
}
