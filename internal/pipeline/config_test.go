package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestDefaultQueries(t *testing.T) {
	require.Equal(t, []string{
		`SELECT * FROM "Largest_banks"`,
		`SELECT AVG("MC_GBP_Billion") FROM "Largest_banks"`,
		`SELECT "Name" FROM "Largest_banks" LIMIT 5`,
	}, DefaultConfig().ReportQueries())

	cfg := DefaultConfig()
	cfg.Currencies = nil
	require.Len(t, cfg.DefaultQueries(), 2)

	cfg.Queries = []string{"SELECT 1"}
	require.Equal(t, []string{"SELECT 1"}, cfg.ReportQueries())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceURL = ""
	cfg.Store.File = ""
	cfg.Currencies = []string{"GBP", "GBP", ""}

	err := cfg.Validate()
	require.ErrorContains(t, err, "source_url is required")
	require.ErrorContains(t, err, "store.file or store.url is required")
	require.ErrorContains(t, err, "currency GBP is listed twice")
	require.ErrorContains(t, err, "empty code")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banks-etl.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		table_name: "Banks_2023",
		currencies: ["JPY", "EUR"],
		store: { file: "other.db" },
	}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Banks_2023", cfg.TableName)
	require.Equal(t, []string{"JPY", "EUR"}, cfg.Currencies)
	require.Equal(t, "other.db", cfg.Store.File)
	require.Equal(t, DefaultConfig().SourceURL, cfg.SourceURL)
	require.Equal(t, []string{"Name", "MC_USD_Billion"}, cfg.Columns)

	cfg, err = LoadConfig(filepath.Join(dir, "missing.json5"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banks-etl.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		currencies: [],
		fetch_timeout_ms: 0,
	}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Currencies)
	require.Zero(t, cfg.FetchTimeout())
	require.Equal(t, DefaultConfig().TableName, cfg.TableName)
	require.Len(t, cfg.DefaultQueries(), 2)
}
