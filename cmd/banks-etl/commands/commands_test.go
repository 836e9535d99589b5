package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<table><tbody>
<tr><th>Rank</th><th>Bank name</th><th>Market cap</th></tr>
<tr><td>1</td><td><a href="/flag"></a> <a href="/wiki/Bank_A">Bank A</a></td><td>100.5</td></tr>
<tr><td>2</td><td><a href="/flag"></a> <a href="/wiki/Bank_B">Bank B</a></td><td>50.25</td></tr>
</tbody></table>`

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestRunThenQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	dir := t.TempDir()
	ratePath := filepath.Join(dir, "exchange_rate.csv")
	require.NoError(t, os.WriteFile(ratePath, []byte("Currency,Rate\nEUR,0.9\nGBP,0.8\nINR,80\n"), 0644))

	config := filepath.Join(dir, "banks-etl.json5")
	require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf(`{
		source_url: %q,
		exchange_rate_path: %q,
		output_csv_path: %q,
		store: { file: %q },
		log_file: %q,
	}`,
		server.URL,
		ratePath,
		filepath.Join(dir, "Largest_banks_data.csv"),
		filepath.Join(dir, "Banks.db"),
		filepath.Join(dir, "code_log.txt"),
	)), 0644))

	out := execute(t, "extract", "--config", config)
	require.Contains(t, out, "Bank A")
	require.Contains(t, out, "50.25")

	out = execute(t, "run", "--config", config)
	require.Contains(t, out, "AVG")
	require.Contains(t, out, "Bank B")

	out = execute(t, "query", "--config", config, "SELECT", "Name", "FROM", "Largest_banks", "WHERE", "MC_INR_Billion", ">", "5000")
	require.Contains(t, out, "Bank A")
	require.NotContains(t, out, "Bank B")
}
