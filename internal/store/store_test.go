package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Banks.db")

	db, err := Config{File: path}.Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestOpenMemory(t *testing.T) {
	db, err := Config{File: ":memory:"}.Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE t (x INTEGER)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO t VALUES (1)")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	require.Equal(t, 1, count)
}

func TestOpenErrors(t *testing.T) {
	_, err := Config{}.Open()
	require.Error(t, err)

	_, err = Config{URL: "ftp://example.com/db"}.Open()
	require.ErrorContains(t, err, "unsupported store url scheme")
}

func TestString(t *testing.T) {
	require.Equal(t, "Banks.db", Config{File: "Banks.db"}.String())
	require.Equal(t, "libsql://banks.turso.io", Config{File: "Banks.db", URL: "libsql://banks.turso.io"}.String())
}
