package serviceutil

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFatal(t *testing.T) {
	previousLogger := slog.Default()
	previousExit := exit
	defer func() {
		slog.SetDefault(previousLogger)
		exit = previousExit
	}()

	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	code := -1
	exit = func(c int) { code = c }

	Fatal("banks-etl failed", errors.New("extract: fetch https://example.com: unexpected status 404"))

	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), `msg="banks-etl failed"`)
	require.Contains(t, buf.String(), "unexpected status 404")
}
