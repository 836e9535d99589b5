package telemetry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorded struct {
	id     string
	params []any
	count  int64
}

type recorder struct {
	warnings []recorded
	counts   []recorded
}

func (r *recorder) ReportWarning(id string, params ...any) {
	r.warnings = append(r.warnings, recorded{id: id, params: params})
}

func (r *recorder) ReportCount(id string, count int64) {
	r.counts = append(r.counts, recorded{id: id, count: count})
}

func TestScopedAPI(t *testing.T) {
	rec := &recorder{}
	api := NewScopedAPI("extract", rec)

	api.ReportWarning("row", 3)
	api.ReportCount("rows", 10)

	require.Len(t, rec.warnings, 1)
	require.Equal(t, "extract:row", rec.warnings[0].id)
	require.Equal(t, []any{3}, rec.warnings[0].params)
	require.Len(t, rec.counts, 1)
	require.Equal(t, "extract:rows", rec.counts[0].id)
	require.Equal(t, int64(10), rec.counts[0].count)
}

func TestSlogAPI(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	buf := &bytes.Buffer{}
	InitSlogTo(buf, false)

	SlogAPI{}.ReportWarning("progress:write", "code_log.txt")
	SlogAPI{}.ReportCount("load:rows", 2)

	out := buf.String()
	require.Contains(t, out, "id=progress:write")
	require.Contains(t, out, "params.0=code_log.txt")
	require.Contains(t, out, "id=load:rows n=2")
}
