package query

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Error is returned when a query is malformed or fails in the store.
type Error struct {
	Query string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("query %q: %v", e.Query, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result holds rows in the order the store returned them, with each row's
// values in Columns order.
type Result struct {
	Query   string
	Columns []string
	Rows    [][]any
}

var resetQueryOnly = "PRAGMA query_only = OFF"

// Run executes a read-only statement. Statements that would write are
// rejected by the store.
func Run(ctx context.Context, db *sql.DB, queryText string) (Result, error) {
	fail := func(err error) (Result, error) {
		return Result{}, &Error{Query: queryText, Err: err}
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "PRAGMA query_only = ON")
	if err != nil {
		return fail(err)
	}
	defer func() {
		_, err := conn.ExecContext(context.Background(), resetQueryOnly)
		if err == nil {
			return
		}
		// a connection left in query_only mode must not go back to the pool
		slog.Warn("discarding store connection", "err", err.Error())
		conn.Raw(func(any) error { return driver.ErrBadConn })
	}()

	rows, err := conn.QueryContext(ctx, queryText)
	if err != nil {
		return fail(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fail(err)
	}

	result := Result{Query: queryText, Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return fail(err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return fail(err)
	}

	return result, nil
}

// Render prints the query followed by its result as a table.
func Render(w io.Writer, result Result) error {
	header := make(table.Row, len(result.Columns))
	for i, column := range result.Columns {
		header[i] = column
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.AppendHeader(header)
	for _, row := range result.Rows {
		t.AppendRow(table.Row(row))
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d rows", len(result.Rows))})

	_, err := fmt.Fprintf(w, "%s\n%s\n", result.Query, t.Render())
	return err
}
