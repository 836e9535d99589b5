package load

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"banks-etl/internal/banks"
)

// QuoteIdent quotes a table or column name for use in sqlite statements.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// SaveToStore replaces the table `tableName` with exactly the rows of table.
// The drop, create and inserts share one transaction, a failure leaves the
// previous table in place.
func SaveToStore(ctx context.Context, db *sql.DB, table banks.EnrichedTable, tableName string) error {
	storeErr := func(op string, err error) error {
		return &StoreError{Table: tableName, Op: op, Err: err}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin", err)
	}
	defer tx.Rollback()

	header := table.Header()
	definitions := make([]string, len(header))
	quoted := make([]string, len(header))
	placeholders := make([]string, len(header))
	for i, column := range header {
		quoted[i] = QuoteIdent(column)
		placeholders[i] = "?"
		kind := "REAL"
		if i == 0 {
			kind = "TEXT"
		}
		definitions[i] = fmt.Sprintf("%s %s", quoted[i], kind)
	}
	ident := QuoteIdent(tableName)

	_, err = tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", ident))
	if err != nil {
		return storeErr("drop", err)
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE %s (%s)",
		ident, strings.Join(definitions, ", "),
	))
	if err != nil {
		return storeErr("create", err)
	}

	insert, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		ident, strings.Join(quoted, ", "), strings.Join(placeholders, ", "),
	))
	if err != nil {
		return storeErr("prepare insert", err)
	}
	defer insert.Close()

	for _, row := range table.Rows {
		args := []any{row.Name}
		for _, v := range row.Values() {
			args = append(args, v)
		}
		_, err = insert.ExecContext(ctx, args...)
		if err != nil {
			return storeErr(fmt.Sprintf("insert %q", row.Name), err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return storeErr("commit", err)
	}
	return nil
}
