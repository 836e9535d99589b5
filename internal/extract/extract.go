// Package extract turns the source page into a banks.Table.
//
// It follows the usual read-only scraping shape: make the request, assert
// the response is usable (status, table layout), then map goquery
// selections into records. Any row that does not fit fails the whole page.
package extract

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"banks-etl/internal/banks"
	"banks-etl/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("banks-etl.internal.extract")

// Extract downloads the page at url once and scans its first table body.
func Extract(ctx context.Context, client *resty.Client, url string, columns [2]string) (banks.Table, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()

	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return banks.Table{}, &FetchError{URL: url, Err: err}
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "unexpected status")
		return banks.Table{}, &FetchError{URL: url, Status: res.StatusCode()}
	}

	table, err := parse(ctx, bytes.NewReader(res.Body()), columns)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return banks.Table{}, err
	}
	span.SetAttributes(attribute.Int("rows", len(table.Rows)))
	slog.DebugContext(ctx, "extracted table", "url", url, "rows", len(table.Rows))
	return table, nil
}

// ParseDocument scans an already downloaded page.
func ParseDocument(r io.Reader, columns [2]string) (banks.Table, error) {
	return parse(context.Background(), r, columns)
}

// The expected layout is the archived "List of largest banks" page:
//
//	<tbody>
//	  <tr><th>Rank</th><th>Bank name</th><th>Market cap (US$ billion)</th></tr>
//	  <tr><td>1</td><td><a>flag</a> <a>Bank</a></td><td>432.92</td></tr>
//
// The first anchor of the name cell wraps the country flag, so the display
// name is the second one.
func parse(ctx context.Context, r io.Reader, columns [2]string) (banks.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return banks.Table{}, &ParseError{Reason: "read document", Err: err}
	}

	tbody := doc.Find("tbody").First()
	if tbody.Length() == 0 {
		return banks.Table{}, &ParseError{Reason: "no table body in document"}
	}
	rows := tbody.Find("tr")
	if rows.Length() < 2 {
		return banks.Table{}, &ParseError{Reason: "table body has no data rows"}
	}

	table := banks.Table{
		Columns: columns,
		Rows:    make([]banks.Record, 0, rows.Length()-1),
	}
	var rowErr error
	rows.Slice(1, goquery.ToEnd).EachWithBreak(func(i int, row *goquery.Selection) bool {
		record, err := parseRow(ctx, i+1, row)
		if err != nil {
			rowErr = err
			return false
		}
		table.Rows = append(table.Rows, record)
		return true
	})
	if rowErr != nil {
		return banks.Table{}, rowErr
	}

	return table, nil
}

func parseRow(ctx context.Context, idx int, row *goquery.Selection) (banks.Record, error) {
	cells := row.Find("td")
	if cells.Length() < 3 {
		return banks.Record{}, &ParseError{
			Row:    idx,
			Reason: "expected at least 3 cells, got " + strconv.Itoa(cells.Length()),
		}
	}

	anchors := htmlutil.GetAnchors(ctx, cells.Eq(1).Find("a"))
	if len(anchors) < 2 {
		return banks.Record{}, &ParseError{
			Row:    idx,
			Reason: "expected at least 2 links in name cell, got " + strconv.Itoa(len(anchors)),
		}
	}
	name := anchors[1].Name
	if name == "" {
		return banks.Record{}, &ParseError{Row: idx, Reason: "empty name"}
	}

	text := strings.TrimSpace(cells.Eq(2).Text())
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return banks.Record{}, &ParseError{
			Row:    idx,
			Reason: "value " + strconv.Quote(text) + " of " + strconv.Quote(name),
			Err:    err,
		}
	}
	if !(value >= 0) || math.IsInf(value, 0) {
		return banks.Record{}, &ParseError{
			Row:    idx,
			Reason: "invalid value " + strconv.Quote(text) + " of " + strconv.Quote(name),
		}
	}

	return banks.Record{Name: name, MarketCapUSD: value}, nil
}
