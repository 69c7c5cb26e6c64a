// Package export renders dataset tables as text grids, Markdown, CSV or JSON.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular/dataset"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Format names accepted by Render.
const (
	FormatTable    = "table"
	FormatMarkdown = "md"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// Formats lists the accepted format names.
var Formats = []string{FormatTable, FormatMarkdown, FormatCSV, FormatJSON}

// Render writes t to w in the named format.
func Render(w io.Writer, t *dataset.DataTable, format string) error {
	const op errors.Op = "export.Render"
	if t == nil {
		return errors.New(op).Err(dataset.ErrNilTable)
	}
	switch strings.ToLower(format) {
	case FormatTable, "":
		return RenderTable(w, t)
	case FormatMarkdown, "markdown":
		return RenderMarkdown(w, t)
	case FormatCSV:
		return RenderCSV(w, t)
	case FormatJSON:
		return RenderJSON(w, t)
	default:
		return errors.New(op).Errorf("unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
}

func header(t *dataset.DataTable) table.Row {
	cols := t.ColumnNames()
	row := make(table.Row, len(cols))
	for i, col := range cols {
		row[i] = col
	}
	return row
}

func appendRows(tw table.Writer, t *dataset.DataTable) {
	for _, r := range t.Rows() {
		values := r.Values()
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = v
		}
		tw.AppendRow(row)
	}
}

// RenderTable writes a light box-drawn grid followed by the row count.
func RenderTable(w io.Writer, t *dataset.DataTable) error {
	if t.RowCount() == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header(t))
	appendRows(tw, t)

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "(%d rows)\n", t.RowCount())
	return err
}

// RenderMarkdown writes a Markdown table.
func RenderMarkdown(w io.Writer, t *dataset.DataTable) error {
	if t.RowCount() == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	tw := table.NewWriter()
	tw.AppendHeader(header(t))
	appendRows(tw, t)

	_, err := fmt.Fprintln(w, tw.RenderMarkdown())
	return err
}

// RenderCSV writes a header line and one record per row.
func RenderCSV(w io.Writer, t *dataset.DataTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}
	for _, r := range t.Rows() {
		if err := cw.Write(r.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// orderedRow marshals as a JSON object with keys in column order.
type orderedRow struct {
	columns []string
	values  []string
}

func (o orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range o.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RenderJSON writes an indented array of objects whose keys follow column order.
func RenderJSON(w io.Writer, t *dataset.DataTable) error {
	cols := t.ColumnNames()
	rows := make([]orderedRow, 0, t.RowCount())
	for _, r := range t.Rows() {
		rows = append(rows, orderedRow{columns: cols, values: r.Values()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
