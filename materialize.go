package tabular

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/tabular/dataset"
)

// copyRows appends one row per element of inner. Nothing is written when no
// columns were discovered.
func (a *Adapter) copyRows(reg *converterRegistry, table *dataset.DataTable, inner any, columns []string) error {
	const op errors.Op = "tabular.Adapter.copyRows"
	if len(columns) == 0 {
		return nil
	}
	for _, c := range columns {
		table.EnsureColumn(c)
	}

	table.BeginLoadData()
	defer table.EndLoadData()

	failed := 0
	for _, el := range a.elements(inner) {
		row := table.NewRow()
		for _, col := range columns {
			text, err := a.getField(reg, el, col)
			if err != nil {
				failed++
				a.logger.Debug("cell extraction failed", "table", table.Name(), "column", col, "error", err)
				text = err.Error()
			}
			row.SetColumnError(col, err)
			if serr := row.Set(col, text); serr != nil {
				return errors.New(op).Err(serr)
			}
		}
		if err := table.AddRow(row); err != nil {
			return errors.New(op).Err(err)
		}
	}
	if failed > 0 {
		a.logger.Debug("fill completed with cell errors", "table", table.Name(), "failed", failed)
	}
	return nil
}

// elements lists the rows of a view, the items of a sequence, or the single
// object itself.
func (a *Adapter) elements(inner any) []any {
	if v, ok := inner.(View); ok {
		out := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, v.RowView(i))
		}
		return out
	}
	if seq, ok := sequenceOf(inner); ok {
		out := make([]any, 0, seq.Len())
		for i := 0; i < seq.Len(); i++ {
			out = append(out, elementAt(seq, i))
		}
		return out
	}
	return []any{inner}
}
