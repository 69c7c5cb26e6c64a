package dataset

import (
	"fmt"
	"sort"
)

// RowView reads a single row of a view by column name.
type RowView interface {
	Get(column string) (any, error)
}

// View is a read-only tabular source with named columns and indexed rows.
type View interface {
	ColumnNames() []string
	Len() int
	RowView(i int) RowView
}

// ViewOption configures a DataView.
type ViewOption func(*DataView)

// WithFilter keeps only the rows for which keep returns true.
func WithFilter(keep func(*DataRow) bool) ViewOption {
	return func(v *DataView) { v.filter = keep }
}

// WithSort orders the rows by the text of column, descending when desc is set.
// The sort is stable, ties keep table order.
func WithSort(column string, desc bool) ViewOption {
	return func(v *DataView) { v.sortColumn = column; v.desc = desc }
}

// DataView is a filtered and sorted window over a DataTable. The row set is
// computed when the view is created and on Refresh.
type DataView struct {
	table      *DataTable
	filter     func(*DataRow) bool
	sortColumn string
	desc       bool
	rows       []*DataRow
}

// NewDataView creates a view over t.
func NewDataView(t *DataTable, opts ...ViewOption) *DataView {
	v := &DataView{table: t}
	for _, o := range opts {
		o(v)
	}
	v.Refresh()
	return v
}

// Refresh recomputes the rows of the view from its table.
func (v *DataView) Refresh() {
	rows := make([]*DataRow, 0, len(v.table.rows))
	for _, r := range v.table.rows {
		if v.filter == nil || v.filter(r) {
			rows = append(rows, r)
		}
	}
	if v.sortColumn != "" && v.table.HasColumn(v.sortColumn) {
		col := v.sortColumn
		sort.SliceStable(rows, func(i, j int) bool {
			if v.desc {
				return rows[i].cells[col] > rows[j].cells[col]
			}
			return rows[i].cells[col] < rows[j].cells[col]
		})
	}
	v.rows = rows
}

// Table returns the underlying table.
func (v *DataView) Table() *DataTable { return v.table }

// ColumnNames returns the column names of the underlying table.
func (v *DataView) ColumnNames() []string { return v.table.ColumnNames() }

// Len returns the number of rows visible through the view.
func (v *DataView) Len() int { return len(v.rows) }

// Row returns the i-th visible row.
func (v *DataView) Row(i int) (*DataRowView, error) {
	if i < 0 || i >= len(v.rows) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return &DataRowView{view: v, row: v.rows[i]}, nil
}

// RowView returns the i-th visible row, or nil when i is out of range.
func (v *DataView) RowView(i int) RowView {
	r, err := v.Row(i)
	if err != nil {
		return nil
	}
	return r
}

// DataRowView is a row seen through a DataView.
type DataRowView struct {
	view *DataView
	row  *DataRow
}

// Row returns the underlying table row.
func (rv *DataRowView) Row() *DataRow { return rv.row }

// Get returns the cell text of the named column.
func (rv *DataRowView) Get(column string) (any, error) {
	return rv.row.Get(column)
}
