package dataset

import "fmt"

// DataRow is a single row of a DataTable. Cells are text; columns added to
// the table after the row was filled read as the empty string.
type DataRow struct {
	table    *DataTable
	cells    map[string]string
	errs     map[string]error
	attached bool
}

// Table returns the table that created the row.
func (r *DataRow) Table() *DataTable { return r.table }

// Attached reports whether the row has been added to its table.
func (r *DataRow) Attached() bool { return r.attached }

// Get returns the cell text of the named column.
func (r *DataRow) Get(column string) (string, error) {
	if !r.table.HasColumn(column) {
		return "", fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	return r.cells[column], nil
}

// Set writes the cell text of the named column.
func (r *DataRow) Set(column, text string) error {
	if !r.table.HasColumn(column) {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	r.cells[column] = text
	if r.attached && !r.table.loading {
		if _, ok := r.table.indexes[column]; ok {
			r.table.rebuildIndex(column)
		}
	}
	return nil
}

// SetColumnError records why the named cell holds an error message.
// A nil err clears the column error.
func (r *DataRow) SetColumnError(column string, err error) {
	if err == nil {
		delete(r.errs, column)
		return
	}
	if r.errs == nil {
		r.errs = make(map[string]error)
	}
	r.errs[column] = err
}

// ColumnError returns the error recorded for the named cell, if any.
func (r *DataRow) ColumnError(column string) error {
	return r.errs[column]
}

// HasErrors reports whether any cell of the row has a recorded error.
func (r *DataRow) HasErrors() bool { return len(r.errs) > 0 }

// ColumnsInError returns the names of the columns with a recorded error, in
// table column order.
func (r *DataRow) ColumnsInError() []string {
	var out []string
	for _, c := range r.table.columns {
		if _, ok := r.errs[c.name]; ok {
			out = append(out, c.name)
		}
	}
	return out
}

// Values returns the cell texts in table column order.
func (r *DataRow) Values() []string {
	out := make([]string, len(r.table.columns))
	for i, c := range r.table.columns {
		out[i] = r.cells[c.name]
	}
	return out
}
