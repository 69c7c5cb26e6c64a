package dataset

import "fmt"

// DataColumn is a named text column of a DataTable.
type DataColumn struct {
	name    string
	ordinal int
	table   *DataTable
}

// Name returns the column name.
func (c *DataColumn) Name() string { return c.name }

// Ordinal returns the zero-based position of the column in its table.
func (c *DataColumn) Ordinal() int { return c.ordinal }

// Table returns the table owning the column.
func (c *DataColumn) Table() *DataTable { return c.table }

// DataTable is a named, ordered set of text columns and rows.
type DataTable struct {
	name    string
	columns []*DataColumn
	byName  map[string]*DataColumn
	rows    []*DataRow

	// column name -> cell text -> row positions, see CreateIndex
	indexes map[string]map[string][]int
	loading bool
}

// NewDataTable creates an empty table.
func NewDataTable(name string) *DataTable {
	return &DataTable{
		name:    name,
		byName:  make(map[string]*DataColumn),
		indexes: make(map[string]map[string][]int),
	}
}

// Name returns the table name.
func (t *DataTable) Name() string { return t.name }

// Columns returns the table columns in ordinal order.
func (t *DataTable) Columns() []*DataColumn {
	out := make([]*DataColumn, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in ordinal order.
func (t *DataTable) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// HasColumn reports whether the table has a column with the given name.
func (t *DataTable) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the named column.
func (t *DataTable) Column(name string) (*DataColumn, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// AddColumn appends a new column. It fails if the name is already taken.
func (t *DataTable) AddColumn(name string) (*DataColumn, error) {
	if _, ok := t.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
	}
	c := &DataColumn{name: name, ordinal: len(t.columns), table: t}
	t.columns = append(t.columns, c)
	t.byName[name] = c
	return c, nil
}

// EnsureColumn returns the named column, appending it when missing.
// Existing columns are never recreated or reordered.
func (t *DataTable) EnsureColumn(name string) *DataColumn {
	if c, ok := t.byName[name]; ok {
		return c
	}
	c, _ := t.AddColumn(name)
	return c
}

// NewRow creates a detached row with the table's schema. The row is not part
// of the table until AddRow is called.
func (t *DataTable) NewRow() *DataRow {
	return &DataRow{table: t, cells: make(map[string]string, len(t.columns))}
}

// AddRow appends a row created by NewRow on this table.
func (t *DataTable) AddRow(r *DataRow) error {
	if r == nil || r.table != t {
		return ErrForeignRow
	}
	if r.attached {
		return ErrRowAttached
	}
	r.attached = true
	t.rows = append(t.rows, r)
	if !t.loading {
		t.indexRow(len(t.rows) - 1)
	}
	return nil
}

// Rows returns the rows in insertion order.
func (t *DataTable) Rows() []*DataRow {
	out := make([]*DataRow, len(t.rows))
	copy(out, t.rows)
	return out
}

// RowCount returns the number of rows.
func (t *DataTable) RowCount() int { return len(t.rows) }

// Row returns the row at position i.
func (t *DataTable) Row(i int) (*DataRow, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRow, i)
	}
	return t.rows[i], nil
}

// Clear removes all rows and keeps the columns.
func (t *DataTable) Clear() {
	for _, r := range t.rows {
		r.attached = false
	}
	t.rows = nil
	t.rebuildIndexes()
}

// BeginLoadData suspends index maintenance until EndLoadData is called.
func (t *DataTable) BeginLoadData() { t.loading = true }

// EndLoadData ends a bulk load and rebuilds the column indexes.
func (t *DataTable) EndLoadData() {
	if !t.loading {
		return
	}
	t.loading = false
	t.rebuildIndexes()
}

// Loading reports whether a bulk load is in progress.
func (t *DataTable) Loading() bool { return t.loading }

// CreateIndex builds a cell-text index on the named column, used by Find.
func (t *DataTable) CreateIndex(column string) error {
	if !t.HasColumn(column) {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	t.indexes[column] = make(map[string][]int)
	if !t.loading {
		t.rebuildIndex(column)
	}
	return nil
}

// Find returns the rows whose cell in column equals text. An index on the
// column is used when present, otherwise the rows are scanned.
func (t *DataTable) Find(column, text string) ([]*DataRow, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	if idx, ok := t.indexes[column]; ok && !t.loading {
		positions := idx[text]
		out := make([]*DataRow, 0, len(positions))
		for _, p := range positions {
			out = append(out, t.rows[p])
		}
		return out, nil
	}
	var out []*DataRow
	for _, r := range t.rows {
		if r.cells[column] == text {
			out = append(out, r)
		}
	}
	return out, nil
}

// DefaultView returns an unfiltered, unsorted view over the table.
func (t *DataTable) DefaultView() *DataView {
	return NewDataView(t)
}

func (t *DataTable) indexRow(pos int) {
	r := t.rows[pos]
	for column, idx := range t.indexes {
		text := r.cells[column]
		idx[text] = append(idx[text], pos)
	}
}

func (t *DataTable) rebuildIndexes() {
	for column := range t.indexes {
		t.rebuildIndex(column)
	}
}

func (t *DataTable) rebuildIndex(column string) {
	idx := make(map[string][]int)
	for pos, r := range t.rows {
		text := r.cells[column]
		idx[text] = append(idx[text], pos)
	}
	t.indexes[column] = idx
}
