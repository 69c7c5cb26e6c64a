// Package dataset provides the in-memory tabular containers filled by the
// tabular adapter.
//
// A DataSet is a named collection of DataTables. A DataTable has an ordered
// list of uniquely named text columns and an ordered list of DataRows. Every
// cell is text; a row may also carry a per-column error describing why the
// cell text is an error message instead of a value.
//
//	ds := dataset.NewDataSet("report")
//	t := dataset.NewDataTable("Customer")
//	t.EnsureColumn("Name")
//	row := t.NewRow()
//	_ = row.Set("Name", "Alice")
//	_ = t.AddRow(row)
//	_ = ds.AddTable(t)
//
// # Views
//
// A DataView is a filtered and sorted window over a table. Views and their
// rows satisfy the View and RowView interfaces, which is all the adapter needs
// to use a view as a fill source.
//
// # Bulk loading
//
// BeginLoadData and EndLoadData bracket a bulk load. While loading, column
// value indexes created with CreateIndex are not maintained row by row; they
// are rebuilt once when loading ends.
//
// # Thread Safety
//
// The containers are not safe for concurrent mutation. Callers that share a
// table between goroutines must serialise access themselves.
package dataset
