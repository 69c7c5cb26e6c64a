package dataset

import "fmt"

// DataSet is a named collection of uniquely named tables.
type DataSet struct {
	name   string
	tables []*DataTable
	byName map[string]*DataTable
}

// NewDataSet creates an empty data set.
func NewDataSet(name string) *DataSet {
	return &DataSet{name: name, byName: make(map[string]*DataTable)}
}

// Name returns the data set name.
func (ds *DataSet) Name() string { return ds.name }

// Table looks a table up by name.
func (ds *DataSet) Table(name string) (*DataTable, bool) {
	t, ok := ds.byName[name]
	return t, ok
}

// AddTable inserts a table. It fails if a table with the same name exists.
func (ds *DataSet) AddTable(t *DataTable) error {
	if t == nil {
		return ErrNilTable
	}
	if _, ok := ds.byName[t.name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTable, t.name)
	}
	ds.tables = append(ds.tables, t)
	ds.byName[t.name] = t
	return nil
}

// RemoveTable removes the named table and reports whether it was present.
func (ds *DataSet) RemoveTable(name string) bool {
	if _, ok := ds.byName[name]; !ok {
		return false
	}
	delete(ds.byName, name)
	for i, t := range ds.tables {
		if t.name == name {
			ds.tables = append(ds.tables[:i], ds.tables[i+1:]...)
			break
		}
	}
	return true
}

// Tables returns the tables in insertion order.
func (ds *DataSet) Tables() []*DataTable {
	out := make([]*DataTable, len(ds.tables))
	copy(out, ds.tables)
	return out
}

// TableNames returns the table names in insertion order.
func (ds *DataSet) TableNames() []string {
	names := make([]string, len(ds.tables))
	for i, t := range ds.tables {
		names[i] = t.name
	}
	return names
}
