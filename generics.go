package tabular

import (
	"reflect"

	"github.com/Station-Manager/tabular/dataset"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// Tabulate fills a new table from items. An empty name uses the name of T.
func Tabulate[T any](a *Adapter, name string, items []T) (*dataset.DataTable, error) {
	if name == "" {
		name = typeNameOf[T]()
	}
	table := dataset.NewDataTable(name)
	if err := a.Fill(table, items); err != nil {
		return nil, err
	}
	return table, nil
}

// FillSlice appends items to table.
func FillSlice[T any](a *Adapter, table *dataset.DataTable, items []T) error {
	return a.Fill(table, items)
}

// FillDataSetOf fills the table of ds named after T.
func FillDataSetOf[T any](a *Adapter, ds *dataset.DataSet, items []T) error {
	return a.FillDataSetNamed(ds, typeNameOf[T](), items)
}

func typeNameOf[T any]() string {
	t := indirectType(reflect.TypeOf((*T)(nil)).Elem())
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
